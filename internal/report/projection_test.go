package report

import (
	"strings"
	"testing"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

func TestReceiptListing(t *testing.T) {
	snap := fixtureSnapshot()

	sheet := ReceiptListing(snap.Receipts, snap.Users)
	if sheet.Name != "Receipts" {
		t.Fatalf("got sheet name %q", sheet.Name)
	}
	if len(sheet.Table.Headers) != 9 {
		t.Fatalf("got %d headers, want 9", len(sheet.Table.Headers))
	}
	if len(sheet.Table.Rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(sheet.Table.Rows))
	}

	first := sheet.Table.Rows[0]
	if first[3].Value != "Utilities" {
		t.Fatalf("category cell: got %v", first[3].Value)
	}
	if first[7].Value != "Amina Sule" {
		t.Fatalf("uploader cell should carry the full name, got %v", first[7].Value)
	}
	if first[8].Value != "Utilities" {
		t.Fatalf("tags cell: got %v", first[8].Value)
	}

	totals := sheet.Table.TotalsRow
	if totals[1].Value != "TOTAL:" || !totals[1].Bold {
		t.Fatalf("totals label wrong: %+v", totals[1])
	}
	if totals[2].Value != 1046.50 || !totals[2].Bold {
		t.Fatalf("totals amount wrong: %+v", totals[2])
	}
}

func TestReceiptListingEmpty(t *testing.T) {
	sheet := ReceiptListing(nil, nil)
	if len(sheet.Table.Rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(sheet.Table.Rows))
	}
	if sheet.Table.TotalsRow[2].Value != 0.0 {
		t.Fatalf("empty listing should total zero, got %v", sheet.Table.TotalsRow[2].Value)
	}
}

func TestTallySheets(t *testing.T) {
	snap := fixtureSnapshot()
	tally := BuildTally(snap, entity.RoleFinanceSecretary, 2, Criteria{})
	reportDate := time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)

	sheets := TallySheets(tally, reportDate)
	if len(sheets) != 2 {
		t.Fatalf("got %d sheets, want 2", len(sheets))
	}
	if sheets[0].Name != "Summary" || sheets[1].Name != "By Category" {
		t.Fatalf("sheet names: %q, %q", sheets[0].Name, sheets[1].Name)
	}

	summary := sheets[0].Table
	if summary.Rows[4][1].Value != "2025-03-01 09:30" {
		t.Fatalf("report date cell: got %v", summary.Rows[4][1].Value)
	}

	byCategory := sheets[1].Table
	if len(byCategory.Rows) != len(tally.ByCategory) {
		t.Fatalf("got %d category rows, want %d", len(byCategory.Rows), len(tally.ByCategory))
	}
	pct, ok := byCategory.Rows[0][3].Value.(string)
	if !ok || !strings.HasSuffix(pct, "%") {
		t.Fatalf("percentage cell should be a percent string, got %v", byCategory.Rows[0][3].Value)
	}
}
