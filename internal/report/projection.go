package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// Cell is one typed spreadsheet cell with formatting intent. Encoding into
// actual workbook bytes is the export package's job.
type Cell struct {
	Value any
	Bold  bool
}

// Table is an ordered row/column structure: an optional header row, data
// rows, and an optional totals row rendered after a spacer.
type Table struct {
	Headers   []string
	Rows      [][]Cell
	TotalsRow []Cell
}

// Sheet names a table for multi-sheet workbooks.
type Sheet struct {
	Name  string
	Table Table
}

var receiptListingHeaders = []string{
	"ID", "Date", "Amount", "Category", "Payment Mode", "Store", "Note", "Uploaded By", "Tags",
}

// ReceiptListing projects records into the flat export layout: one row per
// receipt plus a bold totals row.
func ReceiptListing(records []*entity.Receipt, users []*entity.User) Sheet {
	byID := make(map[int64]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	table := Table{
		Headers: receiptListingHeaders,
		Rows:    make([][]Cell, 0, len(records)),
	}
	var total float64
	for _, r := range records {
		uploader := ""
		if u, ok := byID[r.UploadedBy]; ok {
			uploader = u.FullName
		}
		names := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			names = append(names, t.Name)
		}
		table.Rows = append(table.Rows, []Cell{
			{Value: r.ID},
			{Value: r.ReceiptDate.Format("2006-01-02 15:04")},
			{Value: r.Amount},
			{Value: r.Category},
			{Value: string(r.PaymentMode)},
			{Value: r.StoreName},
			{Value: r.Note},
			{Value: uploader},
			{Value: strings.Join(names, ", ")},
		})
		total += r.Amount
	}
	table.TotalsRow = []Cell{
		{},
		{Value: "TOTAL:", Bold: true},
		{Value: round2(total), Bold: true},
	}
	return Sheet{Name: "Receipts", Table: table}
}

// TallySheets projects a tally into the two-section export layout: a summary
// sheet and a per-category sheet with percentage of total.
func TallySheets(t Tally, reportDate time.Time) []Sheet {
	summary := Table{
		Rows: [][]Cell{
			{{Value: "Masjid Receipts - Tally Report", Bold: true}},
			{},
			{{Value: "Total Amount:"}, {Value: t.TotalAmount, Bold: true}},
			{{Value: "Total Receipts:"}, {Value: t.ReceiptCount}},
			{{Value: "Report Date:"}, {Value: reportDate.Format("2006-01-02 15:04")}},
		},
	}

	byCategory := Table{
		Headers: []string{"Category", "Total Amount", "Count", "Percentage"},
		Rows:    make([][]Cell, 0, len(t.ByCategory)),
	}
	for _, c := range t.ByCategory {
		pct := 0.0
		if t.TotalAmount > 0 {
			pct = c.Total / t.TotalAmount * 100
		}
		byCategory.Rows = append(byCategory.Rows, []Cell{
			{Value: c.Category},
			{Value: c.Total},
			{Value: c.Count},
			{Value: fmt.Sprintf("%.1f%%", pct)},
		})
	}

	return []Sheet{
		{Name: "Summary", Table: summary},
		{Name: "By Category", Table: byCategory},
	}
}
