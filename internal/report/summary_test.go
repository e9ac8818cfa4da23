package report

import (
	"testing"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

func TestBuildSummary(t *testing.T) {
	snap := fixtureSnapshot()

	s := BuildSummary(snap, entity.RoleFinanceSecretary, 2)
	if s.TotalReceipts != 5 {
		t.Fatalf("got %d receipts, want 5", s.TotalReceipts)
	}
	if s.TotalAmount != 1046.50 {
		t.Fatalf("got total %v, want 1046.50", s.TotalAmount)
	}
	if s.AverageReceipt != 209.30 {
		t.Fatalf("got average %v, want 209.30", s.AverageReceipt)
	}

	if want := map[string]int{"imam": 2, "finance_secretary": 2, "auditor": 1}; len(s.ReceiptsByRole) != len(want) {
		t.Fatalf("got roles %v, want %v", s.ReceiptsByRole, want)
	} else {
		for role, count := range want {
			if s.ReceiptsByRole[role] != count {
				t.Fatalf("role %s: got %d, want %d", role, s.ReceiptsByRole[role], count)
			}
		}
	}

	// Most recently created first.
	if len(s.RecentReceipts) != 5 {
		t.Fatalf("got %d recent receipts, want 5", len(s.RecentReceipts))
	}
	if s.RecentReceipts[0].ID != 4 {
		t.Fatalf("most recent should be receipt 4, got %d", s.RecentReceipts[0].ID)
	}
	if s.RecentReceipts[0].Uploader != "yusuf" {
		t.Fatalf("recent uploader should be the username, got %q", s.RecentReceipts[0].Uploader)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	snap := &Snapshot{}

	s := BuildSummary(snap, entity.RoleAuditor, 3)
	if s.TotalReceipts != 0 || s.TotalAmount != 0 || s.AverageReceipt != 0 {
		t.Fatalf("empty snapshot should zero the summary, got %+v", s)
	}
	if len(s.ReceiptsByRole) != 0 {
		t.Fatalf("no role should appear with zero receipts, got %v", s.ReceiptsByRole)
	}
}

func TestBuildSummaryRecentLimitAndTieBreak(t *testing.T) {
	same := date(2025, time.March, 1)
	snap := &Snapshot{
		Users: []*entity.User{{ID: 2, Username: "amina", Role: entity.RoleFinanceSecretary}},
	}
	for i := int64(1); i <= 7; i++ {
		snap.Receipts = append(snap.Receipts, &entity.Receipt{
			ID: i, Amount: 10, Category: "Supplies", CreatedAt: same, UploadedBy: 2,
		})
	}

	s := BuildSummary(snap, entity.RoleFinanceSecretary, 2)
	if len(s.RecentReceipts) != 5 {
		t.Fatalf("got %d recent receipts, want 5", len(s.RecentReceipts))
	}
	// Equal timestamps fall back to newest id first.
	for i, want := range []int64{7, 6, 5, 4, 3} {
		if s.RecentReceipts[i].ID != want {
			t.Fatalf("recent %d: got id %d, want %d", i, s.RecentReceipts[i].ID, want)
		}
	}
}

func TestBuildSummaryTopCategoryLimit(t *testing.T) {
	snap := &Snapshot{}
	categories := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, c := range categories {
		snap.Receipts = append(snap.Receipts, &entity.Receipt{
			ID: int64(i + 1), Amount: float64(100 - i), Category: c, UploadedBy: 2,
		})
	}

	s := BuildSummary(snap, entity.RoleAuditor, 3)
	if len(s.TopCategories) != 5 {
		t.Fatalf("got %d top categories, want 5", len(s.TopCategories))
	}
	if s.TopCategories[0].Category != "A" {
		t.Fatalf("highest spend should rank first, got %q", s.TopCategories[0].Category)
	}
}
