package report

import (
	"slices"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// RecentReceipt is the compact projection used for the recent-activity list.
type RecentReceipt struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Uploader  string    `json:"uploader"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary is the overall activity report: totals, average, top categories,
// per-role receipt counts and the most recently created receipts.
type Summary struct {
	TotalReceipts  int             `json:"total_receipts"`
	TotalAmount    float64         `json:"total_amount"`
	AverageReceipt float64         `json:"average_receipt"`
	TopCategories  []CategoryTotal `json:"top_categories"`
	ReceiptsByRole map[string]int  `json:"receipts_by_role"`
	RecentReceipts []RecentReceipt `json:"recent_receipts"`
}

const topCategoryLimit = 5
const recentReceiptLimit = 5

// BuildSummary assembles the summary over the full scoped set.
func BuildSummary(snap *Snapshot, role entity.Role, viewerID int64) Summary {
	records := Scope(snap.Receipts, role, viewerID)
	users := snap.UserByID()

	byCategory := GroupBy(records, func(r *entity.Receipt) string { return r.Category })

	s := Summary{
		TotalReceipts:  byCategory.GrandCount,
		TotalAmount:    round2(byCategory.GrandTotal),
		ReceiptsByRole: map[string]int{},
	}
	if byCategory.GrandCount > 0 {
		s.AverageReceipt = round2(byCategory.GrandTotal / float64(byCategory.GrandCount))
	}

	top := byCategory.Groups
	if len(top) > topCategoryLimit {
		top = top[:topCategoryLimit]
	}
	s.TopCategories = make([]CategoryTotal, 0, len(top))
	for _, g := range top {
		s.TopCategories = append(s.TopCategories, CategoryTotal{
			Category: g.Key,
			Total:    round2(g.Total),
			Count:    g.Count,
		})
	}

	// Only roles with at least one receipt appear in the map.
	for _, r := range records {
		if u, ok := users[r.UploadedBy]; ok {
			s.ReceiptsByRole[string(u.Role)]++
		}
	}

	recent := slices.Clone(records)
	slices.SortFunc(recent, func(a, b *entity.Receipt) int {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if a.CreatedAt.After(b.CreatedAt) {
				return -1
			}
			return 1
		}
		// Same creation instant: newest id first for determinism.
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	if len(recent) > recentReceiptLimit {
		recent = recent[:recentReceiptLimit]
	}
	s.RecentReceipts = make([]RecentReceipt, 0, len(recent))
	for _, r := range recent {
		uploader := ""
		if u, ok := users[r.UploadedBy]; ok {
			uploader = u.Username
		}
		s.RecentReceipts = append(s.RecentReceipts, RecentReceipt{
			ID:        r.ID,
			Amount:    r.Amount,
			Category:  r.Category,
			Uploader:  uploader,
			CreatedAt: r.CreatedAt,
		})
	}
	return s
}
