package report

import (
	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// CategoryTotal is one category bucket of a breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// PaymentModeTotal is one payment-mode bucket of a breakdown.
type PaymentModeTotal struct {
	PaymentMode entity.PaymentMode `json:"payment_mode"`
	Total       float64            `json:"total"`
	Count       int                `json:"count"`
}

// Tally is the aggregate spending report: grand total, the filters that were
// actually applied, and breakdowns by category and payment mode.
type Tally struct {
	TotalAmount    float64            `json:"total_amount"`
	ReceiptCount   int                `json:"receipt_count"`
	FiltersApplied map[string]any     `json:"filters_applied"`
	ByCategory     []CategoryTotal    `json:"by_category"`
	ByPaymentMode  []PaymentModeTotal `json:"by_payment_mode"`
}

// BuildTally composes scoping, filtering and aggregation into the tally
// shape. Both breakdowns aggregate the same filtered set, so their totals
// always reconcile with TotalAmount.
func BuildTally(snap *Snapshot, role entity.Role, viewerID int64, c Criteria) Tally {
	records := Scope(snap.Receipts, role, viewerID)
	records = Filter(records, Build(c, snap.Tags))

	byCategory := GroupBy(records, func(r *entity.Receipt) string { return r.Category })
	byMode := GroupBy(records, func(r *entity.Receipt) string { return string(r.PaymentMode) })

	t := Tally{
		TotalAmount:    round2(byCategory.GrandTotal),
		ReceiptCount:   byCategory.GrandCount,
		FiltersApplied: appliedFilters(c, snap.Tags),
		ByCategory:     make([]CategoryTotal, 0, len(byCategory.Groups)),
		ByPaymentMode:  make([]PaymentModeTotal, 0, len(byMode.Groups)),
	}
	for _, g := range byCategory.Groups {
		t.ByCategory = append(t.ByCategory, CategoryTotal{
			Category: g.Key,
			Total:    round2(g.Total),
			Count:    g.Count,
		})
	}
	for _, g := range byMode.Groups {
		t.ByPaymentMode = append(t.ByPaymentMode, PaymentModeTotal{
			PaymentMode: entity.PaymentMode(g.Key),
			Total:       round2(g.Total),
			Count:       g.Count,
		})
	}
	return t
}

// appliedFilters echoes the supplied criteria back for client display,
// including the resolved tag name when a tag filter was given.
func appliedFilters(c Criteria, tags []*entity.Tag) map[string]any {
	applied := map[string]any{}
	if c.Month != nil {
		applied["month"] = *c.Month
	}
	if c.Year != nil {
		applied["year"] = *c.Year
	}
	if c.TagID != nil {
		applied["tag_id"] = *c.TagID
	}
	if c.TagName != "" {
		applied["tag_name"] = c.TagName
	}
	if c.TagID != nil || c.TagName != "" {
		if tag := ResolveTag(tags, c.TagID, c.TagName); tag != nil {
			applied["tag"] = tag.Name
		}
	}
	return applied
}
