package report

import (
	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthTotal is one month's spending within a year.
type MonthTotal struct {
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	Total     float64 `json:"total"`
	Count     int     `json:"count"`
}

// MonthlyBreakdown groups a year's receipts by calendar month, ordered
// chronologically. Months without receipts are omitted, not zero-filled:
// the report reflects observed activity only.
type MonthlyBreakdown struct {
	Year        int          `json:"year"`
	TotalAmount float64      `json:"total_amount"`
	Months      []MonthTotal `json:"months"`
}

// BuildMonthlyBreakdown assembles the per-month report for the given year.
func BuildMonthlyBreakdown(snap *Snapshot, role entity.Role, viewerID int64, year int) MonthlyBreakdown {
	records := Scope(snap.Receipts, role, viewerID)
	records = Filter(records, Build(Criteria{Year: &year}, snap.Tags))

	agg := GroupBy(records, func(r *entity.Receipt) int { return int(r.ReceiptDate.Month()) })
	agg.SortByKey()

	b := MonthlyBreakdown{
		Year:        year,
		TotalAmount: round2(agg.GrandTotal),
		Months:      make([]MonthTotal, 0, len(agg.Groups)),
	}
	for _, g := range agg.Groups {
		b.Months = append(b.Months, MonthTotal{
			Month:     g.Key,
			MonthName: monthNames[g.Key-1],
			Total:     round2(g.Total),
			Count:     g.Count,
		})
	}
	return b
}
