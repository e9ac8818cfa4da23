package report

import (
	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// Fixed palettes for the dashboard pies. They may be shorter than the number
// of slices; colors repeat cyclically in palette order.
var (
	categoryPalette = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#FF9F40", "#9966FF", "#FF6384"}
	paymentPalette  = []string{"#4BC0C0", "#FF9F40", "#9966FF", "#FF6384", "#36A2EB"}
)

const noDataMessage = "No data available for the selected period"

// PieChart is a label/value/color series for a pie rendering.
type PieChart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

// BarChart is a chronological label/value series.
type BarChart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// CategoryShare ranks a category with its share of the grand total.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// ChartStats summarizes the filtered set for the dashboard header.
type ChartStats struct {
	TotalAmount     float64 `json:"total_amount"`
	ReceiptCount    int     `json:"receipt_count"`
	AverageReceipt  float64 `json:"average_receipt,omitempty"`
	LargestExpense  float64 `json:"largest_expense,omitempty"`
	SmallestExpense float64 `json:"smallest_expense,omitempty"`
}

// ChartData is the dashboard payload. When no records match, Message is set
// and the chart fields stay empty with zeroed stats. BarChartMonthly is only
// populated when a year was supplied.
type ChartData struct {
	Message          string          `json:"message,omitempty"`
	PieChartCategory *PieChart       `json:"pie_chart_category,omitempty"`
	PieChartPayment  *PieChart       `json:"pie_chart_payment,omitempty"`
	BarChartMonthly  *BarChart       `json:"bar_chart_monthly"`
	TopCategories    []CategoryShare `json:"top_categories,omitempty"`
	Stats            ChartStats      `json:"stats"`
}

// BuildChartData assembles the dashboard report for an optional month/year
// window.
func BuildChartData(snap *Snapshot, role entity.Role, viewerID int64, month, year *int) ChartData {
	records := Scope(snap.Receipts, role, viewerID)
	records = Filter(records, Build(Criteria{Month: month, Year: year}, snap.Tags))

	if len(records) == 0 {
		return ChartData{Message: noDataMessage}
	}

	byCategory := GroupBy(records, func(r *entity.Receipt) string { return r.Category })
	byMode := GroupBy(records, func(r *entity.Receipt) string { return string(r.PaymentMode) })
	grandTotal := byCategory.GrandTotal

	data := ChartData{
		PieChartCategory: pieFromAggregation(byCategory, categoryPalette),
		PieChartPayment:  pieFromAggregation(byMode, paymentPalette),
	}

	top := byCategory.Groups
	if len(top) > topCategoryLimit {
		top = top[:topCategoryLimit]
	}
	data.TopCategories = make([]CategoryShare, 0, len(top))
	for _, g := range top {
		pct := 0.0
		if grandTotal > 0 {
			pct = round1(g.Total / grandTotal * 100)
		}
		data.TopCategories = append(data.TopCategories, CategoryShare{
			Category:   g.Key,
			Amount:     g.Total,
			Percentage: pct,
		})
	}

	largest := records[0].Amount
	smallest := records[0].Amount
	for _, r := range records[1:] {
		if r.Amount > largest {
			largest = r.Amount
		}
		if r.Amount < smallest {
			smallest = r.Amount
		}
	}
	data.Stats = ChartStats{
		TotalAmount:     round2(grandTotal),
		ReceiptCount:    len(records),
		AverageReceipt:  round2(grandTotal / float64(len(records))),
		LargestExpense:  round2(largest),
		SmallestExpense: round2(smallest),
	}

	if year != nil {
		// Trend ignores the month filter: it charts the whole year.
		yearRecords := Filter(Scope(snap.Receipts, role, viewerID), Build(Criteria{Year: year}, snap.Tags))
		monthly := GroupBy(yearRecords, func(r *entity.Receipt) int { return int(r.ReceiptDate.Month()) })
		monthly.SortByKey()
		trend := &BarChart{
			Labels: make([]string, 0, len(monthly.Groups)),
			Data:   make([]float64, 0, len(monthly.Groups)),
		}
		for _, g := range monthly.Groups {
			trend.Labels = append(trend.Labels, monthAbbrevs[g.Key-1])
			trend.Data = append(trend.Data, g.Total)
		}
		data.BarChartMonthly = trend
	}
	return data
}

func pieFromAggregation(agg Aggregation[string], palette []string) *PieChart {
	pie := &PieChart{
		Labels: make([]string, 0, len(agg.Groups)),
		Data:   make([]float64, 0, len(agg.Groups)),
		Colors: make([]string, 0, len(agg.Groups)),
	}
	for i, g := range agg.Groups {
		pie.Labels = append(pie.Labels, g.Key)
		pie.Data = append(pie.Data, g.Total)
		pie.Colors = append(pie.Colors, palette[i%len(palette)])
	}
	return pie
}
