package report

import (
	"testing"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

func TestGroupByReconciles(t *testing.T) {
	snap := fixtureSnapshot()
	agg := GroupBy(snap.Receipts, func(r *entity.Receipt) string { return r.Category })

	var total float64
	var count int
	for _, g := range agg.Groups {
		total += g.Total
		count += g.Count
	}
	if total != agg.GrandTotal {
		t.Fatalf("group totals sum to %v, grand total is %v", total, agg.GrandTotal)
	}
	if count != agg.GrandCount {
		t.Fatalf("group counts sum to %d, grand count is %d", count, agg.GrandCount)
	}
	if agg.GrandCount != len(snap.Receipts) {
		t.Fatalf("grand count %d, want %d", agg.GrandCount, len(snap.Receipts))
	}
}

func TestGroupByOrdering(t *testing.T) {
	snap := fixtureSnapshot()
	agg := GroupBy(snap.Receipts, func(r *entity.Receipt) string { return r.Category })

	// Maintenance 800 > Utilities 200.75 > Supplies 45.75.
	want := []string{"Maintenance", "Utilities", "Supplies"}
	if len(agg.Groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(agg.Groups), len(want))
	}
	for i, g := range agg.Groups {
		if g.Key != want[i] {
			t.Errorf("group %d: got %q, want %q", i, g.Key, want[i])
		}
	}
}

func TestGroupByTieBreaksByKey(t *testing.T) {
	records := []*entity.Receipt{
		{ID: 1, Amount: 10, Category: "zakat"},
		{ID: 2, Amount: 10, Category: "adhan"},
	}
	agg := GroupBy(records, func(r *entity.Receipt) string { return r.Category })
	if agg.Groups[0].Key != "adhan" || agg.Groups[1].Key != "zakat" {
		t.Fatalf("equal totals should order by ascending key, got %q then %q",
			agg.Groups[0].Key, agg.Groups[1].Key)
	}
}

func TestGroupByEmpty(t *testing.T) {
	agg := GroupBy(nil, func(r *entity.Receipt) string { return r.Category })
	if len(agg.Groups) != 0 || agg.GrandTotal != 0 || agg.GrandCount != 0 {
		t.Fatalf("empty input should yield empty aggregation, got %+v", agg)
	}
}

func TestSortByKey(t *testing.T) {
	records := []*entity.Receipt{
		{ID: 1, Amount: 5, ReceiptDate: date(2025, 3, 1)},
		{ID: 2, Amount: 50, ReceiptDate: date(2025, 1, 1)},
		{ID: 3, Amount: 20, ReceiptDate: date(2025, 7, 1)},
	}
	agg := GroupBy(records, func(r *entity.Receipt) int { return int(r.ReceiptDate.Month()) })
	agg.SortByKey()

	want := []int{1, 3, 7}
	for i, g := range agg.Groups {
		if g.Key != want[i] {
			t.Fatalf("group %d: got month %d, want %d", i, g.Key, want[i])
		}
	}
}
