package report

import (
	"cmp"
	"math"
	"slices"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// Group is one bucket of an aggregation: the key, the summed amount and the
// number of receipts in the bucket.
type Group[K cmp.Ordered] struct {
	Key   K
	Total float64
	Count int
}

// Aggregation is the result of grouping a record set by one dimension.
// Invariant: GrandTotal equals the sum of every group's Total and GrandCount
// equals the sum of every group's Count.
type Aggregation[K cmp.Ordered] struct {
	Groups     []Group[K]
	GrandTotal float64
	GrandCount int
}

// GroupBy groups records by keyFn and computes per-group sum and count in a
// single pass over the already scoped and filtered set. Groups are ordered by
// descending total; ties break by ascending key so the result is
// deterministic. An empty record set yields no groups and zero grand totals.
func GroupBy[K cmp.Ordered](records []*entity.Receipt, keyFn func(*entity.Receipt) K) Aggregation[K] {
	buckets := make(map[K]*Group[K])
	var agg Aggregation[K]
	for _, r := range records {
		key := keyFn(r)
		g, ok := buckets[key]
		if !ok {
			g = &Group[K]{Key: key}
			buckets[key] = g
		}
		g.Total += r.Amount
		g.Count++
		agg.GrandTotal += r.Amount
		agg.GrandCount++
	}

	agg.Groups = make([]Group[K], 0, len(buckets))
	for _, g := range buckets {
		agg.Groups = append(agg.Groups, *g)
	}
	slices.SortFunc(agg.Groups, func(a, b Group[K]) int {
		if a.Total != b.Total {
			if a.Total > b.Total {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return agg
}

// SortByKey reorders the groups by ascending key. Monthly breakdowns use this
// so chronological presentation overrides the descending-total default.
func (a *Aggregation[K]) SortByKey() {
	slices.SortFunc(a.Groups, func(x, y Group[K]) int {
		return cmp.Compare(x.Key, y.Key)
	})
}

// round2 rounds to two decimals. Applied only when shaping report output;
// intermediate aggregation keeps full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal, used for percentages.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
