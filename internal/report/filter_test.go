package report

import (
	"testing"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

func matchedIDs(records []*entity.Receipt) []int64 {
	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestBuildCriteria(t *testing.T) {
	snap := fixtureSnapshot()
	cash := entity.PaymentCash

	tests := []struct {
		name    string
		c       Criteria
		wantIDs []int64
	}{
		{"no criteria matches all", Criteria{}, []int64{1, 2, 3, 4, 5}},
		{"amount range", Criteria{MinAmount: floatPtr(50), MaxAmount: floatPtr(150)}, []int64{1, 2}},
		{"store substring is case-insensitive", Criteria{StoreName: "haruna"}, []int64{3, 5}},
		{"category substring", Criteria{Category: "util"}, []int64{1, 2}},
		{"payment mode exact", Criteria{PaymentMode: &cash}, []int64{1, 4}},
		{"month and year conjoined", Criteria{Month: intPtr(2), Year: intPtr(2025)}, []int64{3, 4}},
		{"date window", Criteria{StartDate: "2025-01-16", EndDate: "2025-02-10"}, []int64{2, 3}},
		{"malformed start date is dropped", Criteria{StartDate: "not-a-date", EndDate: "2025-01-31"}, []int64{1, 2, 5}},
		{"tag by id", Criteria{TagID: int64Ptr(1)}, []int64{1}},
		{"tag by name", Criteria{TagName: "ramadan iftar"}, []int64{4}},
		{"unknown tag name rejects everything", Criteria{TagName: "ghost", Category: "util"}, []int64{}},
		{"unknown tag id rejects everything", Criteria{TagID: int64Ptr(99)}, []int64{}},
		{"uploaded by", Criteria{UploadedBy: int64Ptr(1)}, []int64{2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchedIDs(Filter(snap.Receipts, Build(tt.c, snap.Tags)))
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got ids %v, want %v", got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Fatalf("got ids %v, want %v", got, tt.wantIDs)
				}
			}
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	snap := fixtureSnapshot()
	pred := Build(Criteria{Category: "maintenance"}, snap.Tags)

	once := Filter(snap.Receipts, pred)
	twice := Filter(once, pred)
	if len(once) != len(twice) {
		t.Fatalf("second application changed the result: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("second application reordered results at %d", i)
		}
	}
}

func TestResolveTag(t *testing.T) {
	tags := []*entity.Tag{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Seafood"},
		{ID: 3, Name: "Travel"},
	}

	tests := []struct {
		name   string
		id     *int64
		query  string
		wantID int64
	}{
		{"id lookup is exact", int64Ptr(2), "", 2},
		{"exact name wins over containment", nil, "food", 1},
		{"containment fallback", nil, "trav", 3},
		{"case-insensitive exact", nil, "SEAFOOD", 2},
		{"no match", nil, "rent", 0},
		{"empty query", nil, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTag(tags, tt.id, tt.query)
			if tt.wantID == 0 {
				if got != nil {
					t.Fatalf("expected no tag, got %q", got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected tag id %d, got nil", tt.wantID)
			}
			if got.ID != tt.wantID {
				t.Fatalf("got tag id %d, want %d", got.ID, tt.wantID)
			}
		})
	}
}

func TestParseDateLenient(t *testing.T) {
	if _, ok := parseDateLenient("2025-03-01"); !ok {
		t.Fatal("plain date should parse")
	}
	if _, ok := parseDateLenient("2025-03-01T10:30:00Z"); !ok {
		t.Fatal("RFC 3339 should parse")
	}
	if _, ok := parseDateLenient("03/01/2025"); ok {
		t.Fatal("slash format should not parse")
	}
	if _, ok := parseDateLenient(""); ok {
		t.Fatal("empty string should not parse")
	}
}
