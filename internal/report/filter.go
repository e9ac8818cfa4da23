package report

import (
	"strings"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// Criteria carries the optional filters of one report request. All supplied
// criteria are conjunctive. Month, Year and PaymentMode are validated and
// parsed at the boundary before they reach the engine; StartDate and EndDate
// are lenient date strings where a malformed value drops the criterion.
type Criteria struct {
	StoreName   string
	Category    string
	TagID       *int64
	TagName     string
	MinAmount   *float64
	MaxAmount   *float64
	StartDate   string
	EndDate     string
	PaymentMode *entity.PaymentMode
	UploadedBy  *int64
	Month       *int
	Year        *int
}

// Predicate decides whether a receipt matches one report request.
type Predicate func(*entity.Receipt) bool

// ResolveTag resolves a tag filter against the snapshot's tags. Lookup by id
// is exact; lookup by name is case-insensitive, preferring an exact name
// match over the first containment match. Returns nil when nothing resolves.
func ResolveTag(tags []*entity.Tag, id *int64, name string) *entity.Tag {
	if id != nil {
		for _, t := range tags {
			if t.ID == *id {
				return t
			}
		}
		return nil
	}
	if name == "" {
		return nil
	}
	needle := strings.ToLower(name)
	var contains *entity.Tag
	for _, t := range tags {
		lower := strings.ToLower(t.Name)
		if lower == needle {
			return t
		}
		if contains == nil && strings.Contains(lower, needle) {
			contains = t
		}
	}
	return contains
}

// Build lowers the criteria into a single composite predicate. Cheap numeric
// checks run before substring checks; the order is not observable since AND
// is commutative. An unresolvable tag filter makes the composite reject
// every record rather than silently ignoring the filter.
func Build(c Criteria, tags []*entity.Tag) Predicate {
	var preds []Predicate

	if c.Month != nil {
		month := *c.Month
		preds = append(preds, func(r *entity.Receipt) bool {
			return int(r.ReceiptDate.Month()) == month
		})
	}
	if c.Year != nil {
		year := *c.Year
		preds = append(preds, func(r *entity.Receipt) bool {
			return r.ReceiptDate.Year() == year
		})
	}
	if c.MinAmount != nil {
		min := *c.MinAmount
		preds = append(preds, func(r *entity.Receipt) bool {
			return r.Amount >= min
		})
	}
	if c.MaxAmount != nil {
		max := *c.MaxAmount
		preds = append(preds, func(r *entity.Receipt) bool {
			return r.Amount <= max
		})
	}
	if c.UploadedBy != nil {
		uploader := *c.UploadedBy
		preds = append(preds, func(r *entity.Receipt) bool {
			return r.UploadedBy == uploader
		})
	}
	if c.PaymentMode != nil {
		mode := *c.PaymentMode
		preds = append(preds, func(r *entity.Receipt) bool {
			return r.PaymentMode == mode
		})
	}
	if start, ok := parseDateLenient(c.StartDate); ok {
		preds = append(preds, func(r *entity.Receipt) bool {
			return !r.ReceiptDate.Before(start)
		})
	}
	if end, ok := parseDateLenient(c.EndDate); ok {
		preds = append(preds, func(r *entity.Receipt) bool {
			return !r.ReceiptDate.After(end)
		})
	}
	if c.StoreName != "" {
		needle := strings.ToLower(c.StoreName)
		preds = append(preds, func(r *entity.Receipt) bool {
			return strings.Contains(strings.ToLower(r.StoreName), needle)
		})
	}
	if c.Category != "" {
		needle := strings.ToLower(c.Category)
		preds = append(preds, func(r *entity.Receipt) bool {
			return strings.Contains(strings.ToLower(r.Category), needle)
		})
	}
	if c.TagID != nil || c.TagName != "" {
		tag := ResolveTag(tags, c.TagID, c.TagName)
		if tag == nil {
			return func(*entity.Receipt) bool { return false }
		}
		tagID := tag.ID
		preds = append(preds, func(r *entity.Receipt) bool {
			return r.HasTag(tagID)
		})
	}

	return func(r *entity.Receipt) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Filter returns the records matching the predicate.
func Filter(records []*entity.Receipt, match Predicate) []*entity.Receipt {
	out := make([]*entity.Receipt, 0, len(records))
	for _, r := range records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// parseDateLenient accepts YYYY-MM-DD and RFC 3339 timestamps. Anything else
// reports !ok, which drops the criterion instead of failing the request.
func parseDateLenient(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
