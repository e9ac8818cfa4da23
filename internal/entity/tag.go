package entity

// Tag labels receipts for cross-cutting grouping (e.g. "ramadan", "repairs").
// Names are unique at storage; lookups for search are case-insensitive.
type Tag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TagWithCount adds the derived number of receipts referencing the tag.
type TagWithCount struct {
	Tag
	ReceiptCount int `json:"receipt_count"`
}
