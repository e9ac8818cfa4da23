package entity

import (
	"time"
)

// Receipt represents a recorded expense for data transfer between layers.
// ReceiptDate is the financial date of the expense; CreatedAt is when the
// record entered the system.
type Receipt struct {
	ID          int64       `json:"id"`
	Amount      float64     `json:"amount"`
	Category    string      `json:"category"`
	PaymentMode PaymentMode `json:"payment_mode"`
	Note        string      `json:"note,omitempty"`
	StoreName   string      `json:"store_name,omitempty"`
	ImagePath   string      `json:"image_path,omitempty"`
	ReceiptDate time.Time   `json:"receipt_date"`
	CreatedAt   time.Time   `json:"created_at"`
	UploadedBy  int64       `json:"uploaded_by"`
	Tags        []Tag       `json:"tags,omitempty"`
}

// HasTag reports whether the receipt carries the given tag.
func (r *Receipt) HasTag(tagID int64) bool {
	for _, t := range r.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

// ReceiptWithUploader pairs a receipt with the resolved uploader name.
// It is constructed by value at the service boundary rather than patched
// onto the storage representation.
type ReceiptWithUploader struct {
	Receipt
	UploaderName string `json:"uploader_name"`
}
