package report

import (
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	tagUtilities = &entity.Tag{ID: 1, Name: "Utilities"}
	tagIftar     = &entity.Tag{ID: 2, Name: "Ramadan Iftar"}
)

// fixtureSnapshot builds a small deterministic record set. The imam (id 1)
// uploaded two receipts; everything else belongs to the finance secretary
// (id 2) and the auditor (id 3).
func fixtureSnapshot() *Snapshot {
	return &Snapshot{
		Receipts: []*entity.Receipt{
			{
				ID: 1, Amount: 120.50, Category: "Utilities", PaymentMode: entity.PaymentCash,
				StoreName: "City Power", ReceiptDate: date(2025, time.January, 15),
				CreatedAt: date(2025, time.January, 15), UploadedBy: 2,
				Tags: []entity.Tag{*tagUtilities},
			},
			{
				ID: 2, Amount: 80.25, Category: "Utilities", PaymentMode: entity.PaymentCard,
				StoreName: "Water Board", ReceiptDate: date(2025, time.January, 20),
				CreatedAt: date(2025, time.January, 20), UploadedBy: 1,
			},
			{
				ID: 3, Amount: 300, Category: "Maintenance", PaymentMode: entity.PaymentBankTransfer,
				StoreName: "Haruna Builders", ReceiptDate: date(2025, time.February, 10),
				CreatedAt: date(2025, time.February, 10), UploadedBy: 2,
			},
			{
				ID: 4, Amount: 45.75, Category: "Supplies", PaymentMode: entity.PaymentCash,
				StoreName: "Corner Market", ReceiptDate: date(2025, time.February, 14),
				CreatedAt: date(2025, time.February, 14), UploadedBy: 1,
				Tags: []entity.Tag{*tagIftar},
			},
			{
				ID: 5, Amount: 500, Category: "Maintenance", PaymentMode: entity.PaymentCheque,
				StoreName: "Haruna Builders", ReceiptDate: date(2024, time.December, 1),
				CreatedAt: date(2024, time.December, 1), UploadedBy: 3,
			},
		},
		Tags: []*entity.Tag{tagUtilities, tagIftar},
		Users: []*entity.User{
			{ID: 1, Username: "yusuf", FullName: "Yusuf Bello", Role: entity.RoleImam},
			{ID: 2, Username: "amina", FullName: "Amina Sule", Role: entity.RoleFinanceSecretary},
			{ID: 3, Username: "bilal", FullName: "Bilal Musa", Role: entity.RoleAuditor},
		},
	}
}

func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }
