package report

import (
	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// Scope restricts records to what the viewer's role may see: imam keeps only
// records they uploaded, finance_secretary and auditor see everything. It
// must run before any other filter so role restriction cannot be bypassed by
// composition order. Unknown roles are rejected at the boundary before the
// engine runs; if one slips through, nothing is visible.
func Scope(records []*entity.Receipt, role entity.Role, viewerID int64) []*entity.Receipt {
	switch role {
	case entity.RoleFinanceSecretary, entity.RoleAuditor:
		return records
	case entity.RoleImam:
		out := make([]*entity.Receipt, 0, len(records))
		for _, r := range records {
			if r.UploadedBy == viewerID {
				out = append(out, r)
			}
		}
		return out
	default:
		return nil
	}
}
