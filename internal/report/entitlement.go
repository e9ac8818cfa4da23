package report

import (
	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// Operation names a gated report surface.
type Operation string

const (
	OpTally            Operation = "tally"
	OpReceiptsByTag    Operation = "receipts_by_tag"
	OpMonthlyBreakdown Operation = "monthly_breakdown"
	OpSummary          Operation = "summary"
	OpCharts           Operation = "charts"
	OpExport           Operation = "export"
)

// entitlements is the single role-to-entitlement table consulted at the
// service boundary. Imam is restricted to listing and searching their own
// receipts, which are not report operations and are not gated here.
var entitlements = map[entity.Role]map[Operation]bool{
	entity.RoleFinanceSecretary: {
		OpTally:            true,
		OpReceiptsByTag:    true,
		OpMonthlyBreakdown: true,
		OpSummary:          true,
		OpCharts:           true,
		OpExport:           true,
	},
	entity.RoleAuditor: {
		OpTally:            true,
		OpReceiptsByTag:    true,
		OpMonthlyBreakdown: true,
		OpSummary:          true,
		OpCharts:           true,
		OpExport:           true,
	},
	entity.RoleImam: {},
}

// Allowed reports whether the role may run the operation. Unknown roles are
// allowed nothing.
func Allowed(role entity.Role, op Operation) bool {
	return entitlements[role][op]
}
