package report

import (
	"testing"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

func TestAllowed(t *testing.T) {
	ops := []Operation{OpTally, OpReceiptsByTag, OpMonthlyBreakdown, OpSummary, OpCharts, OpExport}

	for _, op := range ops {
		if Allowed(entity.RoleImam, op) {
			t.Errorf("imam should not be allowed %s", op)
		}
		if !Allowed(entity.RoleFinanceSecretary, op) {
			t.Errorf("finance secretary should be allowed %s", op)
		}
		if !Allowed(entity.RoleAuditor, op) {
			t.Errorf("auditor should be allowed %s", op)
		}
		if Allowed(entity.Role("intern"), op) {
			t.Errorf("unknown role should not be allowed %s", op)
		}
	}
}
