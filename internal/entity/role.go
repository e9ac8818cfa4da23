package entity

import (
	"fmt"
	"strings"
)

// Role is the closed set of viewer roles.
type Role string

const (
	RoleImam             Role = "imam"
	RoleFinanceSecretary Role = "finance_secretary"
	RoleAuditor          Role = "auditor"
)

// Roles lists every member of the enumeration in declaration order.
var Roles = []Role{RoleImam, RoleFinanceSecretary, RoleAuditor}

// Valid reports whether r is a member of the enumeration.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole maps external input onto the enumeration, folding case and
// flattening separators ("Finance Secretary" -> finance_secretary).
func ParseRole(s string) (Role, error) {
	norm := normalizeEnumToken(s)
	for _, r := range Roles {
		if norm == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid role %q: expected one of: %s", s, joinRoles())
}

func joinRoles() string {
	names := make([]string, len(Roles))
	for i, r := range Roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
