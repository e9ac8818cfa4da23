package entity

import (
	"fmt"
	"strings"
)

// PaymentMode is the closed set of ways a receipt can be paid.
type PaymentMode string

const (
	PaymentCash         PaymentMode = "cash"
	PaymentCard         PaymentMode = "card"
	PaymentBankTransfer PaymentMode = "bank_transfer"
	PaymentCheque       PaymentMode = "cheque"
	PaymentOther        PaymentMode = "other"
)

// PaymentModes lists every member of the enumeration in declaration order.
var PaymentModes = []PaymentMode{
	PaymentCash,
	PaymentCard,
	PaymentBankTransfer,
	PaymentCheque,
	PaymentOther,
}

// Valid reports whether m is a member of the enumeration.
func (m PaymentMode) Valid() bool {
	for _, known := range PaymentModes {
		if m == known {
			return true
		}
	}
	return false
}

// ParsePaymentMode maps external input onto the enumeration. Case is folded
// and spaces/hyphens collapse to underscores, so "Bank Transfer" and
// "BANK-TRANSFER" both resolve to bank_transfer. Anything else is an error
// naming the accepted values.
func ParsePaymentMode(s string) (PaymentMode, error) {
	norm := normalizeEnumToken(s)
	for _, m := range PaymentModes {
		if norm == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid payment_mode %q: expected one of: %s", s, joinPaymentModes())
}

func joinPaymentModes() string {
	names := make([]string, len(PaymentModes))
	for i, m := range PaymentModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func normalizeEnumToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
