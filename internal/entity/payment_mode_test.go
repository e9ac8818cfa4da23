package entity

import (
	"strings"
	"testing"
)

func TestParsePaymentMode(t *testing.T) {
	tests := []struct {
		in      string
		want    PaymentMode
		wantErr bool
	}{
		{"cash", PaymentCash, false},
		{"CASH", PaymentCash, false},
		{"Bank Transfer", PaymentBankTransfer, false},
		{"bank-transfer", PaymentBankTransfer, false},
		{"  cheque  ", PaymentCheque, false},
		{"bitcoin", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePaymentMode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePaymentMode(%q) should fail", tt.in)
				}
				// The error names the accepted values for the client.
				if !strings.Contains(err.Error(), string(PaymentCash)) {
					t.Fatalf("error should list valid modes, got %q", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePaymentMode(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParsePaymentMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"imam", RoleImam, false},
		{"Finance Secretary", RoleFinanceSecretary, false},
		{"AUDITOR", RoleAuditor, false},
		{"treasurer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRole(%q) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRole(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReceiptHasTag(t *testing.T) {
	r := Receipt{Tags: []Tag{{ID: 1, Name: "Utilities"}, {ID: 2, Name: "Ramadan Iftar"}}}
	if !r.HasTag(2) {
		t.Fatal("HasTag(2) should be true")
	}
	if r.HasTag(3) {
		t.Fatal("HasTag(3) should be false")
	}
}
