package utils

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewReference returns a fresh opaque identifier for campaigns and payout
// ledger lines.
func NewReference() string {
	return uuid.NewString()
}

func StringPtr(s string) *string {
	return &s
}

func IntPtr(i int) *int {
	return &i
}

func BoolPtr(b bool) *bool {
	return &b
}

func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
