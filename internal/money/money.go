// Package money holds the minor-unit money primitives shared across drift.
//
// All amounts are integer minor units (cents) paired with a 3-4 character
// currency code. There is no floating point anywhere in the money path.
package money

import (
	"fmt"
	"strconv"
)

// Money is an amount in minor units with its currency.
type Money struct {
	AmountMinor int64
	Currency    string
}

// New builds a Money value. It does not validate; call Validate where the
// value crosses a trust boundary.
func New(amountMinor int64, currency string) Money {
	return Money{AmountMinor: amountMinor, Currency: currency}
}

// ValidCurrency reports whether the code looks like a 3-4 character
// currency code. Uppercasing is the caller's concern; the ledger stores
// codes exactly as accounts were created with.
func ValidCurrency(code string) bool {
	if len(code) < 3 || len(code) > 4 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// Validate checks that the amount is strictly positive and the currency is
// plausible. Zero and negative amounts are rejected everywhere money moves.
func (m Money) Validate() error {
	if m.AmountMinor <= 0 {
		return fmt.Errorf("amount must be > 0, got %d", m.AmountMinor)
	}
	if !ValidCurrency(m.Currency) {
		return fmt.Errorf("invalid currency %q", m.Currency)
	}
	return nil
}

// SameCurrency reports whether both values carry the same currency code.
func (m Money) SameCurrency(other Money) bool {
	return m.Currency == other.Currency
}

func (m Money) String() string {
	return strconv.FormatInt(m.AmountMinor, 10) + " " + m.Currency
}
