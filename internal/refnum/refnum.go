// Package refnum generates the short human-readable reference numbers
// operators use to locate payments and transactions.
package refnum

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Payment and transaction reference prefixes.
const (
	PaymentPrefix     = "PAY"
	TransactionPrefix = "TXN"
)

// New returns a reference like "PAY-20260824-9F3C21AB": prefix, UTC date,
// and an 8-hex-char random suffix. Uniqueness is enforced by the store's
// unique index, not here; the suffix makes collisions vanishingly rare.
func New(prefix string, now time.Time) string {
	id := uuid.New()
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return prefix + "-" + now.UTC().Format("20060102") + "-" + suffix
}
