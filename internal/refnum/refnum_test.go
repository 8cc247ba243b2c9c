package refnum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFormat(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	ref := New(PaymentPrefix, now)
	assert.Regexp(t, `^PAY-20260824-[0-9A-F]{8}$`, ref)

	ref = New(TransactionPrefix, now)
	assert.Regexp(t, `^TXN-20260824-[0-9A-F]{8}$`, ref)
}

func TestNewIsRandomized(t *testing.T) {
	now := time.Now()
	assert.NotEqual(t, New(PaymentPrefix, now), New(PaymentPrefix, now))
}
