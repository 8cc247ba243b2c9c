package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, New(1, "USD").Validate())
	assert.NoError(t, New(100, "USDT").Validate())

	assert.Error(t, New(0, "USD").Validate())
	assert.Error(t, New(-1, "USD").Validate())
	assert.Error(t, New(100, "").Validate())
	assert.Error(t, New(100, "US").Validate())
	assert.Error(t, New(100, "DOLLAR").Validate())
	assert.Error(t, New(100, "usd").Validate())
}

func TestSameCurrency(t *testing.T) {
	assert.True(t, New(1, "USD").SameCurrency(New(2, "USD")))
	assert.False(t, New(1, "USD").SameCurrency(New(1, "EUR")))
}

func TestString(t *testing.T) {
	assert.Equal(t, "250 USD", New(250, "USD").String())
}
