package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func TestPaymentEnvelopeWireFields(t *testing.T) {
	ev := PaymentEvent{
		PaymentID:            "pay-1",
		ReferenceNumber:      "PAY-20260824-ABCD1234",
		SourceAccountID:      "acct-a",
		DestinationAccountID: "acct-b",
		Amount:               250,
		Currency:             "USD",
		PaymentType:          "TRANSFER",
		PaymentStatus:        "COMPLETED",
		ReservationID:        "res-1",
		Description:          "payment acct-a -> acct-b",
	}
	ev.Stamp(PaymentCompleted, testNow)

	b, err := json.Marshal(ev)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	// Field names are the wire contract.
	for _, key := range []string{
		"event_id", "event_type", "event_timestamp", "event_version",
		"payment_id", "reference_number",
		"source_account_id", "destination_account_id",
		"amount", "currency", "payment_type", "payment_status",
		"reservation_id", "description", "failure_reason",
	} {
		assert.Contains(t, raw, key)
	}

	assert.Equal(t, "PAYMENT_COMPLETED", raw["event_type"])
	assert.Equal(t, "1.0", raw["event_version"])
	assert.Equal(t, "2026-08-24T12:00:00Z", raw["event_timestamp"])
	assert.Equal(t, float64(250), raw["amount"])
	assert.Nil(t, raw["failure_reason"])
	assert.NotEmpty(t, raw["event_id"])
}

func TestTransactionEnvelopeWireFields(t *testing.T) {
	ev := TransactionEvent{
		TransactionID:     "tx-1",
		ReferenceNumber:   "TXN-20260824-ABCD1234",
		PaymentID:         "pay-1",
		Amount:            250,
		Currency:          "USD",
		TransactionType:   "TRANSFER",
		TransactionStatus: "FAILED",
		FailureReason:     FailureReason("credit failed"),
	}
	ev.Stamp(TransactionFailed, testNow)

	b, err := json.Marshal(ev)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	for _, key := range []string{
		"event_id", "event_type", "event_timestamp", "event_version",
		"transaction_id", "reference_number",
		"source_account_id", "destination_account_id",
		"amount", "currency", "transaction_type", "transaction_status",
		"payment_id", "description", "failure_reason",
	} {
		assert.Contains(t, raw, key)
	}

	assert.Equal(t, "TRANSACTION_FAILED", raw["event_type"])
	assert.Equal(t, "credit failed", raw["failure_reason"])
}

func TestStampGeneratesUniqueEventIDs(t *testing.T) {
	var a, b PaymentEvent
	a.Stamp(PaymentInitiated, testNow)
	b.Stamp(PaymentInitiated, testNow)
	assert.NotEqual(t, a.EventID, b.EventID)
}

func TestFailureReasonNullable(t *testing.T) {
	assert.Nil(t, FailureReason(""))
	r := FailureReason("boom")
	require.NotNil(t, r)
	assert.Equal(t, "boom", *r)
}
