package payment

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/driftpay/drift/internal/fault"
	"github.com/driftpay/drift/internal/money"
	ledgerv1 "github.com/driftpay/drift/pkg/proto/ledger/v1"
	txrecordv1 "github.com/driftpay/drift/pkg/proto/txrecord/v1"
)

// LedgerClient is the orchestrator's view of the ledger service.
type LedgerClient interface {
	// GetBalance doubles as the account-existence probe at create time.
	GetBalance(ctx context.Context, accountID string) (money.Money, error)
	ReserveBalance(ctx context.Context, accountID string, amount money.Money, idempotencyKey string) (string, error)
	CommitReservation(ctx context.Context, reservationID, transactionID string) error
	ReleaseReservation(ctx context.Context, reservationID, reason string) error
	CreditBalance(ctx context.Context, accountID string, amount money.Money, referenceID string) (int64, error)
}

// CreateTransactionInput mirrors the transaction service's create request.
type CreateTransactionInput struct {
	PaymentID            string
	ReservationID        string
	SourceAccountID      string
	DestinationAccountID string
	Amount               money.Money
	IdempotencyKey       string
}

// TxRecordClient is the orchestrator's view of the transaction record
// service.
type TxRecordClient interface {
	CreateTransaction(ctx context.Context, in CreateTransactionInput) (transactionID, referenceNumber string, err error)
	CompleteTransaction(ctx context.Context, transactionID string) error
	FailTransaction(ctx context.Context, transactionID, reason string) error
}

// DefaultRPCTimeout bounds each outbound call when the caller's context
// carries no tighter deadline.
const DefaultRPCTimeout = 5 * time.Second

// GRPCLedgerClient adapts a generated ledger stub to LedgerClient,
// translating grpc status codes back into the fault taxonomy.
type GRPCLedgerClient struct {
	client  ledgerv1.LedgerServiceClient
	timeout time.Duration
}

// NewGRPCLedgerClient wraps the stub. timeout <= 0 uses DefaultRPCTimeout.
func NewGRPCLedgerClient(client ledgerv1.LedgerServiceClient, timeout time.Duration) *GRPCLedgerClient {
	if timeout <= 0 {
		timeout = DefaultRPCTimeout
	}
	return &GRPCLedgerClient{client: client, timeout: timeout}
}

func (c *GRPCLedgerClient) GetBalance(ctx context.Context, accountID string) (money.Money, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.GetBalance(ctx, &ledgerv1.GetBalanceRequest{AccountId: accountID})
	if err != nil {
		return money.Money{}, faultFromRPC("ledger.GetBalance", err)
	}
	return money.New(resp.GetAvailable().GetAmountMinor(), resp.GetCurrency()), nil
}

func (c *GRPCLedgerClient) ReserveBalance(ctx context.Context, accountID string, amount money.Money, idempotencyKey string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.ReserveBalance(ctx, &ledgerv1.ReserveBalanceRequest{
		AccountId:      accountID,
		Amount:         &ledgerv1.Money{AmountMinor: amount.AmountMinor, Currency: amount.Currency},
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return "", faultFromRPC("ledger.ReserveBalance", err)
	}
	return resp.GetReservationId(), nil
}

func (c *GRPCLedgerClient) CommitReservation(ctx context.Context, reservationID, transactionID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.CommitReservation(ctx, &ledgerv1.CommitReservationRequest{
		ReservationId: reservationID,
		TransactionId: transactionID,
	})
	return faultFromRPC("ledger.CommitReservation", err)
}

func (c *GRPCLedgerClient) ReleaseReservation(ctx context.Context, reservationID, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.ReleaseReservation(ctx, &ledgerv1.ReleaseReservationRequest{
		ReservationId: reservationID,
		Reason:        reason,
	})
	return faultFromRPC("ledger.ReleaseReservation", err)
}

func (c *GRPCLedgerClient) CreditBalance(ctx context.Context, accountID string, amount money.Money, referenceID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreditBalance(ctx, &ledgerv1.CreditBalanceRequest{
		AccountId:   accountID,
		Amount:      &ledgerv1.Money{AmountMinor: amount.AmountMinor, Currency: amount.Currency},
		ReferenceId: referenceID,
	})
	if err != nil {
		return 0, faultFromRPC("ledger.CreditBalance", err)
	}
	return resp.GetNewBalance().GetAmountMinor(), nil
}

// GRPCTxRecordClient adapts a generated transaction stub to TxRecordClient.
type GRPCTxRecordClient struct {
	client  txrecordv1.TransactionServiceClient
	timeout time.Duration
}

// NewGRPCTxRecordClient wraps the stub. timeout <= 0 uses DefaultRPCTimeout.
func NewGRPCTxRecordClient(client txrecordv1.TransactionServiceClient, timeout time.Duration) *GRPCTxRecordClient {
	if timeout <= 0 {
		timeout = DefaultRPCTimeout
	}
	return &GRPCTxRecordClient{client: client, timeout: timeout}
}

func (c *GRPCTxRecordClient) CreateTransaction(ctx context.Context, in CreateTransactionInput) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateTransaction(ctx, &txrecordv1.CreateTransactionRequest{
		PaymentId:            in.PaymentID,
		ReservationId:        in.ReservationID,
		SourceAccountId:      in.SourceAccountID,
		DestinationAccountId: in.DestinationAccountID,
		Amount:               &ledgerv1.Money{AmountMinor: in.Amount.AmountMinor, Currency: in.Amount.Currency},
		IdempotencyKey:       in.IdempotencyKey,
	})
	if err != nil {
		return "", "", faultFromRPC("txrecord.CreateTransaction", err)
	}
	return resp.GetTransactionId(), resp.GetReferenceNumber(), nil
}

func (c *GRPCTxRecordClient) CompleteTransaction(ctx context.Context, transactionID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.CompleteTransaction(ctx, &txrecordv1.CompleteTransactionRequest{
		TransactionId: transactionID,
	})
	return faultFromRPC("txrecord.CompleteTransaction", err)
}

func (c *GRPCTxRecordClient) FailTransaction(ctx context.Context, transactionID, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.FailTransaction(ctx, &txrecordv1.FailTransactionRequest{
		TransactionId: transactionID,
		Reason:        reason,
	})
	return faultFromRPC("txrecord.FailTransaction", err)
}

// faultFromRPC translates an outbound grpc error into the fault taxonomy so
// the saga can classify failures the same way regardless of which service
// produced them.
func faultFromRPC(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fault.Wrap(fault.CodeDeadlineExceeded, op+" deadline exceeded", err)
	}

	st, ok := status.FromError(err)
	if !ok {
		return fault.Wrap(fault.CodeUnknown, op+" failed", err)
	}
	switch st.Code() {
	case codes.NotFound:
		return fault.Wrap(fault.CodeNotFound, op+": "+st.Message(), err)
	case codes.InvalidArgument:
		return fault.Wrap(fault.CodeInvalidArgument, op+": "+st.Message(), err)
	case codes.FailedPrecondition:
		return fault.Wrap(fault.CodeFailedPrecondition, op+": "+st.Message(), err)
	case codes.AlreadyExists:
		return fault.Wrap(fault.CodeAlreadyExists, op+": "+st.Message(), err)
	case codes.DeadlineExceeded:
		return fault.Wrap(fault.CodeDeadlineExceeded, op+" deadline exceeded", err)
	default:
		return fault.Wrap(fault.CodeUnknown, op+": "+st.Message(), err)
	}
}
