package api

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/driftpay/drift/internal/money"
	"github.com/driftpay/drift/internal/txrecord"
	ledgerpb "github.com/driftpay/drift/pkg/proto/ledger/v1"
	pb "github.com/driftpay/drift/pkg/proto/txrecord/v1"
)

// TransactionService implements the gRPC TransactionService interface over
// the transaction record service.
type TransactionService struct {
	pb.UnimplementedTransactionServiceServer

	svc *txrecord.Service
	log zerolog.Logger
}

// NewTransactionService creates a new TransactionService instance.
func NewTransactionService(svc *txrecord.Service, logger zerolog.Logger) *TransactionService {
	return &TransactionService{
		svc: svc,
		log: logger.With().Str("component", "transaction_service").Logger(),
	}
}

// CreateTransaction records a PENDING audit row. Idempotent on the
// caller's idempotency key.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *pb.CreateTransactionRequest) (*pb.CreateTransactionResponse, error) {
	txn, err := s.svc.CreateTransaction(ctx, txrecord.CreateInput{
		PaymentID:            req.GetPaymentId(),
		ReservationID:        req.GetReservationId(),
		SourceAccountID:      req.GetSourceAccountId(),
		DestinationAccountID: req.GetDestinationAccountId(),
		Amount:               moneyFromProto(req.GetAmount()),
		IdempotencyKey:       req.GetIdempotencyKey(),
	})
	if err != nil {
		s.log.Info().Err(err).
			Str("payment_id", req.GetPaymentId()).
			Msg("create_transaction rejected")
		return nil, rpcError(err)
	}
	return &pb.CreateTransactionResponse{
		TransactionId:   txn.ID,
		ReferenceNumber: txn.ReferenceNumber,
	}, nil
}

// CompleteTransaction moves PENDING -> COMPLETED.
func (s *TransactionService) CompleteTransaction(ctx context.Context, req *pb.CompleteTransactionRequest) (*pb.CompleteTransactionResponse, error) {
	if err := s.svc.CompleteTransaction(ctx, req.GetTransactionId()); err != nil {
		s.log.Info().Err(err).
			Str("transaction_id", req.GetTransactionId()).
			Msg("complete_transaction rejected")
		return nil, rpcError(err)
	}
	return &pb.CompleteTransactionResponse{}, nil
}

// FailTransaction moves PENDING -> FAILED with the given reason.
func (s *TransactionService) FailTransaction(ctx context.Context, req *pb.FailTransactionRequest) (*pb.FailTransactionResponse, error) {
	if err := s.svc.FailTransaction(ctx, req.GetTransactionId(), req.GetReason()); err != nil {
		s.log.Info().Err(err).
			Str("transaction_id", req.GetTransactionId()).
			Msg("fail_transaction rejected")
		return nil, rpcError(err)
	}
	return &pb.FailTransactionResponse{}, nil
}

func moneyFromProto(m *ledgerpb.Money) money.Money {
	return money.New(m.GetAmountMinor(), m.GetCurrency())
}
