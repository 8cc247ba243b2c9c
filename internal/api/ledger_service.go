// Package api implements the gRPC services for drift.
//
// This package is the interface layer between clients and the internal
// business logic. Every gRPC request flows through it.
//
// Responsibilities:
// 1. Request validation and sanitization
// 2. Request routing to the ledger engine, record store, and orchestrator
// 3. Error translation (fault categories -> gRPC status codes)
// 4. Metrics collection (request counts, latencies)
//
// Thread safety:
// All methods are safe for concurrent use. The gRPC server calls these
// methods from multiple goroutines simultaneously; no shared mutable state
// lives in this layer.
package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/driftpay/drift/internal/ledger"
	"github.com/driftpay/drift/internal/money"
	pb "github.com/driftpay/drift/pkg/proto/ledger/v1"
)

// LedgerService implements the gRPC LedgerService interface: a thin layer
// over the reservation engine that adds validation and error translation.
type LedgerService struct {
	pb.UnimplementedLedgerServiceServer

	engine *ledger.Engine
	log    zerolog.Logger
}

// NewLedgerService creates a new LedgerService instance.
func NewLedgerService(engine *ledger.Engine, logger zerolog.Logger) *LedgerService {
	return &LedgerService{
		engine: engine,
		log:    logger.With().Str("component", "ledger_service").Logger(),
	}
}

// GetBalance returns the available balance of an account: the stored
// balance minus the sum of its PENDING reservations. Read-only.
func (s *LedgerService) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	bal, err := s.engine.GetBalance(ctx, req.GetAccountId())
	if err != nil {
		s.log.Debug().Err(err).Str("account_id", req.GetAccountId()).Msg("get_balance failed")
		return nil, rpcError(err)
	}
	return &pb.GetBalanceResponse{
		Available: &pb.Money{AmountMinor: bal.Available, Currency: bal.Currency},
		Currency:  bal.Currency,
	}, nil
}

// ReserveBalance places a hold on the account's available balance.
// Replaying an idempotency key returns the original reservation id.
func (s *LedgerService) ReserveBalance(ctx context.Context, req *pb.ReserveBalanceRequest) (*pb.ReserveBalanceResponse, error) {
	start := time.Now()

	amount := money.New(req.GetAmount().GetAmountMinor(), req.GetAmount().GetCurrency())
	reservationID, err := s.engine.ReserveBalance(ctx, req.GetAccountId(), amount, req.GetIdempotencyKey())
	if err != nil {
		s.log.Info().Err(err).
			Str("account_id", req.GetAccountId()).
			Int64("amount", amount.AmountMinor).
			Msg("reserve_balance rejected")
		return nil, rpcError(err)
	}

	s.log.Debug().
		Str("account_id", req.GetAccountId()).
		Str("reservation_id", reservationID).
		Dur("duration_ms", time.Since(start)).
		Msg("reserve_balance ok")
	return &pb.ReserveBalanceResponse{ReservationId: reservationID}, nil
}

// CommitReservation moves the reserved funds out of the account and marks
// the reservation COMMITTED.
func (s *LedgerService) CommitReservation(ctx context.Context, req *pb.CommitReservationRequest) (*pb.CommitReservationResponse, error) {
	err := s.engine.CommitReservation(ctx, req.GetReservationId(), req.GetTransactionId())
	if err != nil {
		s.log.Info().Err(err).
			Str("reservation_id", req.GetReservationId()).
			Str("transaction_id", req.GetTransactionId()).
			Msg("commit_reservation rejected")
		return nil, rpcError(err)
	}
	return &pb.CommitReservationResponse{}, nil
}

// ReleaseReservation lifts a PENDING hold without moving funds.
func (s *LedgerService) ReleaseReservation(ctx context.Context, req *pb.ReleaseReservationRequest) (*pb.ReleaseReservationResponse, error) {
	err := s.engine.ReleaseReservation(ctx, req.GetReservationId(), req.GetReason())
	if err != nil {
		s.log.Info().Err(err).
			Str("reservation_id", req.GetReservationId()).
			Msg("release_reservation rejected")
		return nil, rpcError(err)
	}
	return &pb.ReleaseReservationResponse{}, nil
}

// CreditBalance adds funds to an account and returns the new balance.
// reference_id is recorded for audit only; credits are not deduplicated.
func (s *LedgerService) CreditBalance(ctx context.Context, req *pb.CreditBalanceRequest) (*pb.CreditBalanceResponse, error) {
	amount := money.New(req.GetAmount().GetAmountMinor(), req.GetAmount().GetCurrency())
	newBalance, err := s.engine.CreditBalance(ctx, req.GetAccountId(), amount, req.GetReferenceId())
	if err != nil {
		s.log.Info().Err(err).
			Str("account_id", req.GetAccountId()).
			Int64("amount", amount.AmountMinor).
			Msg("credit_balance rejected")
		return nil, rpcError(err)
	}
	return &pb.CreditBalanceResponse{
		NewBalance: &pb.Money{AmountMinor: newBalance, Currency: amount.Currency},
	}, nil
}

// GetReservation returns a reservation by id. Used by operator tooling
// when reconciling a stalled payment.
func (s *LedgerService) GetReservation(ctx context.Context, req *pb.GetReservationRequest) (*pb.GetReservationResponse, error) {
	res, err := s.engine.GetReservation(ctx, req.GetReservationId())
	if err != nil {
		s.log.Debug().Err(err).Str("reservation_id", req.GetReservationId()).Msg("get_reservation failed")
		return nil, rpcError(err)
	}
	return &pb.GetReservationResponse{
		ReservationId: res.ID,
		AccountId:     res.AccountID,
		Amount:        &pb.Money{AmountMinor: res.Amount, Currency: res.Currency},
		Status:        string(res.Status),
		TransactionId: res.TransactionID,
		ReleaseReason: res.ReleaseReason,
		ExpiresAt:     res.ExpiresAt.Format(time.RFC3339),
		CreatedAt:     res.CreatedAt.Format(time.RFC3339),
	}, nil
}
