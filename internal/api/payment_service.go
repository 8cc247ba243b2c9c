package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/driftpay/drift/internal/payment"
	ledgerpb "github.com/driftpay/drift/pkg/proto/ledger/v1"
	pb "github.com/driftpay/drift/pkg/proto/payment/v1"
)

// PaymentService implements the gRPC PaymentService interface over the
// orchestrator.
type PaymentService struct {
	pb.UnimplementedPaymentServiceServer

	orch *payment.Orchestrator
	log  zerolog.Logger
}

// NewPaymentService creates a new PaymentService instance.
func NewPaymentService(orch *payment.Orchestrator, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		orch: orch,
		log:  logger.With().Str("component", "payment_service").Logger(),
	}
}

// CreatePayment persists a PENDING payment after verifying both accounts.
func (s *PaymentService) CreatePayment(ctx context.Context, req *pb.CreatePaymentRequest) (*pb.PaymentResponse, error) {
	p, err := s.orch.CreatePayment(ctx,
		req.GetSourceAccountId(),
		req.GetDestinationAccountId(),
		moneyFromProto(req.GetAmount()))
	if err != nil {
		s.log.Info().Err(err).
			Str("source_account_id", req.GetSourceAccountId()).
			Str("destination_account_id", req.GetDestinationAccountId()).
			Msg("create_payment rejected")
		return nil, rpcError(err)
	}
	return paymentResponse(p), nil
}

// ProcessPayment runs the saga for a PENDING payment. A payment that fails
// mid-saga comes back as an error carrying the originating category; the
// payment row records the failure reason.
func (s *PaymentService) ProcessPayment(ctx context.Context, req *pb.ProcessPaymentRequest) (*pb.PaymentResponse, error) {
	start := time.Now()

	p, err := s.orch.ProcessPayment(ctx, req.GetPaymentId())
	if err != nil {
		s.log.Info().Err(err).
			Str("payment_id", req.GetPaymentId()).
			Dur("duration_ms", time.Since(start)).
			Msg("process_payment failed")
		return nil, rpcError(err)
	}

	s.log.Debug().
		Str("payment_id", p.ID).
		Str("status", string(p.Status)).
		Dur("duration_ms", time.Since(start)).
		Msg("process_payment done")
	return paymentResponse(p), nil
}

// CancelPayment cancels a PENDING or PROCESSING payment.
func (s *PaymentService) CancelPayment(ctx context.Context, req *pb.CancelPaymentRequest) (*pb.PaymentResponse, error) {
	p, err := s.orch.CancelPayment(ctx, req.GetPaymentId())
	if err != nil {
		s.log.Info().Err(err).
			Str("payment_id", req.GetPaymentId()).
			Msg("cancel_payment rejected")
		return nil, rpcError(err)
	}
	return paymentResponse(p), nil
}

// GetPayment returns the current state of a payment.
func (s *PaymentService) GetPayment(ctx context.Context, req *pb.GetPaymentRequest) (*pb.PaymentResponse, error) {
	p, err := s.orch.GetPayment(ctx, req.GetPaymentId())
	if err != nil {
		return nil, rpcError(err)
	}
	return paymentResponse(p), nil
}

func paymentResponse(p *payment.Payment) *pb.PaymentResponse {
	resp := &pb.PaymentResponse{
		PaymentId:            p.ID,
		ReferenceNumber:      p.ReferenceNumber,
		SourceAccountId:      p.SourceAccountID,
		DestinationAccountId: p.DestinationAccountID,
		Amount:               &ledgerpb.Money{AmountMinor: p.Amount, Currency: p.Currency},
		Status:               paymentStatus(p.Status),
		ReservationId:        p.ReservationID,
		TransactionId:        p.TransactionID,
		FailureReason:        p.FailureReason,
		CreatedAt:            p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.ProcessedAt != nil {
		resp.ProcessedAt = p.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func paymentStatus(s payment.Status) pb.PaymentStatus {
	switch s {
	case payment.StatusPending:
		return pb.PaymentStatus_PAYMENT_STATUS_PENDING
	case payment.StatusProcessing:
		return pb.PaymentStatus_PAYMENT_STATUS_PROCESSING
	case payment.StatusCompleted:
		return pb.PaymentStatus_PAYMENT_STATUS_COMPLETED
	case payment.StatusFailed:
		return pb.PaymentStatus_PAYMENT_STATUS_FAILED
	case payment.StatusCancelled:
		return pb.PaymentStatus_PAYMENT_STATUS_CANCELLED
	default:
		return pb.PaymentStatus_PAYMENT_STATUS_UNSPECIFIED
	}
}
