package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	ledgerpb "github.com/driftpay/drift/pkg/proto/ledger/v1"
	paymentpb "github.com/driftpay/drift/pkg/proto/payment/v1"
)

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Inspect and adjust account balances",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <account-id>",
		Short: "Show an account's available balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(ledgerAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := ledgerpb.NewLedgerServiceClient(conn).GetBalance(ctx, &ledgerpb.GetBalanceRequest{
				AccountId: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Printf("account:   %s\n", args[0])
			fmt.Printf("available: %d %s\n", resp.GetAvailable().GetAmountMinor(), resp.GetCurrency())
			return nil
		},
	})

	var currency, referenceID string
	credit := &cobra.Command{
		Use:   "credit <account-id> <amount-minor>",
		Short: "Credit an account (audit reference required)",
		Long: `Credit adds funds to an account. Credits are NOT deduplicated by
reference id; re-running this command credits again. The reference id is
recorded for audit.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			conn, err := dial(ledgerAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := ledgerpb.NewLedgerServiceClient(conn).CreditBalance(ctx, &ledgerpb.CreditBalanceRequest{
				AccountId:   args[0],
				Amount:      &ledgerpb.Money{AmountMinor: amount, Currency: currency},
				ReferenceId: referenceID,
			})
			if err != nil {
				return err
			}
			fmt.Printf("credited %d %s, new balance %d\n", amount, currency, resp.GetNewBalance().GetAmountMinor())
			return nil
		},
	}
	credit.Flags().StringVar(&currency, "currency", "USD", "currency of the amount")
	credit.Flags().StringVar(&referenceID, "reference", "", "audit reference id (required)")
	credit.MarkFlagRequired("reference")
	cmd.AddCommand(credit)

	return cmd
}

func reservationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservation",
		Short: "Resolve balance reservations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <reservation-id>",
		Short: "Show a reservation's status and linkage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(ledgerAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := ledgerpb.NewLedgerServiceClient(conn).GetReservation(ctx, &ledgerpb.GetReservationRequest{
				ReservationId: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Printf("reservation: %s\n", resp.GetReservationId())
			fmt.Printf("account:     %s\n", resp.GetAccountId())
			fmt.Printf("amount:      %d %s\n", resp.GetAmount().GetAmountMinor(), resp.GetAmount().GetCurrency())
			fmt.Printf("status:      %s\n", resp.GetStatus())
			if resp.GetTransactionId() != "" {
				fmt.Printf("transaction: %s\n", resp.GetTransactionId())
			}
			if resp.GetReleaseReason() != "" {
				fmt.Printf("released:    %s\n", resp.GetReleaseReason())
			}
			fmt.Printf("expires:     %s\n", resp.GetExpiresAt())
			fmt.Printf("created:     %s\n", resp.GetCreatedAt())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "commit <reservation-id> <transaction-id>",
		Short: "Retry the commit of a pending reservation",
		Long: `Commit debits the reserved amount and marks the reservation COMMITTED.
This is the repair step for a PARTIAL_COMMIT_ANOMALY payment: the credit
already happened, so committing the still-pending reservation with the
recorded transaction id restores consistency.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(ledgerAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			_, err = ledgerpb.NewLedgerServiceClient(conn).CommitReservation(ctx, &ledgerpb.CommitReservationRequest{
				ReservationId: args[0],
				TransactionId: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Printf("reservation %s committed against transaction %s\n", args[0], args[1])
			return nil
		},
	})

	var reason string
	release := &cobra.Command{
		Use:   "release <reservation-id>",
		Short: "Release a pending reservation without moving funds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(ledgerAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			_, err = ledgerpb.NewLedgerServiceClient(conn).ReleaseReservation(ctx, &ledgerpb.ReleaseReservationRequest{
				ReservationId: args[0],
				Reason:        reason,
			})
			if err != nil {
				return err
			}
			fmt.Printf("reservation %s released\n", args[0])
			return nil
		},
	}
	release.Flags().StringVar(&reason, "reason", "operator release", "release reason recorded on the reservation")
	cmd.AddCommand(release)

	return cmd
}

func paymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Inspect and drive payments",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <payment-id>",
		Short: "Show a payment, including reservation and transaction ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(paymentAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := paymentpb.NewPaymentServiceClient(conn).GetPayment(ctx, &paymentpb.GetPaymentRequest{
				PaymentId: args[0],
			})
			if err != nil {
				return err
			}
			printPayment(resp)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "process <payment-id>",
		Short: "Run the saga for a pending payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(paymentAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := paymentpb.NewPaymentServiceClient(conn).ProcessPayment(ctx, &paymentpb.ProcessPaymentRequest{
				PaymentId: args[0],
			})
			if err != nil {
				return err
			}
			printPayment(resp)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <payment-id>",
		Short: "Cancel a pending or processing payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(paymentAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := paymentpb.NewPaymentServiceClient(conn).CancelPayment(ctx, &paymentpb.CancelPaymentRequest{
				PaymentId: args[0],
			})
			if err != nil {
				return err
			}
			printPayment(resp)
			return nil
		},
	})

	return cmd
}

func printPayment(p *paymentpb.PaymentResponse) {
	fmt.Printf("payment:     %s (%s)\n", p.GetPaymentId(), p.GetReferenceNumber())
	fmt.Printf("status:      %s\n", p.GetStatus())
	fmt.Printf("amount:      %d %s\n", p.GetAmount().GetAmountMinor(), p.GetAmount().GetCurrency())
	fmt.Printf("source:      %s\n", p.GetSourceAccountId())
	fmt.Printf("destination: %s\n", p.GetDestinationAccountId())
	if p.GetReservationId() != "" {
		fmt.Printf("reservation: %s\n", p.GetReservationId())
	}
	if p.GetTransactionId() != "" {
		fmt.Printf("transaction: %s\n", p.GetTransactionId())
	}
	if p.GetFailureReason() != "" {
		fmt.Printf("failure:     %s\n", p.GetFailureReason())
	}
	fmt.Printf("created:     %s\n", p.GetCreatedAt())
	if p.GetProcessedAt() != "" {
		fmt.Printf("processed:   %s\n", p.GetProcessedAt())
	}
}
