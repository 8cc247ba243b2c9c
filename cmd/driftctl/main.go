// driftctl is the operator CLI for drift.
//
// It speaks the same gRPC surfaces as the services and exists mostly for
// reconciliation: inspecting balances and payments, crediting accounts, and
// resolving stuck reservations (the partial commit anomaly) by retrying the
// commit or releasing the hold.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	ledgerAddr   string
	paymentAddr  string
	txrecordAddr string
	timeout      time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "driftctl",
		Short: "Operator CLI for the drift payment services",
		Long: `driftctl inspects and repairs drift state over the services' gRPC surfaces.

Typical reconciliation flow for a payment failed with PARTIAL_COMMIT_ANOMALY:

  driftctl payment show <payment-id>          # read reservation + transaction ids
  driftctl reservation commit <reservation-id> <transaction-id>

A successful retry commits the still-pending reservation and restores
consistency; if the hold is no longer wanted, release it instead.`,
	}

	rootCmd.PersistentFlags().StringVar(&ledgerAddr, "ledger", envOr("LEDGER_ENDPOINT", "localhost:9090"), "ledger service address")
	rootCmd.PersistentFlags().StringVar(&paymentAddr, "payment", envOr("PAYMENT_ENDPOINT", "localhost:9092"), "payment service address")
	rootCmd.PersistentFlags().StringVar(&txrecordAddr, "txrecord", envOr("TXRECORD_ENDPOINT", "localhost:9091"), "transaction record service address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "per-call deadline")

	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(reservationCmd())
	rootCmd.AddCommand(paymentCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// dial connects to a service address; the CLI runs inside the trust
// boundary, so plaintext is fine.
func dial(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return conn, nil
}
