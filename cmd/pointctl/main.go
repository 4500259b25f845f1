// Command pointctl is the operator tool for a POINT deployment: treasury key
// generation, airdrops, balance checks and watching the realtime feed.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/pointwallet/pkg/logging"
)

var Version = "dev"

type globalFlags struct {
	ledgerURL string
	asset     string
	timeout   time.Duration
}

func main() {
	var g globalFlags
	rootCmd := &cobra.Command{
		Use:     "pointctl",
		Short:   "pointctl - operator tool for the POINT campus wallet",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup()
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.ledgerURL, "ledger", envOr("POINT_LEDGER_RPC_URL", "http://localhost:8899"), "ledger node URL")
	rootCmd.PersistentFlags().StringVar(&g.asset, "asset", envOr("POINT_ASSET_ID", "POINT"), "token asset ID")
	rootCmd.PersistentFlags().DurationVar(&g.timeout, "timeout", 15*time.Second, "remote call timeout")

	rootCmd.AddCommand(keygenCmd())
	rootCmd.AddCommand(balanceCmd(&g))
	rootCmd.AddCommand(airdropCmd(&g))
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
