package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/spf13/cobra"

	"github.com/mmynk/pointwallet/internal/keystore"
	"github.com/mmynk/pointwallet/internal/ledger"
	"github.com/mmynk/pointwallet/internal/relay"
	"github.com/mmynk/pointwallet/internal/settlement"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a treasury key pair",
		Long: `Generate a new key pair and print the hex private key and the wallet
address. Put the private key in POINT_TREASURY_KEY and pass the address to
ledgerd -treasury.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := keys.NewPrivateKey()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "private key: %s\n", keystore.EncodeHex(priv))
			fmt.Fprintf(cmd.OutOrStdout(), "address:     %s\n", priv.Address())
			return nil
		},
	}
}

func balanceCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Show the POINT balance of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]
			if err := ledger.ValidateAddress(address); err != nil {
				return err
			}
			client, err := ledger.NewRPCClient(g.ledgerURL, g.timeout)
			if err != nil {
				return err
			}
			bal, err := client.Balance(cmd.Context(), ledger.AccountAddress(address, g.asset))
			if errors.Is(err, ledger.ErrUnknownAccount) {
				bal, err = 0, nil
			}
			if err != nil {
				return fmt.Errorf("balance: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", settlement.FormatPoints(bal), address)
			return nil
		},
	}
}

func airdropCmd(g *globalFlags) *cobra.Command {
	var treasuryKey string
	cmd := &cobra.Command{
		Use:   "airdrop [address] [amount]",
		Short: "Transfer POINT from the treasury to a wallet",
		Long: `Transfer amount, in minor units (1 P = 100), from the treasury to the
given wallet address. The destination token account is opened if needed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]
			if err := ledger.ValidateAddress(address); err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			if treasuryKey == "" {
				return errors.New("treasury key is required (--key or POINT_TREASURY_KEY)")
			}
			priv, err := keystore.ParseHex(treasuryKey)
			if err != nil {
				return fmt.Errorf("invalid treasury key: %w", err)
			}

			client, err := ledger.NewRPCClient(g.ledgerURL, g.timeout)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), g.timeout)
			defer cancel()

			dest, err := client.CreateOrGetAccount(ctx, address, g.asset)
			if err != nil {
				return fmt.Errorf("open destination account: %w", err)
			}
			r := relay.New(priv, client, g.asset, slog.Default())
			sig, err := r.PayFromTreasury(ctx, dest, amount)
			if err != nil {
				return fmt.Errorf("airdrop: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %s to %s\nsignature: %s\n", settlement.FormatPoints(amount), address, sig)
			return nil
		},
	}
	cmd.Flags().StringVar(&treasuryKey, "key", os.Getenv("POINT_TREASURY_KEY"), "hex treasury private key")
	return cmd
}
