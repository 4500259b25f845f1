// Command ledgerd serves the in-process POINT ledger over JSON-RPC so that
// several backend instances, or pointctl, can share one ledger.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmynk/pointwallet/internal/ledger"
	"github.com/mmynk/pointwallet/pkg/logging"
)

func main() {
	addr := flag.String("addr", ":8899", "listen address")
	asset := flag.String("asset", "POINT", "token asset ID")
	treasury := flag.String("treasury", os.Getenv("POINT_TREASURY_ADDRESS"), "treasury wallet address to fund on start")
	supply := flag.Int64("supply", 10_000_000_000, "POINT minted to the treasury")
	flag.Parse()

	logging.Setup()

	mem := ledger.NewMemory()
	if *treasury != "" {
		if err := ledger.ValidateAddress(*treasury); err != nil {
			slog.Error("Invalid treasury address", "address", *treasury, "error", err)
			os.Exit(1)
		}
		acct, err := mem.CreateOrGetAccount(context.Background(), *treasury, *asset)
		if err != nil {
			slog.Error("Failed to open treasury account", "error", err)
			os.Exit(1)
		}
		if err := mem.Mint(acct, *supply); err != nil {
			slog.Error("Failed to fund treasury", "error", err)
			os.Exit(1)
		}
		slog.Info("Treasury funded", "address", *treasury, "account", acct, "supply", *supply)
	}

	mux := http.NewServeMux()
	mux.Handle("/", ledger.NewHandler(mem, slog.Default()))

	srv := &http.Server{Addr: *addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Ledger node starting", "address", *addr, "asset", *asset)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
