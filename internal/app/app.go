// Package app wires the POINT backend together from a Config: storage,
// ledger, key custody, the managers and the HTTP surface.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"

	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/chat"
	"github.com/mmynk/pointwallet/internal/config"
	"github.com/mmynk/pointwallet/internal/keystore"
	"github.com/mmynk/pointwallet/internal/ledger"
	"github.com/mmynk/pointwallet/internal/metrics"
	"github.com/mmynk/pointwallet/internal/middleware"
	"github.com/mmynk/pointwallet/internal/payment"
	"github.com/mmynk/pointwallet/internal/realtime/ws"
	"github.com/mmynk/pointwallet/internal/relay"
	"github.com/mmynk/pointwallet/internal/request"
	"github.com/mmynk/pointwallet/internal/service"
	"github.com/mmynk/pointwallet/internal/settlement"
	"github.com/mmynk/pointwallet/internal/social"
	"github.com/mmynk/pointwallet/internal/storage/sqlite"
	"github.com/mmynk/pointwallet/internal/treasury"
	"github.com/mmynk/pointwallet/internal/wallet"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

// DevTreasurySupply is minted to the treasury of the in-process ledger.
const DevTreasurySupply int64 = 10_000_000_000

// publicProcedures are served without a bearer token.
var publicProcedures = []string{
	protoconnect.AuthServiceRegisterProcedure,
	protoconnect.AuthServiceLoginProcedure,
}

// App holds the wired backend.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	Store    *sqlite.SQLiteStore
	Ledger   ledger.Service
	Relay    *relay.Relay
	Vault    *keystore.Vault
	Payments *payment.Executor
	JWT      *auth.JWTManager
	Auth     *auth.PasswordAuthenticator

	Settlements *settlement.Manager
	Requests    *request.Manager
	Chats       *chat.Manager
	Social      *social.Manager
	Wallet      *wallet.Manager
	Treasury    *treasury.Manager

	limiter *middleware.RateLimiter
	cancel  context.CancelFunc
}

// New builds an App. The caller must Close it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "database", cfg.DBPath)

	a := &App{Config: cfg, Logger: logger, Store: store}
	if err := a.init(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) init(ctx context.Context) error {
	cfg := a.Config

	treasuryKey, err := loadTreasuryKey(cfg.TreasuryKey)
	if err != nil {
		return err
	}
	if cfg.TreasuryKey == "" {
		a.Logger.Warn("No treasury key configured, using an ephemeral key")
	}

	if cfg.LedgerRPCURL != "" {
		client, err := ledger.NewRPCClient(cfg.LedgerRPCURL, cfg.RemoteTimeout)
		if err != nil {
			return fmt.Errorf("failed to create ledger client: %w", err)
		}
		a.Ledger = client
		a.Relay = relay.New(treasuryKey, client, cfg.AssetID, a.Logger)
		a.Logger.Info("Using ledger node", "url", cfg.LedgerRPCURL)
	} else {
		mem := ledger.NewMemory()
		a.Ledger = mem
		a.Relay = relay.New(treasuryKey, mem, cfg.AssetID, a.Logger)
		acct, err := a.Relay.TreasuryAccount(ctx)
		if err != nil {
			return fmt.Errorf("failed to open treasury account: %w", err)
		}
		if err := mem.Mint(acct, DevTreasurySupply); err != nil {
			return fmt.Errorf("failed to fund treasury: %w", err)
		}
		a.Logger.Info("Using in-process ledger", "treasury", a.Relay.FeePayer())
	}

	a.Vault, err = keystore.NewVault(cfg.VaultMasterKey, a.Store)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}
	a.Payments = payment.NewExecutor(payment.Config{
		Transfers: a.Store,
		Keys:      a.Vault,
		Ledger:    a.Ledger,
		Relay:     a.Relay,
		Asset:     cfg.AssetID,
		Timeout:   cfg.RemoteTimeout,
		Logger:    a.Logger,
	})
	a.JWT = auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	a.Auth = auth.NewPasswordAuthenticator(a.Store, a.Vault, a.Ledger, cfg.AssetID, cfg.IsAdmin)

	bg, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.Settlements = settlement.NewManager(a.Store, a.Payments, a.Logger, settlement.WithTimeout(cfg.RemoteTimeout))
	a.Requests = request.NewManager(a.Store, a.Payments, a.Logger, request.WithTimeout(cfg.RemoteTimeout))
	a.Chats = chat.NewManager(a.Store, a.Logger, chat.WithTimeout(cfg.RemoteTimeout))
	graph := a.graph(ctx)
	a.Social = social.NewManager(a.Store, graph, a.Logger)
	if graph != nil {
		go func() {
			if err := a.Social.Backfill(bg); err != nil {
				a.Logger.Error("Friend graph backfill failed, suggestions stay on the store", "error", err)
			}
		}()
	}
	a.Wallet = wallet.NewManager(wallet.Config{
		Store:     a.Store,
		Payer:     a.Payments,
		Ledger:    a.Ledger,
		Asset:     cfg.AssetID,
		KRWPerUSD: cfg.KRWPerUSD,
		Timeout:   cfg.RemoteTimeout,
		Logger:    a.Logger,
	})
	a.Treasury = treasury.NewManager(a.Store, a.Ledger, a.Relay, cfg.RemoteTimeout)

	a.limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
	a.limiter.StartSweeper(bg, time.Minute)
	return nil
}

// graph returns the Neo4j friend graph when configured. Suggestions fall
// back to the store when it is unreachable.
func (a *App) graph(ctx context.Context) social.Graph {
	if a.Config.Graph.URI == "" {
		return nil
	}
	runner, err := social.NewNeo4jRunner(ctx, a.Config.Graph)
	if err != nil {
		a.Logger.Warn("Friend graph unavailable, using the store", "uri", a.Config.Graph.URI, "error", err)
		return nil
	}
	a.Logger.Info("Friend graph connected", "uri", a.Config.Graph.URI)
	return social.NewCypherGraph(runner)
}

func loadTreasuryKey(hex string) (*keys.PrivateKey, error) {
	if hex == "" {
		return keys.NewPrivateKey()
	}
	key, err := keystore.ParseHex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid treasury key: %w", err)
	}
	return key, nil
}

// Handler returns the HTTP surface: the Connect services, the realtime feed,
// the relay endpoint, metrics and a health check.
func (a *App) Handler() http.Handler {
	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(a.JWT, publicProcedures...),
		middleware.LoggingInterceptor(),
		a.limiter.Interceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(service.NewAuthService(a.Auth, a.Store, a.JWT, a.Logger), interceptors))
	mux.Handle(protoconnect.NewSettlementServiceHandler(service.NewSettlementService(a.Settlements, a.Requests, a.Logger), interceptors))
	mux.Handle(protoconnect.NewRequestServiceHandler(service.NewRequestService(a.Requests, a.Logger), interceptors))
	mux.Handle(protoconnect.NewChatServiceHandler(service.NewChatService(a.Chats, a.Logger), interceptors))
	mux.Handle(protoconnect.NewSocialServiceHandler(service.NewSocialService(a.Social, a.Logger), interceptors))
	mux.Handle(protoconnect.NewWalletServiceHandler(service.NewWalletService(a.Wallet, a.Logger), interceptors))
	mux.Handle(protoconnect.NewTreasuryServiceHandler(service.NewTreasuryService(a.Treasury, a.Logger), interceptors))

	mux.Handle("/realtime", ws.NewServer(a.Store, a.JWT, a.Logger))
	mux.Handle("POST /api/relay", a.Relay)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Close releases the store, the friend graph and background workers.
func (a *App) Close(ctx context.Context) error {
	if a.cancel != nil {
		a.cancel()
	}
	var errs []error
	if a.Social != nil {
		errs = append(errs, a.Social.Close(ctx))
	}
	errs = append(errs, a.Store.Close())
	return errors.Join(errs...)
}
