package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/models"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

type ping struct{}

func okHandler(seen *auth.Session) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if s, ok := auth.SessionFrom(ctx); ok && seen != nil {
			*seen = s
		}
		return connect.NewResponse(&ping{}), nil
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"", "", auth.ErrMissingToken},
		{"Basic abc", "", auth.ErrInvalidToken},
		{"Bearer", "", auth.ErrInvalidToken},
		{"Bearer a b", "", auth.ErrInvalidToken},
	}
	for _, tt := range tests {
		got, err := BearerToken(tt.header)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("BearerToken(%q) error = %v, want %v", tt.header, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "u1", StudentID: "20240001", Name: "Alice", Role: models.RoleStudent}
	token, err := jwtManager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	interceptor := RequireAuth(jwtManager)

	t.Run("valid token attaches session", func(t *testing.T) {
		var seen auth.Session
		req := connect.NewRequest(&ping{})
		req.Header().Set("Authorization", "Bearer "+token)
		if _, err := interceptor(okHandler(&seen))(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen.UserID != "u1" || seen.StudentID != "20240001" {
			t.Errorf("session = %+v, want user u1", seen)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		req := connect.NewRequest(&ping{})
		_, err := interceptor(okHandler(nil))(context.Background(), req)
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("code = %v, want Unauthenticated", connect.CodeOf(err))
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		req := connect.NewRequest(&ping{})
		req.Header().Set("Authorization", "Bearer "+token+"x")
		_, err := interceptor(okHandler(nil))(context.Background(), req)
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("code = %v, want Unauthenticated", connect.CodeOf(err))
		}
	})

	t.Run("public procedure skips auth", func(t *testing.T) {
		// Requests built outside a handler carry an empty procedure.
		open := RequireAuth(jwtManager, "")
		req := connect.NewRequest(&ping{})
		if _, err := open(okHandler(nil))(context.Background(), req); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestGetUserID(t *testing.T) {
	if got := GetUserID(context.Background()); got != "" {
		t.Errorf("GetUserID(empty) = %q, want empty", got)
	}
	ctx := auth.WithSession(context.Background(), auth.Session{UserID: "u9"})
	if got := GetUserID(ctx); got != "u9" {
		t.Errorf("GetUserID = %q, want u9", got)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("burst of 2 should be allowed")
	}
	if rl.Allow("a") {
		t.Error("third request within the burst window should be limited")
	}
	if !rl.Allow("b") {
		t.Error("keys must not share a bucket")
	}

	now = now.Add(2 * time.Minute)
	rl.Allow("c")
	rl.Sweep()
	if got := rl.Len(); got != 1 {
		t.Errorf("Len after sweep = %d, want 1", got)
	}
}

func TestRateLimiterInterceptor(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, time.Minute)
	handler := rl.Interceptor()(okHandler(nil))
	ctx := auth.WithSession(context.Background(), auth.Session{UserID: "u1"})

	if _, err := handler(ctx, connect.NewRequest(&ping{})); err != nil {
		t.Fatalf("first call: %v", err)
	}
	_, err := handler(ctx, connect.NewRequest(&ping{}))
	if connect.CodeOf(err) != connect.CodeResourceExhausted {
		t.Errorf("code = %v, want ResourceExhausted", connect.CodeOf(err))
	}

	other := auth.WithSession(context.Background(), auth.Session{UserID: "u2"})
	if _, err := handler(other, connect.NewRequest(&ping{})); err != nil {
		t.Errorf("other user limited: %v", err)
	}
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	failing := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	}
	_, err := LoggingInterceptor()(failing)(context.Background(), connect.NewRequest(&ping{}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("code = %v, want NotFound", connect.CodeOf(err))
	}

	resp, err := LoggingInterceptor()(okHandler(nil))(context.Background(), connect.NewRequest(&ping{}))
	if err != nil || resp == nil {
		t.Errorf("ok handler: resp=%v err=%v", resp, err)
	}
}

// quoteOnly serves WalletService.Quote and records the credential it saw.
type quoteOnly struct {
	protoconnect.UnimplementedWalletServiceHandler
	token string
}

func (q *quoteOnly) Quote(_ context.Context, req *connect.Request[pb.QuoteRequest]) (*connect.Response[pb.QuoteResponse], error) {
	q.token = req.Header().Get("Authorization")
	if req.Msg.GetPoints() <= 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("points must be positive"))
	}
	return connect.NewResponse(&pb.QuoteResponse{
		Points:     req.Msg.GetPoints(),
		Currency:   req.Msg.GetCurrency(),
		FiatAmount: req.Msg.GetPoints() / 100,
	}), nil
}

func TestWithToken(t *testing.T) {
	svc := &quoteOnly{}
	mux := http.NewServeMux()
	path, handler := protoconnect.NewWalletServiceHandler(svc)
	if path != "/point.v1.WalletService/" {
		t.Fatalf("path = %q", path)
	}
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := protoconnect.NewWalletServiceClient(server.Client(), server.URL, WithToken("abc"))
	resp, err := client.Quote(context.Background(), connect.NewRequest(&pb.QuoteRequest{Points: 10_000, Currency: "KRW"}))
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if resp.Msg.GetFiatAmount() != 100 {
		t.Errorf("FiatAmount = %d, want 100", resp.Msg.GetFiatAmount())
	}
	if svc.token != "Bearer abc" {
		t.Errorf("Authorization = %q", svc.token)
	}

	_, err = client.Quote(context.Background(), connect.NewRequest(&pb.QuoteRequest{}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", connect.CodeOf(err))
	}

	anonymous := protoconnect.NewWalletServiceClient(server.Client(), server.URL, WithToken(""))
	if _, err := anonymous.Quote(context.Background(), connect.NewRequest(&pb.QuoteRequest{Points: 100})); err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if svc.token != "" {
		t.Errorf("expected no Authorization header, got %q", svc.token)
	}
}

func TestPlainJSONPost(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewWalletServiceHandler(&quoteOnly{}))
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Post(server.URL+protoconnect.WalletServiceQuoteProcedure, "application/json",
		strings.NewReader(`{"points":500,"currency":"KRW"}`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
