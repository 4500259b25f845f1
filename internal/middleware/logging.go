package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/pointwallet/internal/metrics"
)

// ReasonHeader carries the machine readable failure reason of a transfer.
const ReasonHeader = "Point-Reason"

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// and records its outcome in the RPC metrics. Failed transfers also carry the
// ledger reason sent to the client.
// Install it after RequireAuth so the user ID is known.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			attrs := []any{
				"procedure", procedure,
				"user_id", GetUserID(ctx),
				"duration_ms", elapsed.Milliseconds(),
			}

			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.Info("RPC ok", attrs...)
				metrics.RecordRPC(procedure, "ok", elapsed)
			case errors.As(err, &connectErr):
				attrs = append(attrs, "code", connectErr.Code(), "error", connectErr.Message())
				if reason := connectErr.Meta().Get(ReasonHeader); reason != "" {
					attrs = append(attrs, "reason", reason)
				}
				slog.Warn("RPC error", attrs...)
				metrics.RecordRPC(procedure, connectErr.Code().String(), elapsed)
			default:
				slog.Error("RPC error", append(attrs, "error", err)...)
				metrics.RecordRPC(procedure, connect.CodeUnknown.String(), elapsed)
			}

			return resp, err
		}
	}
}
