package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/middleware"
)

// errNoSession is returned when a handler runs without RequireAuth.
var errNoSession = errors.New("no session")

func sessionFrom(ctx context.Context) (auth.Session, error) {
	s, ok := middleware.GetSession(ctx)
	if !ok || s.UserID == "" {
		return auth.Session{}, connect.NewError(connect.CodeUnauthenticated, errNoSession)
	}
	return s, nil
}

// codeOf maps an application error kind to a Connect code.
func codeOf(err error) connect.Code {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return connect.CodeInvalidArgument
	case apperrors.KindPermissionDenied:
		return connect.CodePermissionDenied
	case apperrors.KindNotFound:
		return connect.CodeNotFound
	case apperrors.KindTransferFailed:
		return connect.CodeFailedPrecondition
	case apperrors.KindNetworkTimeout:
		return connect.CodeDeadlineExceeded
	case apperrors.KindConcurrentModification:
		return connect.CodeAborted
	default:
		return connect.CodeInternal
	}
}

// toConnectError logs err and converts it for the client. Internal errors
// are not echoed to the caller.
func toConnectError(logger *slog.Logger, op string, err error) error {
	code := codeOf(err)
	if code == connect.CodeInternal {
		logger.Error(op+" failed", "error", err)
		return connect.NewError(code, errors.New("internal error"))
	}
	logger.Warn(op+" failed", "code", code, "error", err)
	cerr := connect.NewError(code, err)
	if reason := apperrors.ReasonOf(err); reason != "" {
		cerr.Meta().Set(middleware.ReasonHeader, reason)
	}
	return cerr
}
