// Package apperrors defines the error taxonomy shared by the settlement,
// request, chat and wallet managers.
//
// Every manager operation returns either nil or an *Error whose Kind tells the
// caller how to react: fix the input, give up, or retry. Sentinels allow
// errors.Is checks without inspecting the Kind directly:
//
//	if errors.Is(err, apperrors.ErrNetworkTimeout) {
//		// safe to retry, nothing was written
//	}
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindPermissionDenied
	KindNotFound
	KindTransferFailed
	KindNetworkTimeout
	KindConcurrentModification
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPermissionDenied:
		return "permission_denied"
	case KindNotFound:
		return "not_found"
	case KindTransferFailed:
		return "transfer_failed"
	case KindNetworkTimeout:
		return "network_timeout"
	case KindConcurrentModification:
		return "concurrent_modification"
	default:
		return "internal"
	}
}

// Transfer failure reasons reported in Error.Reason.
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonInvalidSignature  = "invalid_signature"
	ReasonRejected          = "rejected"
)

// Error is a classified application error.
type Error struct {
	Kind   Kind
	Op     string // operation that failed, e.g. "settlement.PayShare"
	Reason string // optional machine readable detail
	Msg    string
	Err    error
}

var (
	ErrInternal               = &Error{Kind: KindInternal}
	ErrValidation             = &Error{Kind: KindValidation}
	ErrPermissionDenied       = &Error{Kind: KindPermissionDenied}
	ErrNotFound               = &Error{Kind: KindNotFound}
	ErrTransferFailed         = &Error{Kind: KindTransferFailed}
	ErrNetworkTimeout         = &Error{Kind: KindNetworkTimeout}
	ErrConcurrentModification = &Error{Kind: KindConcurrentModification}
)

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

func newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Validation reports malformed or out-of-range input.
func Validation(op, format string, args ...any) error {
	return newf(KindValidation, op, format, args...)
}

// PermissionDenied reports an actor not allowed to perform op.
func PermissionDenied(op, format string, args ...any) error {
	return newf(KindPermissionDenied, op, format, args...)
}

// NotFound reports a missing document.
func NotFound(op, format string, args ...any) error {
	return newf(KindNotFound, op, format, args...)
}

// AlreadyHandled reports a precondition that no longer holds.
func AlreadyHandled(op, format string, args ...any) error {
	return newf(KindConcurrentModification, op, format, args...)
}

// TransferFailed reports a ledger rejection. reason is one of the Reason constants.
func TransferFailed(op, reason string, err error) error {
	return &Error{Kind: KindTransferFailed, Op: op, Reason: reason, Msg: "transfer failed", Err: err}
}

// Timeout reports a remote call that exceeded its deadline.
func Timeout(op string, err error) error {
	return &Error{Kind: KindNetworkTimeout, Op: op, Msg: "remote call timed out", Err: err}
}

// Internal wraps an unexpected failure.
func Internal(op string, err error) error {
	return &Error{Kind: KindInternal, Op: op, Msg: "internal error", Err: err}
}

// Wrap classifies err for op. Already classified errors pass through and
// context deadlines become NetworkTimeout.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout(op, err)
	}
	return Internal(op, err)
}

// KindOf returns the kind of err, KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindNetworkTimeout
	}
	return KindInternal
}

// ReasonOf returns the Reason of a classified error.
func ReasonOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return ""
}

// Retryable reports whether the caller may safely retry the operation.
func Retryable(err error) bool {
	return KindOf(err) == KindNetworkTimeout
}
