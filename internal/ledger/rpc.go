package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// JSON-RPC error codes returned by the ledger node.
const (
	codeInvalidParams      = -32602
	codeMethodNotFound     = -32601
	codeInternal           = -32603
	codeInsufficientFunds  = -32001
	codeInvalidSignature   = -32002
	codeUnknownTransaction = -32003
	codeUnknownAccount     = -32004
	codeInvalidAmount      = -32005
	codeInvalidAddress     = -32006
)

var codeErrors = map[int]error{
	codeInsufficientFunds:  ErrInsufficientFunds,
	codeInvalidSignature:   ErrInvalidSignature,
	codeUnknownTransaction: ErrUnknownTransaction,
	codeUnknownAccount:     ErrUnknownAccount,
	codeInvalidAmount:      ErrInvalidAmount,
	codeInvalidAddress:     ErrInvalidAddress,
}

// RPCRequest is a JSON-RPC 2.0 request.
type RPCRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	ID      int64             `json:"id"`
}

// RPCResponse is a JSON-RPC 2.0 response.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
	ID      int64           `json:"id"`
}

// RPCError is an error reported by the ledger node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Unwrap maps the code back to the package sentinel.
func (e *RPCError) Unwrap() error {
	return codeErrors[e.Code]
}

// RPCClient is a Service backed by a ledger node.
type RPCClient struct {
	rpcURL     string
	httpClient *http.Client
	nextID     atomic.Int64
}

var _ Service = (*RPCClient)(nil)

// NewRPCClient creates a client for the node at rpcURL.
func NewRPCClient(rpcURL string, timeout time.Duration) (*RPCClient, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("RPC URL required")
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &RPCClient{
		rpcURL:     rpcURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Call makes an RPC call to the ledger node.
func (c *RPCClient) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	req := RPCRequest{JSONRPC: "2.0", Method: method, ID: c.nextID.Add(1)}
	for _, p := range params {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("marshal param: %w", err)
		}
		req.Params = append(req.Params, raw)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", method, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrNetwork, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: http %d", ErrNetwork, method, resp.StatusCode)
	}

	var rpcResp RPCResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	return rpcResp.Result, nil
}

func (c *RPCClient) call(ctx context.Context, out any, method string, params ...any) error {
	result, err := c.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("unmarshal %s result: %w", method, err)
	}
	return nil
}

func (c *RPCClient) CreateOrGetAccount(ctx context.Context, owner, asset string) (string, error) {
	var account string
	err := c.call(ctx, &account, "createOrGetAccount", owner, asset)
	return account, err
}

func (c *RPCClient) BuildTransfer(ctx context.Context, source, destination, owner string, amount int64) (*Transaction, error) {
	var tx Transaction
	if err := c.call(ctx, &tx, "buildTransfer", source, destination, owner, amount); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *RPCClient) Submit(ctx context.Context, raw []byte) (string, error) {
	var sig string
	err := c.call(ctx, &sig, "submit", raw)
	return sig, err
}

func (c *RPCClient) Confirm(ctx context.Context, signature string) (Status, error) {
	var status Status
	err := c.call(ctx, &status, "confirm", signature)
	return status, err
}

func (c *RPCClient) Balance(ctx context.Context, account string) (int64, error) {
	var balance int64
	err := c.call(ctx, &balance, "balance", account)
	return balance, err
}

// Handler serves a Service over JSON-RPC. It is the counterpart of RPCClient.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

// NewHandler creates a JSON-RPC handler for svc.
func NewHandler(svc Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RPCRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeRPC(w, RPCResponse{JSONRPC: "2.0", Error: &RPCError{Code: codeInvalidParams, Message: err.Error()}})
		return
	}

	result, err := h.dispatch(r.Context(), req)
	resp := RPCResponse{JSONRPC: "2.0", ID: req.ID}
	if err != nil {
		resp.Error = toRPCError(err)
		h.logger.Debug("ledger rpc failed", "method", req.Method, "error", err)
	} else {
		raw, mErr := json.Marshal(result)
		if mErr != nil {
			resp.Error = &RPCError{Code: codeInternal, Message: mErr.Error()}
		} else {
			resp.Result = raw
		}
	}
	writeRPC(w, resp)
}

func (h *Handler) dispatch(ctx context.Context, req RPCRequest) (any, error) {
	switch req.Method {
	case "createOrGetAccount":
		var owner, asset string
		if err := decodeParams(req.Params, &owner, &asset); err != nil {
			return nil, err
		}
		return h.svc.CreateOrGetAccount(ctx, owner, asset)
	case "buildTransfer":
		var src, dst, owner string
		var amount int64
		if err := decodeParams(req.Params, &src, &dst, &owner, &amount); err != nil {
			return nil, err
		}
		return h.svc.BuildTransfer(ctx, src, dst, owner, amount)
	case "submit":
		var raw []byte
		if err := decodeParams(req.Params, &raw); err != nil {
			return nil, err
		}
		return h.svc.Submit(ctx, raw)
	case "confirm":
		var sig string
		if err := decodeParams(req.Params, &sig); err != nil {
			return nil, err
		}
		return h.svc.Confirm(ctx, sig)
	case "balance":
		var account string
		if err := decodeParams(req.Params, &account); err != nil {
			return nil, err
		}
		return h.svc.Balance(ctx, account)
	default:
		return nil, &RPCError{Code: codeMethodNotFound, Message: "method not found: " + req.Method}
	}
}

func decodeParams(params []json.RawMessage, out ...any) error {
	if len(params) != len(out) {
		return &RPCError{Code: codeInvalidParams, Message: fmt.Sprintf("expected %d params, got %d", len(out), len(params))}
	}
	for i, p := range params {
		if err := json.Unmarshal(p, out[i]); err != nil {
			return &RPCError{Code: codeInvalidParams, Message: fmt.Sprintf("param %d: %v", i, err)}
		}
	}
	return nil
}

func toRPCError(err error) *RPCError {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	for code, sentinel := range codeErrors {
		if errors.Is(err, sentinel) {
			return &RPCError{Code: code, Message: err.Error()}
		}
	}
	return &RPCError{Code: codeInternal, Message: err.Error()}
}

func writeRPC(w http.ResponseWriter, resp RPCResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
