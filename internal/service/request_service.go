package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/pointwallet/internal/request"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

// RequestService implements the payment request RPCs.
type RequestService struct {
	protoconnect.UnimplementedRequestServiceHandler
	requests *request.Manager
	logger   *slog.Logger
}

// NewRequestService creates a RequestService.
func NewRequestService(requests *request.Manager, logger *slog.Logger) *RequestService {
	return &RequestService{requests: requests, logger: logger}
}

// CreateRequest asks another user for money.
func (s *RequestService) CreateRequest(ctx context.Context, req *connect.Request[pb.CreateRequestRequest]) (*connect.Response[pb.CreateRequestResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.requests.CreateRequest(ctx, sess, req.Msg.GetToUserId(), req.Msg.GetAmount())
	if err != nil {
		return nil, toConnectError(s.logger, "CreateRequest", err)
	}
	return connect.NewResponse(&pb.CreateRequestResponse{RequestId: id}), nil
}

// FulfillRequest pays a request addressed to the caller.
func (s *RequestService) FulfillRequest(ctx context.Context, req *connect.Request[pb.FulfillRequestRequest]) (*connect.Response[pb.RequestResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.requests.FulfillRequest(ctx, sess, req.Msg.GetRequestId(), req.Msg.GetAmount())
	if err != nil {
		return nil, toConnectError(s.logger, "FulfillRequest", err)
	}
	return connect.NewResponse(&pb.RequestResponse{Request: toRequest(r)}), nil
}

// MarkComplete lets the requester close a pending request by hand.
func (s *RequestService) MarkComplete(ctx context.Context, req *connect.Request[pb.RequestIDRequest]) (*connect.Response[pb.RequestResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.requests.MarkComplete(ctx, sess, req.Msg.GetRequestId())
	if err != nil {
		return nil, toConnectError(s.logger, "MarkComplete", err)
	}
	return connect.NewResponse(&pb.RequestResponse{Request: toRequest(r)}), nil
}

// Archive hides a completed request.
func (s *RequestService) Archive(ctx context.Context, req *connect.Request[pb.RequestIDRequest]) (*connect.Response[pb.RequestResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.requests.Archive(ctx, sess, req.Msg.GetRequestId())
	if err != nil {
		return nil, toConnectError(s.logger, "Archive", err)
	}
	return connect.NewResponse(&pb.RequestResponse{Request: toRequest(r)}), nil
}

// ListIncoming returns pending requests addressed to the caller.
func (s *RequestService) ListIncoming(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.ListRequestsResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.requests.ListIncoming(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "ListIncoming", err)
	}
	return connect.NewResponse(&pb.ListRequestsResponse{Requests: toRequests(list)}), nil
}

// ListOutgoing returns the caller's requests that are not archived.
func (s *RequestService) ListOutgoing(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.ListRequestsResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.requests.ListOutgoing(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "ListOutgoing", err)
	}
	return connect.NewResponse(&pb.ListRequestsResponse{Requests: toRequests(list)}), nil
}
