package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/calculator"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/request"
	"github.com/mmynk/pointwallet/internal/settlement"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

// SettlementService implements the split bill RPCs.
type SettlementService struct {
	protoconnect.UnimplementedSettlementServiceHandler
	settlements *settlement.Manager
	requests    *request.Manager
	logger      *slog.Logger
}

// NewSettlementService creates a SettlementService. requests feeds the
// balances overview with pending payment requests.
func NewSettlementService(settlements *settlement.Manager, requests *request.Manager, logger *slog.Logger) *SettlementService {
	return &SettlementService{settlements: settlements, requests: requests, logger: logger}
}

// CreateSettlement splits a bill among the listed friends.
func (s *SettlementService) CreateSettlement(ctx context.Context, req *connect.Request[pb.CreateSettlementRequest]) (*connect.Response[pb.CreateSettlementResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	if len(req.Msg.GetShares()) == 0 {
		return nil, toConnectError(s.logger, "CreateSettlement",
			apperrors.Validation("settlement.CreateSettlement", "select at least one friend"))
	}

	shares := make([]settlement.Share, 0, len(req.Msg.GetShares()))
	for _, sh := range req.Msg.GetShares() {
		if sh == nil {
			continue
		}
		shares = append(shares, settlement.Share{UserID: sh.GetUserId(), Amount: sh.GetAmount()})
	}
	slog.Debug("Creating settlement", "creator", sess.UserID, "total", req.Msg.GetTotalAmount(), "shares", len(shares))

	id, err := s.settlements.CreateSettlement(ctx, sess, req.Msg.GetTotalAmount(), shares)
	if err != nil {
		return nil, toConnectError(s.logger, "CreateSettlement", err)
	}
	st, err := s.settlements.Get(ctx, sess, id)
	if err != nil {
		return nil, toConnectError(s.logger, "CreateSettlement", err)
	}
	return connect.NewResponse(&pb.CreateSettlementResponse{SettlementId: id, ChatId: st.ChatID}), nil
}

// GetSettlement returns one settlement with its progress.
func (s *SettlementService) GetSettlement(ctx context.Context, req *connect.Request[pb.SettlementRequest]) (*connect.Response[pb.SettlementResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.settlements.Get(ctx, sess, req.Msg.GetSettlementId())
	if err != nil {
		return nil, toConnectError(s.logger, "GetSettlement", err)
	}
	return connect.NewResponse(&pb.SettlementResponse{Settlement: toSettlement(st)}), nil
}

// ListSettlements returns the caller's settlements, newest first.
func (s *SettlementService) ListSettlements(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.ListSettlementsResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.settlements.ListForUser(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "ListSettlements", err)
	}
	out := make([]*pb.Settlement, len(list))
	for i, st := range list {
		out[i] = toSettlement(st)
	}
	return connect.NewResponse(&pb.ListSettlementsResponse{Settlements: out}), nil
}

// PayShare transfers the caller's share to the creator.
func (s *SettlementService) PayShare(ctx context.Context, req *connect.Request[pb.SettlementRequest]) (*connect.Response[pb.PaymentResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.settlements.PayShare(ctx, sess, req.Msg.GetSettlementId())
	if err != nil {
		return nil, toConnectError(s.logger, "PayShare", err)
	}
	return connect.NewResponse(toPaymentResponse(res)), nil
}

// ManualMarkPaid lets the creator mark one participant paid.
func (s *SettlementService) ManualMarkPaid(ctx context.Context, req *connect.Request[pb.ManualMarkPaidRequest]) (*connect.Response[pb.PaymentResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.settlements.ManualMarkPaid(ctx, sess, req.Msg.GetSettlementId(), req.Msg.GetUserId())
	if err != nil {
		return nil, toConnectError(s.logger, "ManualMarkPaid", err)
	}
	return connect.NewResponse(toPaymentResponse(res)), nil
}

// ForceCompleteAll lets the creator mark every participant paid.
func (s *SettlementService) ForceCompleteAll(ctx context.Context, req *connect.Request[pb.ForceCompleteAllRequest]) (*connect.Response[pb.PaymentResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.settlements.ForceCompleteAll(ctx, sess, req.Msg.GetSettlementId(), req.Msg.GetConfirm())
	if err != nil {
		return nil, toConnectError(s.logger, "ForceCompleteAll", err)
	}
	return connect.NewResponse(toPaymentResponse(res)), nil
}

// EqualShares proposes an equal split of a total among the caller and friends.
func (s *SettlementService) EqualShares(ctx context.Context, req *connect.Request[pb.EqualSharesRequest]) (*connect.Response[pb.EqualSharesResponse], error) {
	shares, err := calculator.EqualShares(req.Msg.GetTotalAmount(), req.Msg.GetFriendIds())
	if err != nil {
		slog.Warn("EqualShares failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	out := make([]*pb.Share, len(shares))
	for i, sh := range shares {
		out[i] = &pb.Share{UserId: sh.UserID, Amount: sh.Amount}
	}
	return connect.NewResponse(&pb.EqualSharesResponse{
		Shares:       out,
		CreatorShare: calculator.CreatorShare(req.Msg.GetTotalAmount(), shares),
	}), nil
}

// GetBalances aggregates what the caller owes and is owed across pending
// settlement entries and pending payment requests.
func (s *SettlementService) GetBalances(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.BalancesResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	settlements, err := s.settlements.ListForUser(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "GetBalances", err)
	}
	incoming, err := s.requests.ListIncoming(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "GetBalances", err)
	}
	outgoing, err := s.requests.ListOutgoing(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "GetBalances", err)
	}

	var obligations []calculator.Obligation
	for _, st := range settlements {
		for _, e := range st.Participants {
			if e.Status != models.StatusPending {
				continue
			}
			if e.UID != sess.UserID && st.CreatorID != sess.UserID {
				continue
			}
			obligations = append(obligations, calculator.Obligation{From: e.UID, To: st.CreatorID, Amount: e.Amount})
		}
	}
	for _, r := range append(incoming, outgoing...) {
		if r.Status == models.RequestPending {
			obligations = append(obligations, calculator.Obligation{From: r.ToUID, To: r.FromUID, Amount: r.Amount})
		}
	}

	balances, debts := calculator.Outstanding(obligations)
	resp := &pb.BalancesResponse{
		Balances: make([]*pb.MemberBalance, len(balances)),
		Debts:    make([]*pb.DebtEdge, len(debts)),
	}
	for i, b := range balances {
		resp.Balances[i] = &pb.MemberBalance{UserId: b.UserID, NetBalance: b.NetBalance, TotalOwed: b.TotalOwed, TotalDue: b.TotalDue}
	}
	for i, d := range debts {
		resp.Debts[i] = &pb.DebtEdge{From: d.From, To: d.To, Amount: d.Amount}
	}
	return connect.NewResponse(resp), nil
}
