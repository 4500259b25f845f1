package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/pointwallet/internal/wallet"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

// WalletService implements the wallet RPCs.
type WalletService struct {
	protoconnect.UnimplementedWalletServiceHandler
	wallet *wallet.Manager
	logger *slog.Logger
}

// NewWalletService creates a WalletService.
func NewWalletService(mgr *wallet.Manager, logger *slog.Logger) *WalletService {
	return &WalletService{wallet: mgr, logger: logger}
}

func (s *WalletService) GetBalance(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.BalanceResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	bal, err := s.wallet.Balance(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "GetBalance", err)
	}
	return connect.NewResponse(&pb.BalanceResponse{Address: sess.WalletAddress, Balance: bal}), nil
}

func (s *WalletService) Send(ctx context.Context, req *connect.Request[pb.SendRequest]) (*connect.Response[pb.TransferResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.wallet.Send(ctx, sess, req.Msg.GetToUserId(), req.Msg.GetAmount())
	if err != nil {
		return nil, toConnectError(s.logger, "Send", err)
	}
	return connect.NewResponse(&pb.TransferResponse{Transfer: toTransfer(t)}), nil
}

func (s *WalletService) Quote(ctx context.Context, req *connect.Request[pb.QuoteRequest]) (*connect.Response[pb.QuoteResponse], error) {
	fiat, err := s.wallet.FiatPrice(req.Msg.GetPoints(), req.Msg.GetCurrency())
	if err != nil {
		return nil, toConnectError(s.logger, "Quote", err)
	}
	return connect.NewResponse(&pb.QuoteResponse{
		Points:     req.Msg.GetPoints(),
		Currency:   req.Msg.GetCurrency(),
		FiatAmount: fiat,
	}), nil
}

func (s *WalletService) Buy(ctx context.Context, req *connect.Request[pb.BuyRequest]) (*connect.Response[pb.PurchaseResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.wallet.Buy(ctx, sess, req.Msg.GetPoints(), req.Msg.GetCurrency())
	if err != nil {
		return nil, toConnectError(s.logger, "Buy", err)
	}
	return connect.NewResponse(&pb.PurchaseResponse{Purchase: toPurchase(p)}), nil
}

func (s *WalletService) GetHistory(ctx context.Context, req *connect.Request[pb.GetHistoryRequest]) (*connect.Response[pb.HistoryResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.wallet.History(ctx, sess, int(req.Msg.GetLimit()))
	if err != nil {
		return nil, toConnectError(s.logger, "GetHistory", err)
	}
	return connect.NewResponse(&pb.HistoryResponse{Transfers: toTransfers(list)}), nil
}

func (s *WalletService) ListPurchases(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.ListPurchasesResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.wallet.Purchases(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "ListPurchases", err)
	}
	out := make([]*pb.Purchase, len(list))
	for i, p := range list {
		out[i] = toPurchase(p)
	}
	return connect.NewResponse(&pb.ListPurchasesResponse{Purchases: out}), nil
}
