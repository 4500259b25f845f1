package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/pointwallet/internal/treasury"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

// TreasuryService implements the admin statistics RPC.
type TreasuryService struct {
	protoconnect.UnimplementedTreasuryServiceHandler
	treasury *treasury.Manager
	logger   *slog.Logger
}

// NewTreasuryService creates a TreasuryService.
func NewTreasuryService(mgr *treasury.Manager, logger *slog.Logger) *TreasuryService {
	return &TreasuryService{treasury: mgr, logger: logger}
}

func (s *TreasuryService) GetStats(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.StatsResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.treasury.Stats(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "GetStats", err)
	}
	resp := &pb.StatsResponse{
		TreasuryAddress: stats.TreasuryAddress,
		PointBalance:    stats.PointBalance,
		FiatBalances:    make([]*pb.FiatBalance, len(stats.FiatBalances)),
		RecentTransfers: toTransfers(stats.RecentTransfers),
	}
	for i, b := range stats.FiatBalances {
		resp.FiatBalances[i] = &pb.FiatBalance{Currency: b.Currency, Amount: b.Amount}
	}
	return connect.NewResponse(resp), nil
}
