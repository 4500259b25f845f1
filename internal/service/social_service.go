package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/pointwallet/internal/social"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

// SocialService implements the friends RPCs.
type SocialService struct {
	protoconnect.UnimplementedSocialServiceHandler
	social *social.Manager
	logger *slog.Logger
}

// NewSocialService creates a SocialService.
func NewSocialService(mgr *social.Manager, logger *slog.Logger) *SocialService {
	return &SocialService{social: mgr, logger: logger}
}

func (s *SocialService) LookupUser(ctx context.Context, req *connect.Request[pb.LookupUserRequest]) (*connect.Response[pb.UserResponse], error) {
	if _, err := sessionFrom(ctx); err != nil {
		return nil, err
	}
	u, err := s.social.Lookup(ctx, req.Msg.GetStudentId())
	if err != nil {
		return nil, toConnectError(s.logger, "LookupUser", err)
	}
	return connect.NewResponse(&pb.UserResponse{User: toUser(u)}), nil
}

func (s *SocialService) AddFriend(ctx context.Context, req *connect.Request[pb.AddFriendRequest]) (*connect.Response[pb.UserResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.social.AddFriend(ctx, sess, req.Msg.GetStudentId())
	if err != nil {
		return nil, toConnectError(s.logger, "AddFriend", err)
	}
	return connect.NewResponse(&pb.UserResponse{User: toUser(u)}), nil
}

func (s *SocialService) RemoveFriend(ctx context.Context, req *connect.Request[pb.RemoveFriendRequest]) (*connect.Response[emptypb.Empty], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.social.RemoveFriend(ctx, sess, req.Msg.GetUserId()); err != nil {
		return nil, toConnectError(s.logger, "RemoveFriend", err)
	}
	return connect.NewResponse(&emptypb.Empty{}), nil
}

func (s *SocialService) ListFriends(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.UsersResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	friends, err := s.social.ListFriends(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "ListFriends", err)
	}
	return connect.NewResponse(&pb.UsersResponse{Users: toUsers(friends)}), nil
}

func (s *SocialService) SuggestFriends(ctx context.Context, req *connect.Request[pb.SuggestFriendsRequest]) (*connect.Response[pb.UsersResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.social.Suggest(ctx, sess, int(req.Msg.GetLimit()))
	if err != nil {
		return nil, toConnectError(s.logger, "SuggestFriends", err)
	}
	return connect.NewResponse(&pb.UsersResponse{Users: toUsers(users)}), nil
}
