package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/pointwallet/internal/chat"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

// ChatService implements the chat RPCs.
type ChatService struct {
	protoconnect.UnimplementedChatServiceHandler
	chats  *chat.Manager
	logger *slog.Logger
}

// NewChatService creates a ChatService.
func NewChatService(chats *chat.Manager, logger *slog.Logger) *ChatService {
	return &ChatService{chats: chats, logger: logger}
}

func (s *ChatService) ListChats(ctx context.Context, req *connect.Request[pb.ListChatsRequest]) (*connect.Response[pb.ListChatsResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.chats.List(ctx, sess, req.Msg.GetFilter())
	if err != nil {
		return nil, toConnectError(s.logger, "ListChats", err)
	}
	out := make([]*pb.Chat, len(list))
	for i, sum := range list {
		out[i] = toChat(sum)
	}
	return connect.NewResponse(&pb.ListChatsResponse{Chats: out}), nil
}

func (s *ChatService) GetMessages(ctx context.Context, req *connect.Request[pb.GetMessagesRequest]) (*connect.Response[pb.GetMessagesResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	msgs, err := s.chats.Messages(ctx, sess, req.Msg.GetChatId(), int(req.Msg.GetLimit()))
	if err != nil {
		return nil, toConnectError(s.logger, "GetMessages", err)
	}
	out := make([]*pb.Message, len(msgs))
	for i, m := range msgs {
		out[i] = toMessage(m)
	}
	return connect.NewResponse(&pb.GetMessagesResponse{Messages: out}), nil
}

func (s *ChatService) SendMessage(ctx context.Context, req *connect.Request[pb.SendMessageRequest]) (*connect.Response[pb.SendMessageResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	msg, err := s.chats.SendMessage(ctx, sess, req.Msg.GetChatId(), req.Msg.GetText())
	if err != nil {
		return nil, toConnectError(s.logger, "SendMessage", err)
	}
	return connect.NewResponse(&pb.SendMessageResponse{Message: toMessage(msg)}), nil
}

func (s *ChatService) MarkRead(ctx context.Context, req *connect.Request[pb.ChatRequest]) (*connect.Response[emptypb.Empty], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.chats.MarkRead(ctx, sess, req.Msg.GetChatId()); err != nil {
		return nil, toConnectError(s.logger, "MarkRead", err)
	}
	return connect.NewResponse(&emptypb.Empty{}), nil
}

func (s *ChatService) CompleteChat(ctx context.Context, req *connect.Request[pb.ChatRequest]) (*connect.Response[pb.CompleteChatResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.chats.Complete(ctx, sess, req.Msg.GetChatId())
	if err != nil {
		return nil, toConnectError(s.logger, "CompleteChat", err)
	}
	return connect.NewResponse(&pb.CompleteChatResponse{Completed: completed}), nil
}

func (s *ChatService) GetUnreadCount(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.UnreadCountResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.chats.UnreadCount(ctx, sess)
	if err != nil {
		return nil, toConnectError(s.logger, "GetUnreadCount", err)
	}
	return connect.NewResponse(&pb.UnreadCountResponse{Count: int32(n)}), nil
}
