package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/storage"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

// UserLookup loads profiles by ID.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	protoconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	users         UserLookup
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, users UserLookup, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		users:         users,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a new account with its custodial wallet.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[pb.RegisterRequest]) (*connect.Response[pb.AuthResponse], error) {
	s.logger.Info("Register request", "student_id", req.Msg.GetStudentId())

	user, err := s.authenticator.Register(ctx, auth.Registration{
		StudentID:  req.Msg.GetStudentId(),
		Name:       req.Msg.GetName(),
		Department: req.Msg.GetDepartment(),
		Password:   req.Msg.GetPassword(),
	})
	if err != nil {
		s.logger.Error("Registration failed", "student_id", req.Msg.GetStudentId(), "error", err)
		switch {
		case errors.Is(err, auth.ErrStudentIDExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrMissingProfile):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, errors.New("registration failed"))
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "student_id", user.StudentID)
	return connect.NewResponse(&pb.AuthResponse{User: toUser(user), Token: token}), nil
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.AuthResponse], error) {
	s.logger.Info("Login request", "student_id", req.Msg.GetStudentId())

	if req.Msg.GetStudentId() == "" || req.Msg.GetPassword() == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.GetStudentId(), req.Msg.GetPassword())
	if err != nil {
		s.logger.Warn("Login failed", "student_id", req.Msg.GetStudentId(), "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID)
	return connect.NewResponse(&pb.AuthResponse{User: toUser(user), Token: token}), nil
}

// GetCurrentUser returns the currently authenticated user's profile.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.UserResponse], error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUserByID(ctx, sess.UserID)
	if err != nil {
		return nil, toConnectError(s.logger, "GetCurrentUser", storage.Wrap("auth.GetCurrentUser", err))
	}
	return connect.NewResponse(&pb.UserResponse{User: toUser(user)}), nil
}
