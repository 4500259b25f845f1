package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/pointwallet/internal/apperrors"
	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/chat"
	"github.com/mmynk/pointwallet/internal/middleware"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/request"
	"github.com/mmynk/pointwallet/internal/settlement"
	"github.com/mmynk/pointwallet/internal/social"
	"github.com/mmynk/pointwallet/internal/testutil"
	"github.com/mmynk/pointwallet/internal/treasury"
	"github.com/mmynk/pointwallet/internal/wallet"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

type testServer struct {
	env *testutil.Env
	jwt *auth.JWTManager
	url string
}

// clients bundles one Connect client per service.
type clients struct {
	auth        protoconnect.AuthServiceClient
	settlements protoconnect.SettlementServiceClient
	requests    protoconnect.RequestServiceClient
	chats       protoconnect.ChatServiceClient
	social      protoconnect.SocialServiceClient
	wallet      protoconnect.WalletServiceClient
	treasury    protoconnect.TreasuryServiceClient
}

func newClients(url string, opts ...connect.ClientOption) *clients {
	return &clients{
		auth:        protoconnect.NewAuthServiceClient(http.DefaultClient, url, opts...),
		settlements: protoconnect.NewSettlementServiceClient(http.DefaultClient, url, opts...),
		requests:    protoconnect.NewRequestServiceClient(http.DefaultClient, url, opts...),
		chats:       protoconnect.NewChatServiceClient(http.DefaultClient, url, opts...),
		social:      protoconnect.NewSocialServiceClient(http.DefaultClient, url, opts...),
		wallet:      protoconnect.NewWalletServiceClient(http.DefaultClient, url, opts...),
		treasury:    protoconnect.NewTreasuryServiceClient(http.DefaultClient, url, opts...),
	}
}

var publicProcedures = []string{
	protoconnect.AuthServiceRegisterProcedure,
	protoconnect.AuthServiceLoginProcedure,
}

func empty() *connect.Request[emptypb.Empty] {
	return connect.NewRequest(&emptypb.Empty{})
}

// setupTestServer serves every service over httptest on a fresh backend.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	env := testutil.New(t)
	jwt := auth.NewJWTManager("service-test-secret-0123456789", time.Hour)

	settlements := settlement.NewManager(env.Store, env.Payments, env.Logger)
	requests := request.NewManager(env.Store, env.Payments, env.Logger)
	wallets := wallet.NewManager(wallet.Config{
		Store:     env.Store,
		Payer:     env.Payments,
		Ledger:    env.Ledger,
		Asset:     testutil.Asset,
		KRWPerUSD: 1300,
		Timeout:   5 * time.Second,
		Logger:    env.Logger,
	})

	interceptors := connect.WithInterceptors(middleware.RequireAuth(jwt, publicProcedures...))
	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(env.Auth, env.Store, jwt, env.Logger), interceptors))
	mux.Handle(protoconnect.NewSettlementServiceHandler(NewSettlementService(settlements, requests, env.Logger), interceptors))
	mux.Handle(protoconnect.NewRequestServiceHandler(NewRequestService(requests, env.Logger), interceptors))
	mux.Handle(protoconnect.NewChatServiceHandler(NewChatService(chat.NewManager(env.Store, env.Logger), env.Logger), interceptors))
	mux.Handle(protoconnect.NewSocialServiceHandler(NewSocialService(social.NewManager(env.Store, nil, env.Logger), env.Logger), interceptors))
	mux.Handle(protoconnect.NewWalletServiceHandler(NewWalletService(wallets, env.Logger), interceptors))
	mux.Handle(protoconnect.NewTreasuryServiceHandler(NewTreasuryService(treasury.NewManager(env.Store, env.Ledger, env.Relay, 5*time.Second), env.Logger), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return &testServer{env: env, jwt: jwt, url: server.URL}
}

// client returns service clients authenticated as u.
func (s *testServer) client(t *testing.T, u *models.User) *clients {
	t.Helper()
	token, err := s.jwt.Generate(u)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return newClients(s.url, middleware.WithToken(token))
}

func (s *testServer) user(t *testing.T, name string, funds int64) (*models.User, *clients) {
	t.Helper()
	u, _ := s.env.User(t, name, funds)
	return u, s.client(t, u)
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil error", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected %v, got %v (%v)", want, got, err)
	}
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t)
	anonymous := newClients(s.url)

	reg, err := anonymous.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		StudentId:  "20240001",
		Password:   "password123",
		Name:       "Minji",
		Department: "CS",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.Msg.GetToken() == "" || reg.Msg.GetUser().GetWalletAddress() == "" {
		t.Fatalf("expected token and wallet address, got %+v", reg.Msg)
	}

	_, err = anonymous.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{StudentId: "20240001", Password: "password123", Name: "Again"}))
	expectCode(t, err, connect.CodeAlreadyExists)

	_, err = anonymous.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{StudentId: "20240002", Password: "short", Name: "Weak"}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = anonymous.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{StudentId: "20240001", Password: "wrong-password"}))
	expectCode(t, err, connect.CodeUnauthenticated)

	login, err := anonymous.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{StudentId: "20240001", Password: "password123"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	me, err := newClients(s.url, middleware.WithToken(login.Msg.GetToken())).auth.GetCurrentUser(ctx, empty())
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.GetUser().GetId() != reg.Msg.GetUser().GetId() {
		t.Errorf("expected user %s, got %s", reg.Msg.GetUser().GetId(), me.Msg.GetUser().GetId())
	}
	if me.Msg.GetUser().GetCreatedAt() == nil {
		t.Error("expected a creation time")
	}

	_, err = anonymous.auth.GetCurrentUser(ctx, empty())
	expectCode(t, err, connect.CodeUnauthenticated)
}

func TestSettlementService(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t)
	alice, ac := s.user(t, "alice", 0)
	bob, bc := s.user(t, "bob", 10_000)
	carol, cc := s.user(t, "carol", 0)

	eqResp, err := ac.settlements.EqualShares(ctx, connect.NewRequest(&pb.EqualSharesRequest{TotalAmount: 1000, FriendIds: []string{bob.ID, carol.ID}}))
	if err != nil {
		t.Fatalf("EqualShares failed: %v", err)
	}
	eq := eqResp.Msg
	if len(eq.GetShares()) != 2 || eq.GetCreatorShare()+eq.GetShares()[0].GetAmount()+eq.GetShares()[1].GetAmount() != 1000 {
		t.Fatalf("shares do not sum to the total: %+v", eq)
	}

	_, err = ac.settlements.CreateSettlement(ctx, connect.NewRequest(&pb.CreateSettlementRequest{TotalAmount: 1000}))
	expectCode(t, err, connect.CodeInvalidArgument)

	created, err := ac.settlements.CreateSettlement(ctx, connect.NewRequest(&pb.CreateSettlementRequest{
		TotalAmount: 1000,
		Shares:      eq.GetShares(),
	}))
	if err != nil {
		t.Fatalf("CreateSettlement failed: %v", err)
	}
	if created.Msg.GetChatId() == "" {
		t.Fatal("expected a bound chat")
	}
	id := created.Msg.GetSettlementId()

	got, err := bc.settlements.GetSettlement(ctx, connect.NewRequest(&pb.SettlementRequest{SettlementId: id}))
	if err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}
	if st := got.Msg.GetSettlement(); st.GetProgress().GetPercent() != 0 || st.GetCreatorShare() != eq.GetCreatorShare() {
		t.Errorf("unexpected settlement %+v", st)
	}

	balances, err := ac.settlements.GetBalances(ctx, empty())
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	var aliceNet int64
	for _, b := range balances.Msg.GetBalances() {
		if b.GetUserId() == alice.ID {
			aliceNet = b.GetNetBalance()
		}
	}
	owed := eq.GetShares()[0].GetAmount() + eq.GetShares()[1].GetAmount()
	if aliceNet != owed {
		t.Errorf("expected alice to be owed %d, got %d", owed, aliceNet)
	}

	_, err = cc.settlements.ManualMarkPaid(ctx, connect.NewRequest(&pb.ManualMarkPaidRequest{SettlementId: id, UserId: carol.ID}))
	expectCode(t, err, connect.CodePermissionDenied)

	paid, err := bc.settlements.PayShare(ctx, connect.NewRequest(&pb.SettlementRequest{SettlementId: id}))
	if err != nil {
		t.Fatalf("PayShare failed: %v", err)
	}
	if paid.Msg.GetCompleted() || paid.Msg.GetSettlement().GetProgress().GetPaidCount() != 1 {
		t.Errorf("expected 1 of 2 paid, got %+v", paid.Msg.GetSettlement().GetProgress())
	}

	_, err = bc.settlements.PayShare(ctx, connect.NewRequest(&pb.SettlementRequest{SettlementId: id}))
	expectCode(t, err, connect.CodeAborted)

	_, err = ac.settlements.ForceCompleteAll(ctx, connect.NewRequest(&pb.ForceCompleteAllRequest{SettlementId: id}))
	expectCode(t, err, connect.CodeInvalidArgument)

	done, err := ac.settlements.ForceCompleteAll(ctx, connect.NewRequest(&pb.ForceCompleteAllRequest{SettlementId: id, Confirm: true}))
	if err != nil {
		t.Fatalf("ForceCompleteAll failed: %v", err)
	}
	if !done.Msg.GetCompleted() || done.Msg.GetSettlement().GetProgress().GetPercent() != 100 {
		t.Errorf("expected completion, got %+v", done.Msg)
	}

	_, err = bc.settlements.GetSettlement(ctx, connect.NewRequest(&pb.SettlementRequest{SettlementId: "missing"}))
	expectCode(t, err, connect.CodeNotFound)

	list, err := cc.settlements.ListSettlements(ctx, empty())
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(list.Msg.GetSettlements()) != 1 {
		t.Errorf("expected 1 settlement for carol, got %d", len(list.Msg.GetSettlements()))
	}
}

func TestPayShareInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t)
	_, ac := s.user(t, "alice", 0)
	bob, bc := s.user(t, "bob", 10)

	created, err := ac.settlements.CreateSettlement(ctx, connect.NewRequest(&pb.CreateSettlementRequest{
		TotalAmount: 1000,
		Shares:      []*pb.Share{{UserId: bob.ID, Amount: 500}},
	}))
	if err != nil {
		t.Fatalf("CreateSettlement failed: %v", err)
	}

	_, err = bc.settlements.PayShare(ctx, connect.NewRequest(&pb.SettlementRequest{SettlementId: created.Msg.GetSettlementId()}))
	expectCode(t, err, connect.CodeFailedPrecondition)
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a connect error, got %T", err)
	}
	if reason := cerr.Meta().Get(middleware.ReasonHeader); reason != apperrors.ReasonInsufficientFunds {
		t.Errorf("expected reason %q, got %q", apperrors.ReasonInsufficientFunds, reason)
	}
}

func TestRequestService(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t)
	alice, ac := s.user(t, "alice", 0)
	bob, bc := s.user(t, "bob", 1000)

	created, err := ac.requests.CreateRequest(ctx, connect.NewRequest(&pb.CreateRequestRequest{ToUserId: bob.ID, Amount: 300}))
	if err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}
	id := created.Msg.GetRequestId()

	incoming, err := bc.requests.ListIncoming(ctx, empty())
	if err != nil {
		t.Fatalf("ListIncoming failed: %v", err)
	}
	if reqs := incoming.Msg.GetRequests(); len(reqs) != 1 || reqs[0].GetFromUserId() != alice.ID {
		t.Fatalf("unexpected incoming requests %+v", reqs)
	}

	_, err = bc.requests.FulfillRequest(ctx, connect.NewRequest(&pb.FulfillRequestRequest{RequestId: id, Amount: 100}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = ac.requests.FulfillRequest(ctx, connect.NewRequest(&pb.FulfillRequestRequest{RequestId: id, Amount: 300}))
	expectCode(t, err, connect.CodePermissionDenied)

	paid, err := bc.requests.FulfillRequest(ctx, connect.NewRequest(&pb.FulfillRequestRequest{RequestId: id, Amount: 300}))
	if err != nil {
		t.Fatalf("FulfillRequest failed: %v", err)
	}
	if status := paid.Msg.GetRequest().GetStatus(); status != models.RequestCompleted {
		t.Errorf("expected completed, got %s", status)
	}
	if bal := s.env.Balance(t, alice); bal != 300 {
		t.Errorf("expected alice balance 300, got %d", bal)
	}

	archived, err := ac.requests.Archive(ctx, connect.NewRequest(&pb.RequestIDRequest{RequestId: id}))
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if status := archived.Msg.GetRequest().GetStatus(); status != models.RequestArchived {
		t.Errorf("expected archived, got %s", status)
	}

	outgoing, err := ac.requests.ListOutgoing(ctx, empty())
	if err != nil {
		t.Fatalf("ListOutgoing failed: %v", err)
	}
	if n := len(outgoing.Msg.GetRequests()); n != 0 {
		t.Errorf("expected archived request to be hidden, got %d", n)
	}
}

func TestChatService(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t)
	_, ac := s.user(t, "alice", 0)
	bob, bc := s.user(t, "bob", 0)

	created, err := ac.settlements.CreateSettlement(ctx, connect.NewRequest(&pb.CreateSettlementRequest{
		TotalAmount: 1000,
		Shares:      []*pb.Share{{UserId: bob.ID, Amount: 500}},
	}))
	if err != nil {
		t.Fatalf("CreateSettlement failed: %v", err)
	}
	chatID := created.Msg.GetChatId()

	unread, err := bc.chats.GetUnreadCount(ctx, empty())
	if err != nil {
		t.Fatalf("GetUnreadCount failed: %v", err)
	}
	if unread.Msg.GetCount() != 1 {
		t.Errorf("expected 1 unread chat for bob, got %d", unread.Msg.GetCount())
	}

	if _, err := bc.chats.MarkRead(ctx, connect.NewRequest(&pb.ChatRequest{ChatId: chatID})); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	unread, err = bc.chats.GetUnreadCount(ctx, empty())
	if err != nil {
		t.Fatalf("GetUnreadCount failed: %v", err)
	}
	if unread.Msg.GetCount() != 0 {
		t.Errorf("expected no unread chats after MarkRead, got %d", unread.Msg.GetCount())
	}

	// Timestamps have millisecond resolution.
	time.Sleep(5 * time.Millisecond)
	if _, err := bc.chats.SendMessage(ctx, connect.NewRequest(&pb.SendMessageRequest{ChatId: chatID, Text: "paying tonight"})); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	msgs, err := ac.chats.GetMessages(ctx, connect.NewRequest(&pb.GetMessagesRequest{ChatId: chatID}))
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if n := len(msgs.Msg.GetMessages()); n != 2 {
		t.Errorf("expected opening and reply, got %d messages", n)
	}

	chats, err := ac.chats.ListChats(ctx, connect.NewRequest(&pb.ListChatsRequest{}))
	if err != nil {
		t.Fatalf("ListChats failed: %v", err)
	}
	if list := chats.Msg.GetChats(); len(list) != 1 || !list[0].GetUnread() {
		t.Errorf("expected one unread chat for alice, got %+v", list)
	}

	_, err = ac.chats.ListChats(ctx, connect.NewRequest(&pb.ListChatsRequest{Filter: "archived"}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestSocialAndWalletService(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t)
	alice, ac := s.user(t, "alice", 0)
	bob, _ := s.user(t, "bob", 0)

	if _, err := ac.wallet.Buy(ctx, connect.NewRequest(&pb.BuyRequest{Points: 2000, Currency: models.CurrencyKRW})); err != nil {
		t.Fatalf("Buy failed: %v", err)
	}
	_, err := ac.wallet.Buy(ctx, connect.NewRequest(&pb.BuyRequest{Points: 2050, Currency: models.CurrencyKRW}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = ac.wallet.Send(ctx, connect.NewRequest(&pb.SendRequest{ToUserId: bob.ID, Amount: 500}))
	expectCode(t, err, connect.CodePermissionDenied)

	if _, err := ac.social.AddFriend(ctx, connect.NewRequest(&pb.AddFriendRequest{StudentId: bob.StudentID})); err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	friends, err := ac.social.ListFriends(ctx, empty())
	if err != nil {
		t.Fatalf("ListFriends failed: %v", err)
	}
	if users := friends.Msg.GetUsers(); len(users) != 1 || users[0].GetId() != bob.ID {
		t.Fatalf("expected bob as the only friend, got %+v", users)
	}

	sent, err := ac.wallet.Send(ctx, connect.NewRequest(&pb.SendRequest{ToUserId: bob.ID, Amount: 500}))
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if sent.Msg.GetTransfer().GetSignature() == "" {
		t.Error("expected a confirmed signature")
	}

	bal, err := ac.wallet.GetBalance(ctx, empty())
	if err != nil {
		t.Fatalf("GetBalance failed: %v", err)
	}
	if bal.Msg.GetBalance() != 1500 || bal.Msg.GetAddress() != alice.WalletAddress {
		t.Errorf("unexpected balance %+v", bal.Msg)
	}

	history, err := ac.wallet.GetHistory(ctx, connect.NewRequest(&pb.GetHistoryRequest{}))
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if n := len(history.Msg.GetTransfers()); n != 2 {
		t.Errorf("expected purchase and send in history, got %d", n)
	}

	if _, err := ac.social.RemoveFriend(ctx, connect.NewRequest(&pb.RemoveFriendRequest{UserId: bob.ID})); err != nil {
		t.Fatalf("RemoveFriend failed: %v", err)
	}
	_, err = ac.wallet.Send(ctx, connect.NewRequest(&pb.SendRequest{ToUserId: bob.ID, Amount: 100}))
	expectCode(t, err, connect.CodePermissionDenied)
}

func TestTreasuryService(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t)
	_, student := s.user(t, "student", 0)

	_, err := student.treasury.GetStats(ctx, empty())
	expectCode(t, err, connect.CodePermissionDenied)

	admin, _ := s.env.User(t, "admin", 0)
	admin.Role = models.RoleAdmin
	stats, err := s.client(t, admin).treasury.GetStats(ctx, empty())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Msg.GetPointBalance() != testutil.TreasurySupply {
		t.Errorf("expected treasury balance %d, got %d", testutil.TreasurySupply, stats.Msg.GetPointBalance())
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want connect.Code
	}{
		{apperrors.Validation("op", "bad"), connect.CodeInvalidArgument},
		{apperrors.PermissionDenied("op", "no"), connect.CodePermissionDenied},
		{apperrors.NotFound("op", "gone"), connect.CodeNotFound},
		{apperrors.TransferFailed("op", apperrors.ReasonRejected, nil), connect.CodeFailedPrecondition},
		{apperrors.Timeout("op", context.DeadlineExceeded), connect.CodeDeadlineExceeded},
		{apperrors.AlreadyHandled("op", "done"), connect.CodeAborted},
		{fmt.Errorf("disk on fire"), connect.CodeInternal},
	}
	for _, tt := range tests {
		if got := codeOf(tt.err); got != tt.want {
			t.Errorf("codeOf(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestInternalErrorsAreHidden(t *testing.T) {
	err := toConnectError(testutil.New(t).Logger, "Op", errors.New("sqlite: table users is locked"))
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a connect error, got %T", err)
	}
	if cerr.Code() != connect.CodeInternal || cerr.Message() != "internal error" {
		t.Errorf("expected a generic internal error, got %v", cerr)
	}
}
