package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/realtime"
	"github.com/mmynk/pointwallet/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store *SQLiteStore, studentID, name string) *models.User {
	t.Helper()
	user := &models.User{
		ID:            uuid.New().String(),
		StudentID:     studentID,
		Name:          name,
		WalletAddress: "addr-" + studentID,
		PasswordHash:  "hash",
		Role:          models.RoleStudent,
		CreatedAt:     models.Now(),
	}
	if err := store.CreateUser(context.Background(), user, nil); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

// createSplit stores a settlement owed by the given users plus its chat.
func createSplit(t *testing.T, store *SQLiteStore, creator *models.User, owers ...*models.User) *models.Settlement {
	t.Helper()
	now := models.Now()
	st := &models.Settlement{
		ID:             uuid.New().String(),
		CreatorID:      creator.ID,
		CreatorName:    creator.Name,
		CreatorAddress: creator.WalletAddress,
		TotalAmount:    1000 * int64(len(owers)+1),
		ChatID:         uuid.New().String(),
		CreatedAt:      now,
	}
	for _, u := range owers {
		st.Participants = append(st.Participants, models.Participant{
			UID: u.ID, Name: u.Name, Address: u.WalletAddress, Amount: 1000, Status: models.StatusPending,
		})
	}
	chat := &models.Chat{
		ID:           st.ChatID,
		Title:        "Dinner",
		Participants: st.Members(),
		Status:       models.ChatActive,
		ReadStatus:   map[string]int64{creator.ID: now},
		SettlementID: st.ID,
		CreatedBy:    creator.ID,
		CreatedAt:    now,
	}
	opening := &models.Message{
		ID: uuid.New().String(), ChatID: chat.ID, SenderID: creator.ID, SenderName: creator.Name,
		Text: "split created", Kind: models.MessageSystem, CreatedAt: now,
	}
	if err := store.CreateSplit(context.Background(), st, chat, opening); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	return st
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "1001", "Alice")
	bob := createUser(t, store, "1002", "Bob")
	carol := createUser(t, store, "1003", "Carol")

	t.Run("duplicate student id is a conflict", func(t *testing.T) {
		dup := &models.User{ID: uuid.New().String(), StudentID: "1001", Name: "Other", WalletAddress: "x", PasswordHash: "h", Role: models.RoleStudent}
		err := store.CreateUser(ctx, dup, nil)
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("lookup by student id", func(t *testing.T) {
		got, err := store.GetUserByStudentID(ctx, "1002")
		if err != nil {
			t.Fatalf("GetUserByStudentID failed: %v", err)
		}
		if got.ID != bob.ID {
			t.Errorf("got %s, want %s", got.ID, bob.ID)
		}
		if _, err := store.GetUserByID(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("wallet secret is stored with the user", func(t *testing.T) {
		user := &models.User{ID: uuid.New().String(), StudentID: "1004", Name: "Dan", WalletAddress: "d", PasswordHash: "h", Role: models.RoleStudent}
		secret := &storage.SealedSecret{Salt: []byte("salt"), Nonce: []byte("nonce"), Ciphertext: []byte("ct")}
		if err := store.CreateUser(ctx, user, secret); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		got, err := store.GetWalletSecret(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetWalletSecret failed: %v", err)
		}
		if string(got.Ciphertext) != "ct" || string(got.Salt) != "salt" {
			t.Errorf("unexpected secret: %+v", got)
		}
	})

	t.Run("friends keep insertion order and reject duplicates", func(t *testing.T) {
		for _, f := range []*models.User{carol, bob} {
			if err := store.AddFriend(ctx, alice.ID, f.ID); err != nil {
				t.Fatalf("AddFriend failed: %v", err)
			}
		}
		if err := store.AddFriend(ctx, alice.ID, bob.ID); !errors.Is(err, storage.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}

		friends, err := store.ListFriends(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}
		if len(friends) != 2 || friends[0].ID != carol.ID || friends[1].ID != bob.ID {
			t.Errorf("unexpected friends order: %v", friends)
		}
	})

	t.Run("suggestions are friends of friends", func(t *testing.T) {
		if err := store.AddFriend(ctx, bob.ID, carol.ID); err != nil {
			t.Fatalf("AddFriend failed: %v", err)
		}
		dan, _ := store.GetUserByStudentID(ctx, "1004")
		if err := store.AddFriend(ctx, bob.ID, dan.ID); err != nil {
			t.Fatalf("AddFriend failed: %v", err)
		}

		suggested, err := store.SuggestFriends(ctx, alice.ID, 10)
		if err != nil {
			t.Fatalf("SuggestFriends failed: %v", err)
		}
		if len(suggested) != 1 || suggested[0].ID != dan.ID {
			t.Errorf("expected only Dan, got %v", suggested)
		}
	})

	t.Run("remove friend", func(t *testing.T) {
		if err := store.RemoveFriend(ctx, alice.ID, carol.ID); err != nil {
			t.Fatalf("RemoveFriend failed: %v", err)
		}
		if err := store.RemoveFriend(ctx, alice.ID, carol.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestSettlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	creator := createUser(t, store, "2001", "Creator")
	a := createUser(t, store, "2002", "A")
	b := createUser(t, store, "2003", "B")

	t.Run("CreateSplit stores settlement, chat and opening message", func(t *testing.T) {
		st := createSplit(t, store, creator, a, b)

		got, err := store.GetSettlement(ctx, st.ID)
		if err != nil {
			t.Fatalf("GetSettlement failed: %v", err)
		}
		if len(got.Participants) != 2 || got.Participants[0].UID != a.ID {
			t.Errorf("participants not stored in order: %+v", got.Participants)
		}
		chat, err := store.GetChat(ctx, st.ChatID)
		if err != nil {
			t.Fatalf("GetChat failed: %v", err)
		}
		if chat.SettlementID != st.ID || chat.Status != models.ChatActive {
			t.Errorf("unexpected chat: %+v", chat)
		}
		msgs, err := store.ListMessages(ctx, chat.ID, 10)
		if err != nil || len(msgs) != 1 || msgs[0].Kind != models.MessageSystem {
			t.Errorf("expected one system message, got %v (%v)", msgs, err)
		}
	})

	t.Run("marking paid is targeted and idempotent", func(t *testing.T) {
		st := createSplit(t, store, creator, a, b)
		pay := storage.Payment{Via: models.PaidViaOnChain, Signature: "sig-a", At: models.Now()}

		out, err := store.MarkParticipantsPaid(ctx, st.ID, []string{a.ID}, pay)
		if err != nil {
			t.Fatalf("MarkParticipantsPaid failed: %v", err)
		}
		if len(out.Updated) != 1 || out.AllPaid || out.ChatCompleted {
			t.Errorf("unexpected outcome: %+v", out)
		}

		again, err := store.MarkParticipantsPaid(ctx, st.ID, []string{a.ID}, storage.Payment{Via: models.PaidViaManual})
		if err != nil {
			t.Fatalf("second MarkParticipantsPaid failed: %v", err)
		}
		if len(again.Updated) != 0 {
			t.Errorf("second call should not update anything: %+v", again)
		}
		entry, _ := again.Settlement.Participant(a.ID)
		if entry.PaidVia != models.PaidViaOnChain || entry.Signature != "sig-a" {
			t.Errorf("audit fields overwritten: %+v", entry)
		}
	})

	t.Run("unknown participant or settlement is not found", func(t *testing.T) {
		st := createSplit(t, store, creator, a)
		_, err := store.MarkParticipantsPaid(ctx, st.ID, []string{"stranger"}, storage.Payment{})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		_, err = store.MarkParticipantsPaid(ctx, "missing", nil, storage.Payment{})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("bulk marks every pending entry and completes the chat", func(t *testing.T) {
		st := createSplit(t, store, creator, a, b)
		out, err := store.MarkParticipantsPaid(ctx, st.ID, nil, storage.Payment{Via: models.PaidViaBulk, At: models.Now()})
		if err != nil {
			t.Fatalf("MarkParticipantsPaid failed: %v", err)
		}
		if len(out.Updated) != 2 || !out.AllPaid || !out.ChatCompleted {
			t.Errorf("unexpected outcome: %+v", out)
		}
		chat, _ := store.GetChat(ctx, st.ChatID)
		if chat.Status != models.ChatCompleted {
			t.Errorf("chat status = %s, want completed", chat.Status)
		}
	})

	t.Run("concurrent last payers complete the chat exactly once", func(t *testing.T) {
		var owers []*models.User
		for i := 0; i < 8; i++ {
			owers = append(owers, createUser(t, store, fmt.Sprintf("29%02d", i), fmt.Sprintf("P%d", i)))
		}
		st := createSplit(t, store, creator, owers...)

		var completions atomic.Int32
		var g errgroup.Group
		for _, u := range owers {
			g.Go(func() error {
				out, err := store.MarkParticipantsPaid(ctx, st.ID, []string{u.ID},
					storage.Payment{Via: models.PaidViaOnChain, Signature: "sig-" + u.ID, At: models.Now()})
				if err != nil {
					return err
				}
				if out.ChatCompleted {
					completions.Add(1)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatalf("concurrent payments failed: %v", err)
		}
		if got := completions.Load(); got != 1 {
			t.Errorf("chat completed %d times, want 1", got)
		}
	})

	t.Run("ListSettlementsForUser covers creator and participant", func(t *testing.T) {
		mine, err := store.ListSettlementsForUser(ctx, creator.ID)
		if err != nil {
			t.Fatalf("ListSettlementsForUser failed: %v", err)
		}
		owed, err := store.ListSettlementsForUser(ctx, b.ID)
		if err != nil {
			t.Fatalf("ListSettlementsForUser failed: %v", err)
		}
		if len(mine) < len(owed) || len(owed) == 0 {
			t.Errorf("unexpected listing sizes: creator=%d b=%d", len(mine), len(owed))
		}
	})
}

func TestChats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	creator := createUser(t, store, "3001", "Creator")
	friend := createUser(t, store, "3002", "Friend")
	st := createSplit(t, store, creator, friend)

	t.Run("AppendMessage updates summary and sender receipt", func(t *testing.T) {
		at := models.Now() + 10
		chat, err := store.AppendMessage(ctx, &models.Message{
			ID: uuid.New().String(), ChatID: st.ChatID, SenderID: friend.ID, SenderName: friend.Name,
			Text: "paid soon", Kind: models.MessageText, CreatedAt: at,
		})
		if err != nil {
			t.Fatalf("AppendMessage failed: %v", err)
		}
		if chat.LastMessage != "paid soon" || chat.LastSenderID != friend.ID || chat.LastMessageAt != at {
			t.Errorf("summary not updated: %+v", chat)
		}
		if chat.ReadStatus[friend.ID] != at {
			t.Errorf("sender receipt = %d, want %d", chat.ReadStatus[friend.ID], at)
		}
	})

	t.Run("read receipts never move backwards", func(t *testing.T) {
		if err := store.MarkChatRead(ctx, st.ChatID, creator.ID, 500); err != nil {
			t.Fatalf("MarkChatRead failed: %v", err)
		}
		chat, _ := store.GetChat(ctx, st.ChatID)
		if chat.ReadStatus[creator.ID] == 500 {
			t.Error("older receipt overwrote a newer one")
		}
		if err := store.MarkChatRead(ctx, st.ChatID, "stranger", 1); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for non-member, got %v", err)
		}
	})

	t.Run("CompleteChat reports the transition once", func(t *testing.T) {
		first, err := store.CompleteChat(ctx, st.ChatID)
		if err != nil || !first {
			t.Fatalf("first CompleteChat = %v, %v", first, err)
		}
		second, err := store.CompleteChat(ctx, st.ChatID)
		if err != nil || second {
			t.Errorf("second CompleteChat = %v, %v", second, err)
		}
		if _, err := store.CompleteChat(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListChatsForUser filters by status", func(t *testing.T) {
		active, _ := store.ListChatsForUser(ctx, friend.ID, models.ChatActive)
		completed, _ := store.ListChatsForUser(ctx, friend.ID, models.ChatCompleted)
		if len(active) != 0 || len(completed) != 1 {
			t.Errorf("active=%d completed=%d", len(active), len(completed))
		}
	})
}

func TestRequests(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := models.Now()
	req := &models.Request{
		ID: uuid.New().String(), FromUID: "u1", FromName: "One", FromAddress: "a1",
		ToUID: "u2", ToName: "Two", ToAddress: "a2", Amount: 100,
		Status: models.RequestPending, CreatedAt: now, UpdatedAt: now,
	}
	if err := store.CreateRequest(ctx, req); err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}

	t.Run("status update is compare-and-set", func(t *testing.T) {
		got, err := store.UpdateRequestStatus(ctx, req.ID, models.RequestPending, models.RequestCompleted)
		if err != nil {
			t.Fatalf("UpdateRequestStatus failed: %v", err)
		}
		if got.Status != models.RequestCompleted {
			t.Errorf("status = %s", got.Status)
		}
		_, err = store.UpdateRequestStatus(ctx, req.ID, models.RequestPending, models.RequestCompleted)
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
		_, err = store.UpdateRequestStatus(ctx, "missing", models.RequestPending, models.RequestCompleted)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("archived requests leave the outgoing list", func(t *testing.T) {
		if _, err := store.UpdateRequestStatus(ctx, req.ID, models.RequestCompleted, models.RequestArchived); err != nil {
			t.Fatalf("archive failed: %v", err)
		}
		active, _ := store.ListRequestsFrom(ctx, "u1", false)
		all, _ := store.ListRequestsFrom(ctx, "u1", true)
		if len(active) != 0 || len(all) != 1 {
			t.Errorf("active=%d all=%d", len(active), len(all))
		}
	})
}

func TestTransfersAndTreasury(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("PutTransfer replaces by purpose", func(t *testing.T) {
		tr := &models.Transfer{ID: uuid.New().String(), Purpose: "send:1", FromAddress: "a", ToAddress: "b",
			Amount: 5, Status: models.TransferSubmitted, Signature: "s1", CreatedAt: models.Now()}
		if err := store.PutTransfer(ctx, tr); err != nil {
			t.Fatalf("PutTransfer failed: %v", err)
		}
		tr.Status = models.TransferConfirmed
		if err := store.PutTransfer(ctx, tr); err != nil {
			t.Fatalf("PutTransfer failed: %v", err)
		}
		got, err := store.GetTransferByPurpose(ctx, "send:1")
		if err != nil || got.Status != models.TransferConfirmed {
			t.Errorf("got %+v, %v", got, err)
		}
		list, _ := store.ListTransfersByAddress(ctx, "b", 10)
		if len(list) != 1 {
			t.Errorf("expected one transfer for b, got %d", len(list))
		}
	})

	t.Run("purchases accumulate per currency", func(t *testing.T) {
		for _, amt := range []int64{1000, 2500} {
			p := &models.Purchase{ID: uuid.New().String(), UserID: "u", Points: amt, Currency: models.CurrencyKRW,
				FiatAmount: amt, Signature: "s", CreatedAt: models.Now()}
			if err := store.RecordPurchase(ctx, p); err != nil {
				t.Fatalf("RecordPurchase failed: %v", err)
			}
		}
		balances, err := store.TreasuryBalances(ctx)
		if err != nil {
			t.Fatalf("TreasuryBalances failed: %v", err)
		}
		if len(balances) != 1 || balances[0].Amount != 3500 {
			t.Errorf("unexpected balances: %+v", balances)
		}
	})
}

func TestSubscribe(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	creator := createUser(t, store, "4001", "Creator")
	friend := createUser(t, store, "4002", "Friend")
	outsider := createUser(t, store, "4003", "Outsider")

	got := make(chan realtime.Change, 10)
	sub := store.Subscribe(ctx, realtime.Query{Collection: realtime.CollectionSettlements, UserID: friend.ID},
		func(c realtime.Change) { got <- c })
	defer sub.Unsubscribe()

	leaked := make(chan realtime.Change, 10)
	other := store.Subscribe(ctx, realtime.Query{Collection: realtime.CollectionSettlements, UserID: outsider.ID},
		func(c realtime.Change) { leaked <- c })
	defer other.Unsubscribe()

	st := createSplit(t, store, creator, friend)
	if _, err := store.MarkParticipantsPaid(ctx, st.ID, []string{friend.ID}, storage.Payment{Via: models.PaidViaManual}); err != nil {
		t.Fatalf("MarkParticipantsPaid failed: %v", err)
	}

	for _, want := range []realtime.ChangeKind{realtime.Added, realtime.Modified} {
		select {
		case c := <-got:
			if c.Kind != want || c.DocID != st.ID {
				t.Errorf("got %s %s, want %s %s", c.Kind, c.DocID, want, st.ID)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
	select {
	case c := <-leaked:
		t.Errorf("outsider received %v", c)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishFollowsCommitOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	creator := createUser(t, store, "5000", "Creator")
	var owers []*models.User
	for i := 1; i <= 8; i++ {
		owers = append(owers, createUser(t, store, fmt.Sprintf("50%02d", i), fmt.Sprintf("Ower %d", i)))
	}

	got := make(chan *models.Settlement, len(owers))
	sub := store.Subscribe(ctx, realtime.Query{Collection: realtime.CollectionSettlements, UserID: creator.ID},
		func(c realtime.Change) {
			if c.Kind == realtime.Modified {
				got <- c.Doc.(*models.Settlement)
			}
		})
	defer sub.Unsubscribe()

	st := createSplit(t, store, creator, owers...)

	var g errgroup.Group
	for _, u := range owers {
		g.Go(func() error {
			_, err := store.MarkParticipantsPaid(ctx, st.ID, []string{u.ID}, storage.Payment{Via: models.PaidViaManual, At: models.Now()})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("MarkParticipantsPaid failed: %v", err)
	}

	for want := 1; want <= len(owers); want++ {
		select {
		case doc := <-got:
			paid := 0
			for _, p := range doc.Participants {
				if p.Status == models.StatusPaid {
					paid++
				}
			}
			if paid != want {
				t.Fatalf("change %d carries %d paid entries, want %d", want, paid, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for change %d", want)
		}
	}
}
