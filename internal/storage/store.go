// Package storage provides abstractions for persistent data storage.
//
// The Store is the document store of the POINT backend: typed reads, inserts
// and targeted updates per collection, plus change subscriptions. Every
// committed write is published to subscribers after the transaction commits.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/realtime"
)

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a uniqueness constraint or a write
	// precondition (e.g. "status is still pending") does not hold.
	ErrConflict = errors.New("conflict")
)

// SealedSecret is an encrypted wallet key as stored at rest.
type SealedSecret struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// UserStore manages user profiles, friend lists and sealed wallet keys.
type UserStore interface {
	// CreateUser inserts user and, when secret is non-nil, its sealed wallet
	// key in the same transaction. A taken student ID yields ErrConflict.
	CreateUser(ctx context.Context, user *models.User, secret *SealedSecret) error

	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByStudentID(ctx context.Context, studentID string) (*models.User, error)

	// GetUsersByIDs returns the users that exist, keyed by ID.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// GetWalletSecret returns the sealed wallet key of userID.
	GetWalletSecret(ctx context.Context, userID string) (*SealedSecret, error)

	// AddFriend appends friendID to userID's list; ErrConflict if present.
	AddFriend(ctx context.Context, userID, friendID string) error
	RemoveFriend(ctx context.Context, userID, friendID string) error

	// ListFriends returns friends in insertion order.
	ListFriends(ctx context.Context, userID string) ([]*models.User, error)

	// SuggestFriends returns friends of friends that userID has not added,
	// ordered by the number of mutual friends.
	SuggestFriends(ctx context.Context, userID string, limit int) ([]*models.User, error)

	// ListFriendships returns every friend edge, grouped by user in
	// insertion order.
	ListFriendships(ctx context.Context) ([]Friendship, error)
}

// Friendship is one directed friend edge.
type Friendship struct {
	UserID   string
	FriendID string
}

// Payment describes how participant entries were settled.
type Payment struct {
	Via       string
	Signature string
	At        int64
}

// PaymentOutcome reports the effect of MarkParticipantsPaid.
type PaymentOutcome struct {
	// Updated lists the entries this call moved from pending to paid.
	Updated []string
	// AllPaid is true when no entry is pending after the call.
	AllPaid bool
	// ChatCompleted is true only for the call that completed the bound chat.
	ChatCompleted bool
	// Settlement is the state after the call.
	Settlement *models.Settlement
}

// SettlementStore manages settlements and their participant entries.
type SettlementStore interface {
	// CreateSplit persists a settlement, its bound chat and the opening
	// message atomically.
	CreateSplit(ctx context.Context, s *models.Settlement, chat *models.Chat, opening *models.Message) error

	GetSettlement(ctx context.Context, id string) (*models.Settlement, error)

	// ListSettlementsForUser returns settlements the user created or owes in,
	// newest first.
	ListSettlementsForUser(ctx context.Context, userID string) ([]*models.Settlement, error)

	// MarkParticipantsPaid moves the named entries (every entry when uids is
	// nil) from pending to paid. Entries already paid are left untouched.
	// When no entry remains pending the bound chat is completed in the same
	// transaction, at most once across all callers. Unknown settlement or
	// participant yields ErrNotFound.
	MarkParticipantsPaid(ctx context.Context, settlementID string, uids []string, p Payment) (*PaymentOutcome, error)
}

// ChatStore manages chats, messages and read receipts.
type ChatStore interface {
	CreateChat(ctx context.Context, chat *models.Chat) error
	GetChat(ctx context.Context, id string) (*models.Chat, error)

	// ListChatsForUser returns the user's chats, most recent activity first.
	// An empty status matches all.
	ListChatsForUser(ctx context.Context, userID, status string) ([]*models.Chat, error)

	// AppendMessage inserts msg and updates the chat's last message fields and
	// the sender's read receipt in one write.
	AppendMessage(ctx context.Context, msg *models.Message) (*models.Chat, error)

	// MarkChatRead sets the member's read receipt to at. Receipts never move
	// backwards.
	MarkChatRead(ctx context.Context, chatID, userID string, at int64) error

	// CompleteChat moves an active chat to completed. It returns false when the
	// chat was already completed.
	CompleteChat(ctx context.Context, chatID string) (bool, error)

	// ListMessages returns up to limit most recent messages, oldest first.
	ListMessages(ctx context.Context, chatID string, limit int) ([]*models.Message, error)
}

// RequestStore manages one-to-one payment requests.
type RequestStore interface {
	CreateRequest(ctx context.Context, r *models.Request) error
	GetRequest(ctx context.Context, id string) (*models.Request, error)

	// UpdateRequestStatus moves the request from one status to another.
	// ErrConflict when the current status is not from.
	UpdateRequestStatus(ctx context.Context, id, from, to string) (*models.Request, error)

	// ListRequestsTo returns requests addressed to userID with the given status.
	ListRequestsTo(ctx context.Context, userID, status string) ([]*models.Request, error)

	// ListRequestsFrom returns requests made by userID. Archived requests are
	// included only when includeArchived is set.
	ListRequestsFrom(ctx context.Context, userID string, includeArchived bool) ([]*models.Request, error)
}

// TransferStore is the log of ledger transfers, keyed by purpose.
type TransferStore interface {
	// PutTransfer inserts t or replaces the entry with the same purpose.
	PutTransfer(ctx context.Context, t *models.Transfer) error
	GetTransferByPurpose(ctx context.Context, purpose string) (*models.Transfer, error)

	// ListTransfersByAddress returns transfers from or to address, newest first.
	ListTransfersByAddress(ctx context.Context, address string, limit int) ([]*models.Transfer, error)
	ListRecentTransfers(ctx context.Context, limit int) ([]*models.Transfer, error)
}

// TreasuryStore records mocked purchases and fiat totals.
type TreasuryStore interface {
	// RecordPurchase stores p and adds its fiat amount to the treasury
	// balance of its currency.
	RecordPurchase(ctx context.Context, p *models.Purchase) error
	TreasuryBalances(ctx context.Context) ([]models.TreasuryBalance, error)
	ListPurchases(ctx context.Context, userID string) ([]*models.Purchase, error)
}

// Store is the complete document store.
type Store interface {
	UserStore
	SettlementStore
	ChatStore
	RequestStore
	TransferStore
	TreasuryStore

	// Subscribe delivers committed changes matching q to handler until ctx
	// is cancelled or the subscription is stopped.
	Subscribe(ctx context.Context, q realtime.Query, handler realtime.Handler) *realtime.Subscription

	// Close releases any resources held by the store.
	Close() error
}
