package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type account struct {
	owner   string
	asset   string
	balance int64
}

// Memory is an in-process ledger. Transactions settle synchronously on
// Submit, so Confirm never reports Pending.
type Memory struct {
	mu       sync.Mutex
	accounts map[string]*account
	txs      map[string]Status
}

var _ Service = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		accounts: make(map[string]*account),
		txs:      make(map[string]Status),
	}
}

// CreateOrGetAccount opens the token account of owner.
func (m *Memory) CreateOrGetAccount(ctx context.Context, owner, asset string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateAddress(owner); err != nil {
		return "", err
	}

	addr := AccountAddress(owner, asset)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[addr]; !ok {
		m.accounts[addr] = &account{owner: owner, asset: asset}
	}
	return addr, nil
}

// Mint credits an account out of thin air. It exists to fund the treasury
// when a development ledger starts and is not part of Service.
func (m *Memory) Mint(account string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[account]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, account)
	}
	acc.balance += amount
	return nil
}

// BuildTransfer returns an unsigned single-instruction transaction.
func (m *Memory) BuildTransfer(ctx context.Context, source, destination, owner string, amount int64) (*Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, addr := range []string{source, destination} {
		if _, ok := m.accounts[addr]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, addr)
		}
	}
	return &Transaction{
		Nonce: uuid.New().String(),
		Instructions: []Instruction{{
			Source:      source,
			Destination: destination,
			Owner:       owner,
			Amount:      amount,
		}},
	}, nil
}

// Submit verifies and applies a transaction atomically. Resubmitting an
// applied transaction returns its signature without applying it again.
func (m *Memory) Submit(ctx context.Context, raw []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	tx, err := DecodeTransaction(raw)
	if err != nil {
		return "", err
	}
	if err := tx.VerifySignatures(); err != nil {
		return "", err
	}

	sig := tx.Hash()
	m.mu.Lock()
	defer m.mu.Unlock()
	if status, ok := m.txs[sig]; ok && status == Confirmed {
		return sig, nil
	}

	// Validate every instruction against a scratch copy of the balances.
	pending := make(map[string]int64)
	for _, ins := range tx.Instructions {
		if ins.Amount <= 0 {
			return "", ErrInvalidAmount
		}
		src, ok := m.accounts[ins.Source]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownAccount, ins.Source)
		}
		dst, ok := m.accounts[ins.Destination]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownAccount, ins.Destination)
		}
		if src.owner != ins.Owner {
			return "", fmt.Errorf("%w: %s does not own %s", ErrInvalidSignature, ins.Owner, ins.Source)
		}
		if src.asset != dst.asset {
			return "", fmt.Errorf("%w: asset mismatch", ErrUnknownAccount)
		}
		if src.balance+pending[ins.Source] < ins.Amount {
			return "", fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientFunds, ins.Source, src.balance+pending[ins.Source], ins.Amount)
		}
		pending[ins.Source] -= ins.Amount
		pending[ins.Destination] += ins.Amount
	}
	for addr, delta := range pending {
		m.accounts[addr].balance += delta
	}
	m.txs[sig] = Confirmed
	return sig, nil
}

// Confirm reports Confirmed for every applied transaction.
func (m *Memory) Confirm(ctx context.Context, signature string) (Status, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	status, ok := m.txs[signature]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTransaction, signature)
	}
	return status, nil
}

// Balance returns the balance of a token account.
func (m *Memory) Balance(ctx context.Context, account string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[account]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAccount, account)
	}
	return acc.balance, nil
}
