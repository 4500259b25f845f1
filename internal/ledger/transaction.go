package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
)

// Instruction moves Amount from Source to Destination. Owner is the wallet
// address that controls Source and must sign the transaction.
type Instruction struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Owner       string `json:"owner"`
	Amount      int64  `json:"amount"`
}

// Signature is one signer's signature over Transaction.Message.
type Signature struct {
	PublicKey string `json:"publicKey"` // compressed, hex
	Value     []byte `json:"value"`
}

// Transaction is a set of instructions paid for by FeePayer.
type Transaction struct {
	Nonce        string        `json:"nonce"`
	FeePayer     string        `json:"feePayer"`
	Instructions []Instruction `json:"instructions"`
	Signatures   []Signature   `json:"signatures,omitempty"`
}

// Message returns the bytes covered by signatures.
func (t *Transaction) Message() []byte {
	msg, _ := json.Marshal(struct {
		Nonce        string        `json:"nonce"`
		FeePayer     string        `json:"feePayer"`
		Instructions []Instruction `json:"instructions"`
	}{t.Nonce, t.FeePayer, t.Instructions})
	return msg
}

// Hash identifies the transaction. Submit returns it as the signature.
func (t *Transaction) Hash() string {
	sum := sha256.Sum256(t.Message())
	return hex.EncodeToString(sum[:])
}

// Sign adds or replaces the signature of priv.
func (t *Transaction) Sign(priv *keys.PrivateKey) {
	pub := priv.PublicKey().StringCompressed()
	sig := Signature{PublicKey: pub, Value: priv.Sign(t.Message())}
	for i := range t.Signatures {
		if t.Signatures[i].PublicKey == pub {
			t.Signatures[i] = sig
			return
		}
	}
	t.Signatures = append(t.Signatures, sig)
}

// RequiredSigners returns the fee payer followed by every instruction owner.
func (t *Transaction) RequiredSigners() []string {
	seen := map[string]bool{}
	var signers []string
	for _, addr := range append([]string{t.FeePayer}, t.owners()...) {
		if addr != "" && !seen[addr] {
			seen[addr] = true
			signers = append(signers, addr)
		}
	}
	return signers
}

func (t *Transaction) owners() []string {
	owners := make([]string, len(t.Instructions))
	for i, ins := range t.Instructions {
		owners[i] = ins.Owner
	}
	return owners
}

// SignedBy verifies every attached signature and returns the addresses that
// signed. A malformed or non-verifying signature is an error.
func (t *Transaction) SignedBy() (map[string]bool, error) {
	sum := sha256.Sum256(t.Message())
	signed := make(map[string]bool, len(t.Signatures))
	for _, s := range t.Signatures {
		pub, err := keys.NewPublicKeyFromString(s.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("%w: bad public key: %v", ErrInvalidSignature, err)
		}
		if !pub.Verify(s.Value, sum[:]) {
			return nil, fmt.Errorf("%w: signature by %s does not verify", ErrInvalidSignature, pub.Address())
		}
		signed[pub.Address()] = true
	}
	return signed, nil
}

// VerifySignatures checks that every required signer signed.
func (t *Transaction) VerifySignatures() error {
	signed, err := t.SignedBy()
	if err != nil {
		return err
	}
	if t.FeePayer == "" {
		return fmt.Errorf("%w: missing fee payer", ErrInvalidSignature)
	}
	for _, addr := range t.RequiredSigners() {
		if !signed[addr] {
			return fmt.Errorf("%w: missing signature of %s", ErrInvalidSignature, addr)
		}
	}
	return nil
}

// Encode serializes the transaction for submission.
func (t *Transaction) Encode() ([]byte, error) {
	return json.Marshal(t)
}

// DecodeTransaction parses a serialized transaction.
func DecodeTransaction(raw []byte) (*Transaction, error) {
	var t Transaction
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	if len(t.Instructions) == 0 {
		return nil, fmt.Errorf("failed to decode transaction: no instructions")
	}
	return &t, nil
}
