package models

// Participant statuses.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// How a participant entry reached StatusPaid.
const (
	PaidViaOnChain = "onchain" // confirmed ledger transfer
	PaidViaManual  = "manual"  // creator override for a single entry
	PaidViaBulk    = "bulk"    // creator marked every entry paid
	PaidViaWaived  = "waived"  // zero share, nothing to transfer
)

// Settlement represents one bill split among friends.
// The creator fronted the money; their own share is implicit and never stored
// as a participant.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string `json:"id"`

	// CreatorID is the user who paid the bill and collects the shares.
	CreatorID      string `json:"creatorId"`
	CreatorName    string `json:"creatorName"`
	CreatorAddress string `json:"creatorAddress"`

	// TotalAmount is the full bill, including the creator's implicit share.
	TotalAmount int64 `json:"totalAmount"`

	// ChatID is the conversation bound to this settlement.
	ChatID string `json:"chatId,omitempty"`

	// Participants are the friends who owe a share, in the order they were added.
	Participants []Participant `json:"participants"`

	CreatedAt int64 `json:"createdAt"`
}

// Participant is one person's obligation within a settlement.
type Participant struct {
	UID     string `json:"uid"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
	Role    string `json:"role,omitempty"`

	// Audit trail, set when Status becomes StatusPaid.
	PaidVia   string `json:"paidVia,omitempty"`
	Signature string `json:"signature,omitempty"`
	PaidAt    int64  `json:"paidAt,omitempty"`
}

// Participant returns the entry for uid.
func (s *Settlement) Participant(uid string) (*Participant, bool) {
	for i := range s.Participants {
		if s.Participants[i].UID == uid {
			return &s.Participants[i], true
		}
	}
	return nil, false
}

// AllPaid reports whether every participant has paid.
// A settlement without participants is never considered paid.
func (s *Settlement) AllPaid() bool {
	if len(s.Participants) == 0 {
		return false
	}
	for _, p := range s.Participants {
		if p.Status != StatusPaid {
			return false
		}
	}
	return true
}

// Members returns the creator followed by every participant ID.
func (s *Settlement) Members() []string {
	ids := make([]string, 0, len(s.Participants)+1)
	ids = append(ids, s.CreatorID)
	for _, p := range s.Participants {
		ids = append(ids, p.UID)
	}
	return ids
}
