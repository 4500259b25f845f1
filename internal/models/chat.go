package models

// Chat statuses.
const (
	ChatActive    = "active"
	ChatCompleted = "completed"
)

// Message kinds.
const (
	MessageText   = "text"
	MessageSystem = "system"
)

// Chat is a conversation thread, optionally bound to a settlement.
type Chat struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Participants are the member user IDs.
	Participants []string `json:"participants"`

	// Status moves from ChatActive to ChatCompleted and never back.
	Status string `json:"status"`

	LastMessage   string `json:"lastMessage,omitempty"`
	LastMessageAt int64  `json:"lastMessageAt,omitempty"`
	LastSenderID  string `json:"lastSenderId,omitempty"`

	// ReadStatus maps a member ID to the time they last read the chat.
	// A missing key means the member never opened it.
	ReadStatus map[string]int64 `json:"readStatus"`

	SettlementID string `json:"settlementId,omitempty"`
	CreatedBy    string `json:"createdBy"`
	CreatedAt    int64  `json:"createdAt"`
}

// HasMember reports whether uid participates in the chat.
func (c *Chat) HasMember(uid string) bool {
	for _, p := range c.Participants {
		if p == uid {
			return true
		}
	}
	return false
}

// Message is one entry of a chat.
type Message struct {
	ID         string `json:"id"`
	ChatID     string `json:"chatId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	Kind       string `json:"kind"`
	CreatedAt  int64  `json:"createdAt"`
}
