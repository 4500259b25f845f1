package models

// Request statuses. Archived is terminal.
const (
	RequestPending   = "pending"
	RequestCompleted = "completed"
	RequestArchived  = "archived"
)

// Request is a single-party payment ask.
// From is the requester (payee), To is the person asked to pay.
type Request struct {
	ID string `json:"id"`

	FromUID     string `json:"fromUid"`
	FromName    string `json:"fromName"`
	FromAddress string `json:"fromAddress"`

	ToUID     string `json:"toUid"`
	ToName    string `json:"toName"`
	ToAddress string `json:"toAddress"`

	Amount int64  `json:"amount"`
	Status string `json:"status"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}
