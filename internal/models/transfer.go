package models

// Transfer statuses.
const (
	TransferSubmitted = "submitted"
	TransferConfirmed = "confirmed"
	TransferFailed    = "failed"
)

// Transfer records one ledger transfer issued by the backend.
type Transfer struct {
	ID string `json:"id"`

	// Purpose is the idempotency key of the business operation,
	// e.g. "settlement:<id>:<uid>" or "request:<id>".
	Purpose string `json:"purpose"`

	Signature   string `json:"signature,omitempty"`
	FromAddress string `json:"fromAddress"`
	ToAddress   string `json:"toAddress"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// Fiat currencies accepted by the mocked purchase flow.
const (
	CurrencyKRW = "KRW"
	CurrencyUSD = "USD"
)

// Purchase is a mocked fiat top-up of POINT.
type Purchase struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Points     int64  `json:"points"`
	Currency   string `json:"currency"`
	FiatAmount int64  `json:"fiatAmount"` // minor units of Currency
	Signature  string `json:"signature"`
	CreatedAt  int64  `json:"createdAt"`
}

// TreasuryBalance is the fiat collected by the treasury in one currency.
type TreasuryBalance struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}
