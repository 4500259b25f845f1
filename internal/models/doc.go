// Package models defines the documents stored by the POINT wallet backend.
//
// # Documents
//
//   - User: a registered student with a custodial wallet address
//   - Settlement: a bill split among friends, one Participant entry per friend
//   - Chat / Message: the conversation bound to a settlement (or a plain thread)
//   - Request: a single-party payment ask, independent of settlements
//   - Transfer: the log of ledger transfers issued by the backend
//   - Purchase / TreasuryBalance: mocked fiat top-ups and treasury totals
//
// # Conventions
//
//  1. Amounts are int64 minor units of POINT.
//  2. Timestamps are Unix milliseconds; zero means "absent".
//  3. Relationships use ID strings, never pointers.
//  4. Key material never appears in these types; see package keystore.
package models

import "time"

// Now returns the current time in Unix milliseconds.
func Now() int64 {
	return time.Now().UnixMilli()
}
