package calculator

import (
	"fmt"
)

// Share is one friend's part of a split bill.
type Share struct {
	UserID string
	Amount int64
}

// EqualShares divides total equally among the creator and the given friends.
// Every person gets floor(total / (len(friends)+1)); the remainder stays with
// the creator, whose share is implicit and not returned.
func EqualShares(total int64, friends []string) ([]Share, error) {
	if total <= 0 {
		return nil, fmt.Errorf("total must be positive")
	}
	if len(friends) == 0 {
		return nil, fmt.Errorf("must have at least one friend")
	}

	perPerson := total / int64(len(friends)+1)
	shares := make([]Share, len(friends))
	for i, f := range friends {
		shares[i] = Share{UserID: f, Amount: perPerson}
	}
	return shares, nil
}

// CreatorShare returns the creator's implicit part: total minus every listed share.
// It is for display only and may be negative when shares exceed the total.
func CreatorShare(total int64, shares []Share) int64 {
	sum := int64(0)
	for _, s := range shares {
		sum += s.Amount
	}
	return total - sum
}

// ValidateShares checks the listed shares of a split bill.
// Shares must be non-negative and name each user at most once.
func ValidateShares(total int64, shares []Share) error {
	if total <= 0 {
		return fmt.Errorf("total must be positive")
	}
	if len(shares) == 0 {
		return fmt.Errorf("must have at least one participant")
	}
	seen := make(map[string]bool, len(shares))
	for _, s := range shares {
		if s.UserID == "" {
			return fmt.Errorf("participant id is required")
		}
		if s.Amount < 0 {
			return fmt.Errorf("share for %s cannot be negative", s.UserID)
		}
		if seen[s.UserID] {
			return fmt.Errorf("participant %s listed twice", s.UserID)
		}
		seen[s.UserID] = true
	}
	return nil
}
