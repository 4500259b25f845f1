package calculator

import "sort"

// Obligation is an open debt: From owes To the Amount.
// Pending settlement entries and pending requests both reduce to obligations.
type Obligation struct {
	From   string
	To     string
	Amount int64
}

// MemberBalance represents the open position of one user.
type MemberBalance struct {
	UserID     string
	NetBalance int64 // Positive = owed money, Negative = owes money
	TotalOwed  int64 // Total amount this user still has to pay
	TotalDue   int64 // Total amount others still have to pay this user
}

// DebtEdge represents a suggested transfer from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount int64
}

// Outstanding aggregates open obligations into per-user balances and a
// simplified list of transfers that would clear them.
//
// Algorithm:
//   - For each obligation: From's TotalOwed and To's TotalDue grow by Amount
//   - net_balance = total_due - total_owed
//   - Debt edges: greedy matching of the largest debtors with the largest creditors
func Outstanding(obligations []Obligation) ([]MemberBalance, []DebtEdge) {
	balances := make(map[string]*MemberBalance)
	get := func(id string) *MemberBalance {
		b, ok := balances[id]
		if !ok {
			b = &MemberBalance{UserID: id}
			balances[id] = b
		}
		return b
	}

	for _, o := range obligations {
		if o.Amount <= 0 || o.From == o.To {
			continue
		}
		get(o.From).TotalOwed += o.Amount
		get(o.To).TotalDue += o.Amount
	}

	memberBalances := make([]MemberBalance, 0, len(balances))
	var creditors, debtors []MemberBalance
	for _, b := range balances {
		b.NetBalance = b.TotalDue - b.TotalOwed
		memberBalances = append(memberBalances, *b)
		if b.NetBalance > 0 {
			creditors = append(creditors, *b)
		} else if b.NetBalance < 0 {
			debtors = append(debtors, *b)
		}
	}

	// Deterministic output: largest first, ties by ID.
	sort.Slice(memberBalances, func(i, j int) bool { return memberBalances[i].UserID < memberBalances[j].UserID })
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].NetBalance != creditors[j].NetBalance {
			return creditors[i].NetBalance > creditors[j].NetBalance
		}
		return creditors[i].UserID < creditors[j].UserID
	})
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].NetBalance != debtors[j].NetBalance {
			return debtors[i].NetBalance < debtors[j].NetBalance
		}
		return debtors[i].UserID < debtors[j].UserID
	})

	var edges []DebtEdge
	i, j := 0, 0
	owes := int64(0)
	if len(debtors) > 0 {
		owes = -debtors[0].NetBalance
	}
	due := int64(0)
	if len(creditors) > 0 {
		due = creditors[0].NetBalance
	}

	for i < len(debtors) && j < len(creditors) {
		amount := owes
		if due < amount {
			amount = due
		}
		if amount > 0 {
			edges = append(edges, DebtEdge{From: debtors[i].UserID, To: creditors[j].UserID, Amount: amount})
		}
		owes -= amount
		due -= amount

		if owes == 0 {
			i++
			if i < len(debtors) {
				owes = -debtors[i].NetBalance
			}
		}
		if due == 0 {
			j++
			if j < len(creditors) {
				due = creditors[j].NetBalance
			}
		}
	}

	return memberBalances, edges
}
