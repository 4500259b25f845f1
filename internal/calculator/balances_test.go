package calculator

import (
	"testing"
)

func TestOutstanding(t *testing.T) {
	t.Run("split bill debts point at the creator", func(t *testing.T) {
		balances, edges := Outstanding([]Obligation{
			{From: "A", To: "C", Amount: 1000},
			{From: "B", To: "C", Amount: 1000},
		})

		byID := make(map[string]MemberBalance)
		for _, b := range balances {
			byID[b.UserID] = b
		}
		if byID["C"].NetBalance != 2000 {
			t.Errorf("C net = %d, want 2000", byID["C"].NetBalance)
		}
		if byID["A"].NetBalance != -1000 || byID["B"].NetBalance != -1000 {
			t.Errorf("A/B net = %d/%d, want -1000/-1000", byID["A"].NetBalance, byID["B"].NetBalance)
		}
		if len(edges) != 2 {
			t.Fatalf("got %d edges, want 2", len(edges))
		}
		for _, e := range edges {
			if e.To != "C" || e.Amount != 1000 {
				t.Errorf("unexpected edge %+v", e)
			}
		}
	})

	t.Run("chained debts are simplified", func(t *testing.T) {
		// A owes B 500, B owes C 500 -> A pays C directly.
		_, edges := Outstanding([]Obligation{
			{From: "A", To: "B", Amount: 500},
			{From: "B", To: "C", Amount: 500},
		})
		if len(edges) != 1 {
			t.Fatalf("got %d edges, want 1: %+v", len(edges), edges)
		}
		if edges[0] != (DebtEdge{From: "A", To: "C", Amount: 500}) {
			t.Errorf("edge = %+v, want A->C 500", edges[0])
		}
	})

	t.Run("self and empty obligations are ignored", func(t *testing.T) {
		balances, edges := Outstanding([]Obligation{
			{From: "A", To: "A", Amount: 100},
			{From: "A", To: "B", Amount: 0},
		})
		if len(balances) != 0 || len(edges) != 0 {
			t.Errorf("expected nothing, got %v %v", balances, edges)
		}
	})
}
