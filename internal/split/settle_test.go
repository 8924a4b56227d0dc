package split

import (
	"errors"
	"testing"
)

func dinnerLedger() *Ledger {
	ledger := NewLedger()
	ledger.AddParticipant("alice", 30)
	ledger.AddParticipant("bob", 0)
	ledger.AddParticipant("carol", 0)
	ledger.PutItem(ItemShare{
		Name:     "dinner",
		Price:    30,
		Portions: map[string]int{"alice": 1, "bob": 1, "carol": 1},
	})
	return ledger
}

func TestNetBalances(t *testing.T) {
	net := NetBalances(dinnerLedger())

	want := map[string]float64{"alice": 20, "bob": -10, "carol": -10}
	for name, balance := range want {
		if net[name] != balance {
			t.Errorf("net[%s] = %v, want %v", name, net[name], balance)
		}
	}
}

func TestNetBalancesWeightedPortions(t *testing.T) {
	ledger := NewLedger()
	ledger.AddParticipant("alice", 22)
	ledger.AddParticipant("bob", 10)
	ledger.PutItem(ItemShare{
		Name:     "pizza",
		Price:    20,
		Portions: map[string]int{"alice": 1, "bob": 1},
	})
	ledger.PutItem(ItemShare{
		Name:     "beer",
		Price:    12,
		Portions: map[string]int{"alice": 2, "bob": 1},
	})

	net := NetBalances(ledger)
	if net["alice"] != 4 {
		t.Errorf("net[alice] = %v, want 4", net["alice"])
	}
	if net["bob"] != -4 {
		t.Errorf("net[bob] = %v, want -4", net["bob"])
	}
}

func TestSettleDinnerScenario(t *testing.T) {
	transfers, err := Settle(dinnerLedger())
	if err != nil {
		t.Fatalf("Settle() unexpected error: %v", err)
	}

	if len(transfers) != 2 {
		t.Fatalf("got %d transfers, want 2: %v", len(transfers), transfers)
	}
	var repaid float64
	for _, tr := range transfers {
		if tr.To != "alice" {
			t.Errorf("transfer %v should pay alice", tr)
		}
		if tr.Amount < 0 {
			t.Errorf("transfer amount %v is negative", tr.Amount)
		}
		repaid += tr.Amount
	}
	if repaid != 20 {
		t.Errorf("total repaid to alice = %v, want 20", repaid)
	}
}

func TestSettleRoundTripZeroesBalances(t *testing.T) {
	ledgers := []*Ledger{dinnerLedger()}

	weighted := NewLedger()
	weighted.AddParticipant("alice", 22)
	weighted.AddParticipant("bob", 10)
	weighted.PutItem(ItemShare{Name: "pizza", Price: 20, Portions: map[string]int{"alice": 1, "bob": 1}})
	weighted.PutItem(ItemShare{Name: "beer", Price: 12, Portions: map[string]int{"alice": 2, "bob": 1}})
	ledgers = append(ledgers, weighted)

	four := NewLedger()
	four.AddParticipant("a", 40)
	four.AddParticipant("b", 0)
	four.AddParticipant("c", 0)
	four.AddParticipant("d", 0)
	four.PutItem(ItemShare{Name: "meal", Price: 40, Portions: map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}})
	ledgers = append(ledgers, four)

	for _, ledger := range ledgers {
		transfers, err := Settle(ledger)
		if err != nil {
			t.Fatalf("Settle() unexpected error: %v", err)
		}
		if len(transfers) > len(ledger.Order)-1 {
			t.Errorf("got %d transfers for %d participants, want at most %d",
				len(transfers), len(ledger.Order), len(ledger.Order)-1)
		}

		// Applying every transfer as "payer pays payee" must restore the
		// net-balance vector to exactly zero.
		net := NetBalances(ledger)
		for _, tr := range transfers {
			net[tr.From] += tr.Amount
			net[tr.To] -= tr.Amount
		}
		for name, balance := range net {
			if balance != 0 {
				t.Errorf("balance[%s] = %v after applying transfers, want 0", name, balance)
			}
		}
	}
}

func TestSettleAlreadyBalanced(t *testing.T) {
	ledger := NewLedger()
	ledger.AddParticipant("alice", 10)
	ledger.AddParticipant("bob", 10)
	ledger.PutItem(ItemShare{Name: "meal", Price: 20, Portions: map[string]int{"alice": 1, "bob": 1}})

	transfers, err := Settle(ledger)
	if err != nil {
		t.Fatalf("Settle() unexpected error: %v", err)
	}
	if len(transfers) != 0 {
		t.Errorf("got %d transfers, want none: %v", len(transfers), transfers)
	}
}

func TestSettleEmptyLedger(t *testing.T) {
	_, err := Settle(NewLedger())
	if !errors.Is(err, ErrEmptyLedger) {
		t.Fatalf("expected ErrEmptyLedger, got %v", err)
	}
}

func TestSettleTerminatesOnInexactShares(t *testing.T) {
	// Shares like $10 split three ways don't divide exactly in floats, so
	// the working balances only almost cancel. Settle must still finish
	// within n-1 transfers instead of grinding on the residue.
	uneven := NewLedger()
	uneven.AddParticipant("alice", 10)
	uneven.AddParticipant("bob", 0)
	uneven.AddParticipant("carol", 0)
	uneven.PutItem(ItemShare{
		Name:     "x",
		Price:    10,
		Portions: map[string]int{"bob": 1, "carol": 2},
	})

	thirds := NewLedger()
	thirds.AddParticipant("alice", 10)
	thirds.AddParticipant("bob", 0)
	thirds.AddParticipant("carol", 0)
	thirds.PutItem(ItemShare{
		Name:     "dinner",
		Price:    10,
		Portions: map[string]int{"alice": 1, "bob": 1, "carol": 1},
	})

	for _, ledger := range []*Ledger{uneven, thirds} {
		transfers, err := Settle(ledger)
		if err != nil {
			t.Fatalf("Settle() unexpected error: %v", err)
		}
		if len(transfers) > len(ledger.Order)-1 {
			t.Errorf("got %d transfers for %d participants, want at most %d: %v",
				len(transfers), len(ledger.Order), len(ledger.Order)-1, transfers)
		}
		net := NetBalances(ledger)
		for _, tr := range transfers {
			if tr.Amount < 0 {
				t.Errorf("transfer amount %v is negative", tr.Amount)
			}
			net[tr.From] += tr.Amount
			net[tr.To] -= tr.Amount
		}
		for name, balance := range net {
			if balance > 1e-9 || balance < -1e-9 {
				t.Errorf("balance[%s] = %v after applying transfers, want ~0", name, balance)
			}
		}
	}
}

func TestSettleTieBreakUsesEntryOrder(t *testing.T) {
	// bob and carol owe the same amount; the earlier entry settles first.
	transfers, err := Settle(dinnerLedger())
	if err != nil {
		t.Fatalf("Settle() unexpected error: %v", err)
	}
	if transfers[0].From != "bob" || transfers[1].From != "carol" {
		t.Errorf("transfers out of entry order: %v", transfers)
	}
}
