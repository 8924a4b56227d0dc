package split

import (
	"fmt"
	"math"
)

// NetBalances computes each participant's net position: amount paid minus
// their portion-weighted share of every item. Positive means they are owed
// money, negative means they owe.
func NetBalances(ledger *Ledger) map[string]float64 {
	net := make(map[string]float64, len(ledger.Paid))
	for name, paid := range ledger.Paid {
		net[name] = paid
	}
	for _, item := range ledger.Items {
		var totalPortions int
		for _, n := range item.Portions {
			totalPortions += n
		}
		if totalPortions == 0 {
			continue
		}
		perShare := item.Price / float64(totalPortions)
		for name, n := range item.Portions {
			net[name] -= perShare * float64(n)
		}
	}
	return net
}

// Settle computes the sequence of pairwise transfers that zeroes every
// participant's net balance. The greedy pass repeatedly matches the largest
// debtor with the largest creditor, so a ledger of n participants settles in
// at most n-1 transfers. The ledger itself is not modified.
func Settle(ledger *Ledger) ([]Transfer, error) {
	if len(ledger.Order) == 0 {
		return nil, ErrEmptyLedger
	}
	net := NetBalances(ledger)
	for name, v := range net {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("internal: non-finite balance for %q", name)
		}
	}

	var transfers []Transfer
	for {
		transfer, done := settleStep(net, ledger.Order)
		if done {
			return transfers, nil
		}
		transfers = append(transfers, transfer)
	}
}

// settleStep performs one round of the greedy settlement over a working
// balance map, scanning in participant entry order so ties always resolve to
// the earliest entry. It reports done when every balance is equal, which for
// a balanced ledger means all zero.
func settleStep(net map[string]float64, order []string) (Transfer, bool) {
	maxName, minName := order[0], order[0]
	for _, name := range order[1:] {
		if net[name] > net[maxName] {
			maxName = name
		}
		if net[name] < net[minName] {
			minName = name
		}
	}
	maxVal, minVal := net[maxName], net[minName]
	if maxVal == minVal {
		return Transfer{}, true
	}
	// Per-share division can leave float residue: one extreme exactly zero,
	// the other a few ulps off. A step here would move no money and never
	// converge on the equality check above, so stop once no positive
	// creditor can be paired with a negative debtor.
	if maxVal <= 0 || minVal >= 0 {
		return Transfer{}, true
	}

	result := maxVal + minVal
	var amount float64
	if result > 0 {
		// Debtor clears their whole debt; creditor still has result owed.
		amount = math.Abs(minVal)
		net[maxName] = result
		net[minName] = 0
	} else {
		// Creditor is made whole; debtor still owes result.
		amount = math.Abs(maxVal)
		net[maxName] = 0
		net[minName] = result
	}
	return Transfer{From: minName, To: maxName, Amount: amount}, false
}
