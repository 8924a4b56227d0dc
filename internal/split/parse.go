package split

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMalformedItem      = errors.New("malformed item line")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrEmptyLedger        = errors.New("no participants in ledger")
)

// isNumber reports whether s parses as a finite float. NaN and infinities are
// rejected here so a non-finite value can never enter a ledger.
func isNumber(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ParseParticipantLine splits a participant line into a name and the amount
// paid. A single token is a name with amount 0. Otherwise, if the last token
// is a number it is the amount and the rest of the line is the name; if it is
// not, the whole line is the name and the amount is 0. Any text is accepted
// as a name, so this never fails.
func ParseParticipantLine(line string) (string, float64) {
	fields := strings.Fields(line)
	if len(fields) <= 1 {
		return strings.TrimSpace(line), 0
	}
	last := fields[len(fields)-1]
	if isNumber(last) {
		amount, _ := strconv.ParseFloat(last, 64)
		return strings.Join(fields[:len(fields)-1], " "), amount
	}
	return strings.Join(fields, " "), 0
}

// ParseItemLine parses an item line against the ledger's current participant
// set. Format: item name (one word), price, then optionally the participants
// who shared it. No participant tokens means everybody currently in the
// ledger shares one portion each; listing a name more than once gives that
// person one portion per occurrence.
func ParseItemLine(line string, ledger *Ledger) (ItemShare, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ItemShare{}, fmt.Errorf("%w: need an item name and a price", ErrMalformedItem)
	}
	name := fields[0]
	if !isNumber(fields[1]) {
		return ItemShare{}, fmt.Errorf("%w: price %q is not a number", ErrMalformedItem, fields[1])
	}
	price, _ := strconv.ParseFloat(fields[1], 64)
	if price < 0 {
		return ItemShare{}, fmt.Errorf("%w: price cannot be negative", ErrMalformedItem)
	}

	portions := make(map[string]int)
	if len(fields) == 2 {
		// Everybody known at this point shares the item equally. The
		// participant set is frozen here, not at settlement time.
		for _, p := range ledger.Order {
			portions[p] = 1
		}
	} else {
		for _, tok := range fields[2:] {
			if _, ok := ledger.Paid[tok]; !ok {
				return ItemShare{}, fmt.Errorf("%w: %q", ErrUnknownParticipant, tok)
			}
			portions[tok]++
		}
	}
	return ItemShare{Name: name, Price: price, Portions: portions}, nil
}
