package split

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DoneSentinel ends the participant-collection phase, case-insensitively.
const DoneSentinel = "done"

type Phase int

const (
	CollectingParticipants Phase = iota
	CollectingItems
	Settled
)

func (p Phase) String() string {
	switch p {
	case CollectingParticipants:
		return "collecting_participants"
	case CollectingItems:
		return "collecting_items"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Reply is the outcome of one conversation turn: the text to send back, and
// on the final turn the computed transfers.
type Reply struct {
	Text      string
	Transfers []Transfer
	Settled   bool
}

// Session is the conversation state machine for one bill split. Turns within
// a session are strictly sequential; Session itself does no locking.
type Session struct {
	Phase  Phase
	Ledger *Ledger
}

func NewSession() *Session {
	return &Session{Phase: CollectingParticipants, Ledger: NewLedger()}
}

// Prompt is the opening message of a session.
func (s *Session) Prompt() string {
	return "Input name 1 and amount paid (type 'done' if no more people):"
}

// HandleInput advances the state machine by one turn. A parse error rejects
// the turn: the ledger and phase are left untouched and the caller should
// re-prompt for corrected input.
func (s *Session) HandleInput(line string) (Reply, error) {
	line = strings.TrimSpace(line)
	switch s.Phase {
	case CollectingParticipants:
		return s.handleParticipantLine(line)
	case CollectingItems:
		return s.handleItemLine(line)
	default:
		return Reply{Text: "This bill is already settled. Use /split to start a new one.", Settled: true}, nil
	}
}

func (s *Session) handleParticipantLine(line string) (Reply, error) {
	if line == "" {
		return Reply{Text: "Input a name and amount paid (type 'done' if no more people):"}, nil
	}
	if strings.EqualFold(line, DoneSentinel) {
		s.Phase = CollectingItems
		text := fmt.Sprintf(
			"Thanks, these are the amounts paid by everyone:\n%s\n\n"+
				"Next, key in items as item_name (one word), price, then everybody's portions. "+
				"For example, if mark and charlie each ate one portion of nasilemak, key in \"nasilemak 14.50 mark charlie\". "+
				"If everybody shared it, \"nasilemak 14.50\" defaults to everybody.",
			s.formatPaid())
		return Reply{Text: text}, nil
	}
	name, amount := ParseParticipantLine(line)
	s.Ledger.AddParticipant(name, amount)
	text := fmt.Sprintf("Got it. Input name %d and amount paid (type 'done' if no more people):",
		len(s.Ledger.Order)+1)
	return Reply{Text: text}, nil
}

func (s *Session) handleItemLine(line string) (Reply, error) {
	item, err := ParseItemLine(line, s.Ledger)
	if err != nil {
		return Reply{}, err
	}
	prev, hadPrev := s.Ledger.Items[item.Name]
	s.Ledger.PutItem(item)

	// Exact equality, as in the reference behavior. Sums that only almost
	// cancel keep the session collecting; the running remainder below is the
	// user's signal that something is off.
	if s.Ledger.Remaining() == 0 {
		transfers, err := Settle(s.Ledger)
		if err != nil {
			// A rejected turn leaves the ledger untouched.
			if hadPrev {
				s.Ledger.Items[item.Name] = prev
			} else {
				delete(s.Ledger.Items, item.Name)
			}
			return Reply{}, err
		}
		s.Phase = Settled
		return Reply{Text: FormatTransfers(transfers), Transfers: transfers, Settled: true}, nil
	}
	text := fmt.Sprintf("Ok. %s\nKey in the next item. There is $%s remaining.",
		formatItem(item), formatAmount(s.Ledger.Remaining()))
	return Reply{Text: text}, nil
}

func (s *Session) formatPaid() string {
	lines := make([]string, 0, len(s.Ledger.Order))
	for _, name := range s.Ledger.Order {
		lines = append(lines, fmt.Sprintf("%s paid $%s", name, formatAmount(s.Ledger.Paid[name])))
	}
	return strings.Join(lines, "\n")
}

func formatItem(item ItemShare) string {
	names := make([]string, 0, len(item.Portions))
	for name := range item.Portions {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("Item %s costs $%s, and was shared by %s.",
		item.Name, formatAmount(item.Price), strings.Join(names, ", "))
}

// FormatTransfers renders the settlement as one payment instruction per line.
func FormatTransfers(transfers []Transfer) string {
	if len(transfers) == 0 {
		return "All settled, nobody owes anything!"
	}
	lines := make([]string, 0, len(transfers))
	for _, t := range transfers {
		lines = append(lines, fmt.Sprintf("%s needs to pay %s: $%s", t.From, t.To, formatAmount(t.Amount)))
	}
	return strings.Join(lines, "\n")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
