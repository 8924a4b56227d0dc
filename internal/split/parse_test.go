package split

import (
	"errors"
	"strings"
	"testing"
)

func TestParseParticipantLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantName   string
		wantAmount float64
	}{
		{
			name:       "name and amount",
			line:       "alice 30",
			wantName:   "alice",
			wantAmount: 30,
		},
		{
			name:       "name only",
			line:       "alice",
			wantName:   "alice",
			wantAmount: 0,
		},
		{
			name:       "multi-word name with amount",
			line:       "mary jane 12.5",
			wantName:   "mary jane",
			wantAmount: 12.5,
		},
		{
			name:       "multi-word name without amount",
			line:       "mary jane",
			wantName:   "mary jane",
			wantAmount: 0,
		},
		{
			name:       "trailing token not a number",
			line:       "alice thirty",
			wantName:   "alice thirty",
			wantAmount: 0,
		},
		{
			name:       "surrounding whitespace",
			line:       "  bob  ",
			wantName:   "bob",
			wantAmount: 0,
		},
		{
			name:       "non-finite amount treated as name",
			line:       "alice NaN",
			wantName:   "alice NaN",
			wantAmount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotAmount := ParseParticipantLine(tt.line)
			if gotName != tt.wantName {
				t.Errorf("ParseParticipantLine() name = %q, want %q", gotName, tt.wantName)
			}
			if gotAmount != tt.wantAmount {
				t.Errorf("ParseParticipantLine() amount = %v, want %v", gotAmount, tt.wantAmount)
			}
		})
	}
}

func TestParseItemLine(t *testing.T) {
	ledger := NewLedger()
	ledger.AddParticipant("alice", 30)
	ledger.AddParticipant("bob", 0)

	tests := []struct {
		name         string
		line         string
		wantPortions map[string]int
		wantPrice    float64
		wantErr      error
	}{
		{
			name:         "defaults to everybody",
			line:         "lunch 10",
			wantPortions: map[string]int{"alice": 1, "bob": 1},
			wantPrice:    10,
		},
		{
			name:         "repeated name adds portions",
			line:         "lunch 10 alice alice bob",
			wantPortions: map[string]int{"alice": 2, "bob": 1},
			wantPrice:    10,
		},
		{
			name:    "non-numeric price",
			line:    "soup abc",
			wantErr: ErrMalformedItem,
		},
		{
			name:    "missing price",
			line:    "soup",
			wantErr: ErrMalformedItem,
		},
		{
			name:    "negative price",
			line:    "soup -5",
			wantErr: ErrMalformedItem,
		},
		{
			name:    "unknown participant",
			line:    "lunch 10 carol",
			wantErr: ErrUnknownParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := ParseItemLine(tt.line, ledger)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseItemLine() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseItemLine() unexpected error: %v", err)
			}
			if item.Price != tt.wantPrice {
				t.Errorf("ParseItemLine() price = %v, want %v", item.Price, tt.wantPrice)
			}
			if len(item.Portions) != len(tt.wantPortions) {
				t.Fatalf("ParseItemLine() portions = %v, want %v", item.Portions, tt.wantPortions)
			}
			for name, n := range tt.wantPortions {
				if item.Portions[name] != n {
					t.Errorf("ParseItemLine() portions[%s] = %d, want %d", name, item.Portions[name], n)
				}
			}
		})
	}
}

func TestParseItemLineNamesOffendingToken(t *testing.T) {
	ledger := NewLedger()
	ledger.AddParticipant("alice", 0)

	_, err := ParseItemLine("lunch 10 carol", ledger)
	if !errors.Is(err, ErrUnknownParticipant) {
		t.Fatalf("expected ErrUnknownParticipant, got %v", err)
	}
	if !strings.Contains(err.Error(), "carol") {
		t.Errorf("error should name the offending token, got %q", err.Error())
	}
}

func TestParseItemLineDefaultSetFrozenAtParseTime(t *testing.T) {
	ledger := NewLedger()
	ledger.AddParticipant("alice", 10)

	item, err := ParseItemLine("lunch 10", ledger)
	if err != nil {
		t.Fatalf("ParseItemLine() unexpected error: %v", err)
	}

	// A participant registered after the item was parsed must not be pulled
	// into the item's share.
	ledger.AddParticipant("bob", 0)
	if len(item.Portions) != 1 || item.Portions["alice"] != 1 {
		t.Errorf("portions = %v, want alice only", item.Portions)
	}
}
