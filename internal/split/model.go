package split

// ItemShare is one purchased item: its price and the portion-weighted set of
// participants who consumed it. Repeating a participant when the item is
// entered gives them extra portions.
type ItemShare struct {
	Name     string
	Price    float64
	Portions map[string]int
}

// Ledger is the in-progress record of one bill: who paid what, and which
// items were shared by whom. Order keeps participant names in the order they
// were entered; the settlement pass depends on it for stable tie-breaking.
type Ledger struct {
	Paid  map[string]float64
	Order []string
	Items map[string]ItemShare
}

func NewLedger() *Ledger {
	return &Ledger{
		Paid:  make(map[string]float64),
		Items: make(map[string]ItemShare),
	}
}

// AddParticipant registers a participant and the amount they paid. Entering
// the same name twice overwrites the amount but keeps the original position.
func (l *Ledger) AddParticipant(name string, amount float64) {
	if _, ok := l.Paid[name]; !ok {
		l.Order = append(l.Order, name)
	}
	l.Paid[name] = amount
}

// PutItem inserts an item, replacing any prior entry with the same name.
func (l *Ledger) PutItem(item ItemShare) {
	l.Items[item.Name] = item
}

func (l *Ledger) TotalPaid() float64 {
	var sum float64
	for _, amt := range l.Paid {
		sum += amt
	}
	return sum
}

func (l *Ledger) TotalItems() float64 {
	var sum float64
	for _, item := range l.Items {
		sum += item.Price
	}
	return sum
}

// Remaining is the declared payment total minus the item total so far. Item
// collection ends when this reaches exactly zero.
func (l *Ledger) Remaining() float64 {
	return l.TotalPaid() - l.TotalItems()
}

// Transfer is one settlement payment: From pays To the given amount.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}
