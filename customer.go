package khata

import "fmt"

// EntryKind is a typed string identifying a ledger entry's effect.
type EntryKind string

// Entry kinds recorded against a customer.
const (
	EntryOpening EntryKind = "opening"
	EntryCredit  EntryKind = "credit"
	EntryPayment EntryKind = "payment"
)

// ParseEntryKind parses a string into an EntryKind.
func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(s) {
	case EntryOpening, EntryCredit, EntryPayment:
		return EntryKind(s), nil
	default:
		return "", fmt.Errorf("unknown entry kind: %q", s)
	}
}

// Entry is an immutable record of one balance-affecting event for a customer.
type Entry struct {
	Kind   EntryKind `json:"type"`
	Amount Money     `json:"amount"`
	Date   Date      `json:"date"`
	Note   string    `json:"note,omitempty"`
}

// Signed returns the entry's effect on the customer balance: opening and
// credit add, payment subtracts.
func (e Entry) Signed() Money {
	if e.Kind == EntryPayment {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Customer holds a customer's identity, running balance and ledger entries.
//
// Balance and entries are updated in lockstep by the Book's mutation
// operations. The balance is the stored source of truth; CheckBalances
// recomputes it from entries to surface any drift.
type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Mobile  string  `json:"mobile,omitempty"`
	Balance Money   `json:"balance"`
	Entries []Entry `json:"entries"`
}

// EntriesSum recomputes the balance from the signed entry effects.
func (c *Customer) EntriesSum() Money {
	var sum Money
	for _, e := range c.Entries {
		sum = sum.Add(e.Signed())
	}
	return sum
}
