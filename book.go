package khata

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// DefaultTemplate is the reminder message used until the owner customizes it.
const DefaultTemplate = "Dear {name}, your outstanding is ₹{balance}. Please pay when convenient."

// recentCap bounds the stored activity log. Renderers truncate further for
// display.
const recentCap = 100

// Direction selects the sign of a manual pocket adjustment.
type Direction int

const (
	// AddCash adds the amount to the pocket.
	AddCash Direction = iota
	// RemoveCash subtracts the amount from the pocket.
	RemoveCash
)

func (d Direction) String() string {
	if d == AddCash {
		return "add"
	}
	return "subtract"
}

// ParseDirection parses "add" or "subtract" (also accepts "sub").
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "add":
		return AddCash, nil
	case "subtract", "sub":
		return RemoveCash, nil
	default:
		return 0, fmt.Errorf("%w: direction must be add or subtract, got %q", ErrValidation, s)
	}
}

// Settings holds the owner-tunable parts of the book.
type Settings struct {
	Template string `json:"waTemplate"`
}

// Book is the aggregate root: it owns customers, purchases, expenses, the
// cash pockets, settings and the recent activity log. All mutations go
// through its methods; the whole book is persisted as one document after
// each of them.
type Book struct {
	customers []*Customer
	purchases []Purchase
	expenses  []Expense
	cash      CashSet
	settings  Settings
	recent    []string

	// extra preserves unknown top-level keys of the persisted document, so a
	// newer document survives a round-trip through an older binary.
	extra map[string][]byte
}

// NewBook creates an empty book with default settings.
func NewBook() *Book {
	return &Book{
		customers: make([]*Customer, 0),
		purchases: make([]Purchase, 0),
		expenses:  make([]Expense, 0),
		settings:  Settings{Template: DefaultTemplate},
		recent:    make([]string, 0),
	}
}

// recentf prepends a formatted activity line, most recent first.
func (b *Book) recentf(format string, args ...any) {
	b.recent = append([]string{fmt.Sprintf(format, args...)}, b.recent...)
	if len(b.recent) > recentCap {
		b.recent = b.recent[:recentCap]
	}
}

// RegisterCustomer creates a customer with the given opening balance. A
// positive opening balance is also recorded as an "opening" entry dated
// today, so the statement and the balance agree from day one.
func (b *Book) RegisterCustomer(name, mobile string, opening Money) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	c := &Customer{
		ID:      uuid.NewString(),
		Name:    name,
		Mobile:  strings.TrimSpace(mobile),
		Balance: opening,
		Entries: make([]Entry, 0),
	}
	if opening.IsPositive() {
		c.Entries = append(c.Entries, Entry{
			Kind:   EntryOpening,
			Amount: opening,
			Date:   Today(),
			Note:   "Opening balance",
		})
	}
	b.customers = append(b.customers, c)
	b.recentf("%s added (opening %s)", c.Name, opening)
	return c, nil
}

// Customer returns the customer with this id, or ErrNotFound.
func (b *Book) Customer(id string) (*Customer, error) {
	for _, c := range b.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: customer %q", ErrNotFound, id)
}

// FindCustomer resolves a customer by id, or by unique case-insensitive
// name match when no id matches.
func (b *Book) FindCustomer(ref string) (*Customer, error) {
	if c, err := b.Customer(ref); err == nil {
		return c, nil
	}
	var matches []*Customer
	for _, c := range b.customers {
		if strings.EqualFold(c.Name, ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: customer %q", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("multiple customers named %q, use the id", ref)
	}
}

// RecordCredit extends new credit to a customer: the balance grows by the
// amount and a "credit" entry dated today is appended.
func (b *Book) RecordCredit(customerID string, amount Money, note string) error {
	c, err := b.Customer(customerID)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: credit amount must be positive, got %s", ErrValidation, amount.Text())
	}
	if note == "" {
		note = "Sale on credit"
	}
	c.Balance = c.Balance.Add(amount)
	c.Entries = append(c.Entries, Entry{Kind: EntryCredit, Amount: amount, Date: Today(), Note: note})
	b.recentf("%s credited %s", c.Name, amount)
	return nil
}

// RecordPayment records money received from a customer: the balance shrinks
// by the amount (it may go negative, representing overpayment), a "payment"
// entry is appended, and the chosen pocket receives the cash.
func (b *Book) RecordPayment(customerID string, amount Money, pocket Pocket, note string) error {
	c, err := b.Customer(customerID)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive, got %s", ErrValidation, amount.Text())
	}
	if note == "" {
		note = "Payment received"
	}
	c.Balance = c.Balance.Sub(amount)
	c.Entries = append(c.Entries, Entry{Kind: EntryPayment, Amount: amount, Date: Today(), Note: note})
	b.cash.add(pocket, amount)
	b.recentf("%s paid %s", c.Name, amount)
	return nil
}

// RecordPurchase creates a dealer purchase and deducts its amount from the
// pocket. The pocket may go negative; callers are expected to warn the user
// beforehand, the book itself does not block it.
func (b *Book) RecordPurchase(dealer string, amount Money, pocket Pocket, on Date) (Purchase, error) {
	dealer = strings.TrimSpace(dealer)
	if dealer == "" {
		return Purchase{}, fmt.Errorf("%w: dealer name is required", ErrValidation)
	}
	if !amount.IsPositive() {
		return Purchase{}, fmt.Errorf("%w: purchase amount must be positive, got %s", ErrValidation, amount.Text())
	}
	if on.IsZero() {
		on = Today()
	}
	p := Purchase{ID: uuid.NewString(), Dealer: dealer, Amount: amount, Pocket: pocket, Date: on}
	b.purchases = append([]Purchase{p}, b.purchases...)
	b.cash.add(pocket, amount.Neg())
	b.recentf("Purchase %s from %s (from %s)", amount, dealer, pocket)
	return p, nil
}

// DeletePurchase removes the record only. The pocket deduction made at
// creation time is intentionally not reversed.
func (b *Book) DeletePurchase(id string) error {
	for i, p := range b.purchases {
		if p.ID == id {
			b.purchases = slices.Delete(b.purchases, i, i+1)
			b.recentf("Purchase from %s removed (%s)", p.Dealer, p.Amount)
			return nil
		}
	}
	return fmt.Errorf("%w: purchase %q", ErrNotFound, id)
}

// RecordExpense creates an expense and deducts its amount from the pocket.
func (b *Book) RecordExpense(title string, amount Money, pocket Pocket, on Date) (Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Expense{}, fmt.Errorf("%w: expense title is required", ErrValidation)
	}
	if !amount.IsPositive() {
		return Expense{}, fmt.Errorf("%w: expense amount must be positive, got %s", ErrValidation, amount.Text())
	}
	if on.IsZero() {
		on = Today()
	}
	e := Expense{ID: uuid.NewString(), Title: title, Amount: amount, Pocket: pocket, Date: on}
	b.expenses = append([]Expense{e}, b.expenses...)
	b.cash.add(pocket, amount.Neg())
	b.recentf("Expense %s: %s (from %s)", amount, title, pocket)
	return e, nil
}

// DeleteExpense removes the record only, like DeletePurchase.
func (b *Book) DeleteExpense(id string) error {
	for i, e := range b.expenses {
		if e.ID == id {
			b.expenses = slices.Delete(b.expenses, i, i+1)
			b.recentf("Expense %q removed (%s)", e.Title, e.Amount)
			return nil
		}
	}
	return fmt.Errorf("%w: expense %q", ErrNotFound, id)
}

// AdjustPocket applies a manual correction to a pocket balance.
func (b *Book) AdjustPocket(pocket Pocket, amount Money, dir Direction) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: adjustment amount must be positive, got %s", ErrValidation, amount.Text())
	}
	if dir == AddCash {
		b.cash.add(pocket, amount)
		b.recentf("Added %s to %s", amount, pocket)
	} else {
		b.cash.add(pocket, amount.Neg())
		b.recentf("Removed %s from %s", amount, pocket)
	}
	return nil
}

// Totals is the dashboard summary.
//
// TodayPurchases is deliberately today-only while TotalExpenses is all-time;
// the field names carry that asymmetry so nobody mistakes one for the other.
type Totals struct {
	Outstanding    Money // sum of all customer balances
	TodayPurchases Money // purchases dated today
	TotalExpenses  Money // all expenses, all time
}

// ComputeTotals is a pure query over the book.
func (b *Book) ComputeTotals() Totals {
	var t Totals
	for _, c := range b.customers {
		t.Outstanding = t.Outstanding.Add(c.Balance)
	}
	today := Today()
	for _, p := range b.purchases {
		if p.Date == today {
			t.TodayPurchases = t.TodayPurchases.Add(p.Amount)
		}
	}
	for _, e := range b.expenses {
		t.TotalExpenses = t.TotalExpenses.Add(e.Amount)
	}
	return t
}

// Statement is a customer's entry history sorted by date ascending, plus the
// current balance.
type Statement struct {
	Name    string
	Mobile  string
	Balance Money
	Entries []Entry
}

// BuildStatement returns the statement for a customer, or ErrNotFound.
func (b *Book) BuildStatement(customerID string) (*Statement, error) {
	c, err := b.Customer(customerID)
	if err != nil {
		return nil, err
	}
	entries := slices.Clone(c.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return &Statement{Name: c.Name, Mobile: c.Mobile, Balance: c.Balance, Entries: entries}, nil
}

// Drift reports a customer whose stored balance disagrees with the sum of
// its entries.
type Drift struct {
	Customer    *Customer
	Stored      Money
	FromEntries Money
}

// CheckBalances recomputes every balance from entries and reports any
// drift. It never modifies the book: divergence is surfaced, not silently
// corrected.
func (b *Book) CheckBalances() []Drift {
	var drifts []Drift
	for _, c := range b.customers {
		sum := c.EntriesSum()
		if !sum.Equal(c.Balance) {
			drifts = append(drifts, Drift{Customer: c, Stored: c.Balance, FromEntries: sum})
		}
	}
	return drifts
}

// Customers iterates over all customers in registration order.
func (b *Book) Customers() iter.Seq[*Customer] {
	return func(yield func(*Customer) bool) {
		for _, c := range b.customers {
			if !yield(c) {
				return
			}
		}
	}
}

// Purchases iterates over purchases, most recent first.
func (b *Book) Purchases() iter.Seq[Purchase] {
	return func(yield func(Purchase) bool) {
		for _, p := range b.purchases {
			if !yield(p) {
				return
			}
		}
	}
}

// Expenses iterates over expenses, most recent first.
func (b *Book) Expenses() iter.Seq[Expense] {
	return func(yield func(Expense) bool) {
		for _, e := range b.expenses {
			if !yield(e) {
				return
			}
		}
	}
}

// Cash returns a copy of the pocket balances.
func (b *Book) Cash() CashSet { return b.cash }

// Recent returns up to n activity lines, most recent first.
func (b *Book) Recent(n int) []string {
	if n <= 0 || n > len(b.recent) {
		n = len(b.recent)
	}
	return slices.Clone(b.recent[:n])
}

// Template returns the reminder message template.
func (b *Book) Template() string { return b.settings.Template }

// SetTemplate replaces the reminder message template.
func (b *Book) SetTemplate(t string) {
	b.settings.Template = t
	b.recentf("Reminder template updated")
}

// Reset clears the book back to its defaults. There is no undo.
func (b *Book) Reset() {
	*b = *NewBook()
}
