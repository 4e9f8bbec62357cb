package khata

import (
	"errors"
	"fmt"
	"testing"
)

func TestBook_CustomerLifecycle(t *testing.T) {
	b := NewBook()

	c, err := b.RegisterCustomer("Ravi", "98765 43210", M(1000))
	if err != nil {
		t.Fatalf("RegisterCustomer() failed: %v", err)
	}
	if !c.Balance.Equal(M(1000)) {
		t.Errorf("opening balance = %s, want %s", c.Balance.Text(), "1000")
	}
	if len(c.Entries) != 1 || c.Entries[0].Kind != EntryOpening || !c.Entries[0].Amount.Equal(M(1000)) {
		t.Errorf("want exactly one opening entry of 1000, got %+v", c.Entries)
	}

	if err := b.RecordCredit(c.ID, M(500), ""); err != nil {
		t.Fatalf("RecordCredit() failed: %v", err)
	}
	if err := b.RecordPayment(c.ID, M(200), Bank, ""); err != nil {
		t.Fatalf("RecordPayment() failed: %v", err)
	}

	if !c.Balance.Equal(M(1300)) {
		t.Errorf("balance after credit+payment = %s, want 1300", c.Balance.Text())
	}
	if !b.Cash().Bank.Equal(M(200)) {
		t.Errorf("bank pocket = %s, want 200", b.Cash().Bank.Text())
	}
	if !c.EntriesSum().Equal(c.Balance) {
		t.Errorf("entries sum %s diverged from balance %s", c.EntriesSum().Text(), c.Balance.Text())
	}
	if len(b.CheckBalances()) != 0 {
		t.Errorf("CheckBalances() reported drift on a lockstep book")
	}
}

func TestBook_RegisterCustomer(t *testing.T) {
	testCases := []struct {
		name     string
		customer string
		opening  Money
		wantErr  error
		entries  int
	}{
		{name: "empty name fails", customer: "  ", opening: M(0), wantErr: ErrValidation},
		{name: "zero opening has no entry", customer: "Mani", opening: M(0), entries: 0},
		{name: "positive opening has one entry", customer: "Selvi", opening: M(250), entries: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBook()
			c, err := b.RegisterCustomer(tc.customer, "", tc.opening)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("RegisterCustomer() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RegisterCustomer() failed: %v", err)
			}
			if len(c.Entries) != tc.entries {
				t.Errorf("entries = %d, want %d", len(c.Entries), tc.entries)
			}
		})
	}
}

func TestBook_RecordCredit_Validation(t *testing.T) {
	b := NewBook()
	c, _ := b.RegisterCustomer("Ravi", "", M(0))

	if err := b.RecordCredit("no-such-id", M(10), ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("credit to unknown customer: error = %v, want ErrNotFound", err)
	}
	if err := b.RecordCredit(c.ID, M(0), ""); !errors.Is(err, ErrValidation) {
		t.Errorf("zero credit: error = %v, want ErrValidation", err)
	}
	if err := b.RecordCredit(c.ID, M(-5), ""); !errors.Is(err, ErrValidation) {
		t.Errorf("negative credit: error = %v, want ErrValidation", err)
	}
}

func TestBook_PaymentMayOverpay(t *testing.T) {
	b := NewBook()
	c, _ := b.RegisterCustomer("Ravi", "", M(100))

	if err := b.RecordPayment(c.ID, M(250), UPI, ""); err != nil {
		t.Fatalf("RecordPayment() failed: %v", err)
	}
	if !c.Balance.Equal(M(-150)) {
		t.Errorf("overpaid balance = %s, want -150", c.Balance.Text())
	}
	if !b.Cash().UPI.Equal(M(250)) {
		t.Errorf("upi pocket = %s, want 250", b.Cash().UPI.Text())
	}
}

func TestBook_RecordPurchase(t *testing.T) {
	b := NewBook()

	// Push kalla negative first: the deduction applies regardless of sign.
	if err := b.AdjustPocket(Kalla, M(50), RemoveCash); err != nil {
		t.Fatalf("AdjustPocket() failed: %v", err)
	}
	p, err := b.RecordPurchase("DealerX", M(300), Kalla, Today())
	if err != nil {
		t.Fatalf("RecordPurchase() failed: %v", err)
	}
	if !b.Cash().Kalla.Equal(M(-350)) {
		t.Errorf("kalla = %s, want -350", b.Cash().Kalla.Text())
	}

	// Deleting the record must not reverse the deduction.
	if err := b.DeletePurchase(p.ID); err != nil {
		t.Fatalf("DeletePurchase() failed: %v", err)
	}
	for range b.Purchases() {
		t.Fatal("purchase record still present after delete")
	}
	if !b.Cash().Kalla.Equal(M(-350)) {
		t.Errorf("kalla after delete = %s, want -350 (non-reversing)", b.Cash().Kalla.Text())
	}

	if err := b.DeletePurchase(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: error = %v, want ErrNotFound", err)
	}
	if _, err := b.RecordPurchase("", M(10), Kalla, Today()); !errors.Is(err, ErrValidation) {
		t.Errorf("empty dealer: error = %v, want ErrValidation", err)
	}
	if _, err := b.RecordPurchase("DealerX", M(0), Kalla, Today()); !errors.Is(err, ErrValidation) {
		t.Errorf("zero amount: error = %v, want ErrValidation", err)
	}
}

func TestBook_RecordExpense(t *testing.T) {
	b := NewBook()

	e, err := b.RecordExpense("tea", M(40), Home, Today())
	if err != nil {
		t.Fatalf("RecordExpense() failed: %v", err)
	}
	if !b.Cash().Home.Equal(M(-40)) {
		t.Errorf("home = %s, want -40", b.Cash().Home.Text())
	}
	if err := b.DeleteExpense(e.ID); err != nil {
		t.Fatalf("DeleteExpense() failed: %v", err)
	}
	if !b.Cash().Home.Equal(M(-40)) {
		t.Errorf("home after delete = %s, want -40 (non-reversing)", b.Cash().Home.Text())
	}
	if err := b.DeleteExpense(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: error = %v, want ErrNotFound", err)
	}
}

func TestBook_AdjustPocket_RoundingIdempotence(t *testing.T) {
	b := NewBook()
	for i := 0; i < 10; i++ {
		if err := b.AdjustPocket(Bank, M(0.1), AddCash); err != nil {
			t.Fatalf("AdjustPocket() failed: %v", err)
		}
	}
	if !b.Cash().Bank.Equal(M(1)) {
		t.Errorf("ten additions of 0.1 = %s, want exactly 1", b.Cash().Bank.Text())
	}

	if err := b.AdjustPocket(Bank, M(0), AddCash); !errors.Is(err, ErrValidation) {
		t.Errorf("zero adjustment: error = %v, want ErrValidation", err)
	}
}

func TestBook_ComputeTotals(t *testing.T) {
	b := NewBook()
	c1, _ := b.RegisterCustomer("Ravi", "", M(1000))
	b.RegisterCustomer("Selvi", "", M(200))
	b.RecordPayment(c1.ID, M(300), Bank, "")

	b.RecordPurchase("DealerX", M(500), Kalla, Today())
	b.RecordPurchase("DealerY", M(999), Kalla, Today().Add(-3)) // not today

	b.RecordExpense("tea", M(40), Home, Today())
	b.RecordExpense("diesel", M(60), Home, Today().Add(-10)) // still counted

	got := b.ComputeTotals()
	if !got.Outstanding.Equal(M(900)) {
		t.Errorf("Outstanding = %s, want 900", got.Outstanding.Text())
	}
	if !got.TodayPurchases.Equal(M(500)) {
		t.Errorf("TodayPurchases = %s, want 500", got.TodayPurchases.Text())
	}
	if !got.TotalExpenses.Equal(M(100)) {
		t.Errorf("TotalExpenses = %s, want 100 (all-time)", got.TotalExpenses.Text())
	}
}

func TestBook_BuildStatement(t *testing.T) {
	// Hand-build a customer with out-of-order entries to exercise the sort.
	c := &Customer{
		ID:      "c1",
		Name:    "Ravi",
		Balance: M(130),
		Entries: []Entry{
			{Kind: EntryCredit, Amount: M(50), Date: MustParseDate("2026-03-10")},
			{Kind: EntryOpening, Amount: M(100), Date: MustParseDate("2026-01-01")},
			{Kind: EntryPayment, Amount: M(20), Date: MustParseDate("2026-02-15")},
		},
	}
	b := NewBook()
	b.customers = append(b.customers, c)

	st, err := b.BuildStatement("c1")
	if err != nil {
		t.Fatalf("BuildStatement() failed: %v", err)
	}
	wantOrder := []EntryKind{EntryOpening, EntryPayment, EntryCredit}
	for i, e := range st.Entries {
		if e.Kind != wantOrder[i] {
			t.Errorf("entry %d kind = %s, want %s", i, e.Kind, wantOrder[i])
		}
	}
	// The source entries are untouched.
	if c.Entries[0].Kind != EntryCredit {
		t.Errorf("BuildStatement() reordered the customer's own entries")
	}

	if _, err := b.BuildStatement("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown customer: error = %v, want ErrNotFound", err)
	}
}

func TestBook_CheckBalances(t *testing.T) {
	b := NewBook()
	c, _ := b.RegisterCustomer("Ravi", "", M(100))

	// Simulate drift from the pre-lockstep days.
	c.Balance = M(150)

	drifts := b.CheckBalances()
	if len(drifts) != 1 {
		t.Fatalf("CheckBalances() = %d drifts, want 1", len(drifts))
	}
	d := drifts[0]
	if !d.Stored.Equal(M(150)) || !d.FromEntries.Equal(M(100)) {
		t.Errorf("drift = stored %s / entries %s, want 150 / 100", d.Stored.Text(), d.FromEntries.Text())
	}
	// The book is not silently fixed.
	if !c.Balance.Equal(M(150)) {
		t.Errorf("CheckBalances() modified the stored balance")
	}
}

func TestBook_FindCustomer(t *testing.T) {
	b := NewBook()
	c, _ := b.RegisterCustomer("Ravi", "", M(0))
	b.RegisterCustomer("Mani", "", M(0))
	b.RegisterCustomer("mani", "", M(0))

	testCases := []struct {
		name    string
		ref     string
		wantID  string
		wantErr bool
	}{
		{name: "by id", ref: c.ID, wantID: c.ID},
		{name: "by name case-insensitive", ref: "ravi", wantID: c.ID},
		{name: "unknown", ref: "nobody", wantErr: true},
		{name: "ambiguous name", ref: "mani", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := b.FindCustomer(tc.ref)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("FindCustomer(%q) = %v, want error", tc.ref, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindCustomer(%q) failed: %v", tc.ref, err)
			}
			if got.ID != tc.wantID {
				t.Errorf("FindCustomer(%q).ID = %s, want %s", tc.ref, got.ID, tc.wantID)
			}
		})
	}
}

func TestBook_RecentIsBoundedAndMostRecentFirst(t *testing.T) {
	b := NewBook()
	for i := 0; i < recentCap+20; i++ {
		if err := b.AdjustPocket(Other, M(1+i), AddCash); err != nil {
			t.Fatalf("AdjustPocket() failed: %v", err)
		}
	}
	all := b.Recent(0)
	if len(all) != recentCap {
		t.Errorf("stored activity lines = %d, want %d", len(all), recentCap)
	}
	wantFirst := fmt.Sprintf("Added %s to other", M(recentCap+20))
	if all[0] != wantFirst {
		t.Errorf("most recent line = %q, want %q", all[0], wantFirst)
	}
	if got := b.Recent(5); len(got) != 5 {
		t.Errorf("Recent(5) = %d lines, want 5", len(got))
	}
}
