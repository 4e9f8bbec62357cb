// Package renderer builds markdown reports from the book's typed query
// results. The book itself never produces display strings beyond the
// activity log; everything printable lives here.
package renderer

import (
	"fmt"
	"strings"

	"github.com/murugan/khata"
)

// Dashboard renders the at-a-glance overview: totals, pocket balances and
// the recent activity.
func Dashboard(totals khata.Totals, cash khata.CashSet, recent []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dashboard\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n")
	fmt.Fprintf(&b, "|---|---:|\n")
	fmt.Fprintf(&b, "| Total outstanding | %s |\n", totals.Outstanding)
	fmt.Fprintf(&b, "| Purchases today | %s |\n", totals.TodayPurchases)
	fmt.Fprintf(&b, "| Expenses (all time) | %s |\n", totals.TotalExpenses)
	b.WriteString("\n")
	b.WriteString(Pockets(cash))
	if len(recent) > 0 {
		b.WriteString("\n")
		b.WriteString(Recent(recent))
	}
	return b.String()
}

// Pockets renders the five pocket balances as a markdown table.
func Pockets(cash khata.CashSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Pockets\n\n")
	fmt.Fprintf(&b, "| Pocket | Balance |\n")
	fmt.Fprintf(&b, "|---|---:|\n")
	for _, p := range khata.Pockets {
		fmt.Fprintf(&b, "| %s | %s |\n", p, cash.Balance(p))
	}
	return b.String()
}

// Recent renders activity lines, most recent first. At most 20 lines are
// shown; the stored log may hold more.
func Recent(lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Recent activity\n\n")
	if len(lines) > 20 {
		lines = lines[:20]
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "- %s\n", l)
	}
	return b.String()
}

// Customers renders the customer list with balances.
func Customers(book *khata.Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Customers\n\n")
	fmt.Fprintf(&b, "| Name | Mobile | Balance | Id |\n")
	fmt.Fprintf(&b, "|---|---|---:|---|\n")
	n := 0
	for c := range book.Customers() {
		mobile := c.Mobile
		if mobile == "" {
			mobile = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.Name, mobile, c.Balance, c.ID)
		n++
	}
	if n == 0 {
		return "# Customers\n\nNo customers yet.\n"
	}
	return b.String()
}

// Statement renders a customer statement: entry table sorted by date
// ascending plus the current balance.
func Statement(st *khata.Statement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Statement - %s\n\n", st.Name)
	mobile := st.Mobile
	if mobile == "" {
		mobile = "-"
	}
	fmt.Fprintf(&b, "Mobile: %s\n\n", mobile)
	fmt.Fprintf(&b, "Balance: %s\n\n", st.Balance)
	fmt.Fprintf(&b, "| Date | Type | Amount | Note |\n")
	fmt.Fprintf(&b, "|---|---|---:|---|\n")
	for _, e := range st.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", e.Date, e.Kind, e.Amount, e.Note)
	}
	return b.String()
}

// Purchases renders the purchase list, most recent first.
func Purchases(book *khata.Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Purchases\n\n")
	fmt.Fprintf(&b, "| Date | Dealer | Amount | Pocket | Id |\n")
	fmt.Fprintf(&b, "|---|---|---:|---|---|\n")
	for p := range book.Purchases() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", p.Date, p.Dealer, p.Amount, p.Pocket, p.ID)
	}
	return b.String()
}

// Expenses renders the expense list, most recent first.
func Expenses(book *khata.Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Expenses\n\n")
	fmt.Fprintf(&b, "| Date | Title | Amount | Pocket | Id |\n")
	fmt.Fprintf(&b, "|---|---|---:|---|---|\n")
	for e := range book.Expenses() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", e.Date, e.Title, e.Amount, e.Pocket, e.ID)
	}
	return b.String()
}

// Drifts renders the balance reconciliation report. An empty report renders
// as a single all-clear line.
func Drifts(drifts []khata.Drift) string {
	if len(drifts) == 0 {
		return "All customer balances match their entries.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Balance drift\n\n")
	fmt.Fprintf(&b, "| Customer | Stored | From entries |\n")
	fmt.Fprintf(&b, "|---|---:|---:|\n")
	for _, d := range drifts {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", d.Customer.Name, d.Stored, d.FromEntries)
	}
	return b.String()
}
