// Package khata implements a single-user credit book for a small trading
// business: customer balances, cash pockets, dealer purchases and expenses,
// all persisted as one JSON document.
//
// The Book is the aggregate root. Every mutation validates its inputs,
// applies the change, appends a human-readable activity line, and is then
// persisted as a whole by the Store. Reports (dashboard totals, customer
// statements) are pure queries over the Book.
package khata
