package khata

// Purchase is a stock purchase from a dealer, paid out of a pocket.
//
// Creating a purchase deducts its amount from the pocket. Deleting it
// removes the record only: the pocket deduction is intentionally left in
// place, matching how the book has always behaved.
type Purchase struct {
	ID     string `json:"id"`
	Dealer string `json:"dealer"`
	Amount Money  `json:"amount"`
	Pocket Pocket `json:"source"`
	Date   Date   `json:"date"`
}

// Expense is a business expense paid out of a pocket. Same lifecycle and
// non-reversing deletion as Purchase.
type Expense struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Amount Money  `json:"amount"`
	Pocket Pocket `json:"source"`
	Date   Date   `json:"date"`
}
