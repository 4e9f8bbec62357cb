package khata

import (
	"encoding/json"
	"fmt"
)

// Pocket identifies one of the fixed cash holding places whose balance is
// tracked independently.
type Pocket int

const (
	// Kalla is the shop till.
	Kalla Pocket = iota
	// Home is cash kept at home.
	Home
	// Bank is the bank account.
	Bank
	// UPI is the mobile wallet balance.
	UPI
	// Other covers anything else.
	Other
)

// Pockets lists all pockets in display order.
var Pockets = [...]Pocket{Kalla, Home, Bank, UPI, Other}

func (p Pocket) String() string {
	switch p {
	case Kalla:
		return "kalla"
	case Home:
		return "home"
	case Bank:
		return "bank"
	case UPI:
		return "upi"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// ParsePocket parses a pocket name. Unknown names fail with ErrInvalidPocket.
func ParsePocket(s string) (Pocket, error) {
	switch s {
	case "kalla":
		return Kalla, nil
	case "home":
		return Home, nil
	case "bank":
		return Bank, nil
	case "upi":
		return UPI, nil
	case "other":
		return Other, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPocket, s)
	}
}

func (p Pocket) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Pocket) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParsePocket(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// CashSet holds the balance of each pocket. The set of pockets is closed, so
// an invalid pocket is a construction-time error, never a silent zero lookup.
type CashSet struct {
	Kalla Money `json:"kalla"`
	Home  Money `json:"home"`
	Bank  Money `json:"bank"`
	UPI   Money `json:"upi"`
	Other Money `json:"other"`
}

// Balance returns the balance of the given pocket.
func (c *CashSet) Balance(p Pocket) Money {
	switch p {
	case Kalla:
		return c.Kalla
	case Home:
		return c.Home
	case Bank:
		return c.Bank
	case UPI:
		return c.UPI
	default:
		return c.Other
	}
}

// add applies a signed delta to the pocket's balance. Balances may go
// negative; the store warns the caller but does not block it.
func (c *CashSet) add(p Pocket, amount Money) {
	switch p {
	case Kalla:
		c.Kalla = c.Kalla.Add(amount)
	case Home:
		c.Home = c.Home.Add(amount)
	case Bank:
		c.Bank = c.Bank.Add(amount)
	case UPI:
		c.UPI = c.UPI.Add(amount)
	default:
		c.Other = c.Other.Add(amount)
	}
}
