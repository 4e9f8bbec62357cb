package khata

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency the book is kept in.
const Currency = "INR"

// Money represents a monetary value in the book's currency.
//
// Every arithmetic operation rounds the result to two decimal places, so
// repeated small mutations cannot accumulate floating-point style drift.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value).Round(2)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	}
	return decimal.Zero
}

// ParseMoney parses a decimal string like "1234.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d.Round(2)}, nil
}

// currency returns the full currency definition for the book.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the formatted representation of the value, e.g. "₹1,000.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Text returns the plain decimal representation of the value, e.g. "1000".
func (m Money) Text() string { return m.value.String() }

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg()} }

// binary operators. Results are rounded to two decimals.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value).Round(2)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value).Round(2)} }

// SignedString returns the formatted value with an explicit sign, "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(2).MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.value = d.Round(2)
	return nil
}
