package khata

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts persist as JSON numbers, matching the historical document.
	decimal.MarshalJSONWithoutQuotes = true
}

// knownKeys are the top-level keys of the persisted document, in canonical
// write order. Any other key is preserved verbatim across a load/save cycle.
var knownKeys = []string{"customers", "purchases", "expenses", "cash", "settings", "recent"}

// MarshalJSON writes the whole book as one document with canonical key
// order, unknown keys last.
func (b *Book) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("customers", b.customers)
	w.Append("purchases", b.purchases)
	w.Append("expenses", b.expenses)
	w.Append("cash", b.cash)
	w.Append("settings", b.settings)
	w.Append("recent", b.recent)

	extras := make([]string, 0, len(b.extra))
	for k := range b.extra {
		extras = append(extras, k)
	}
	slices.Sort(extras)
	for _, k := range extras {
		w.AppendRaw(k, b.extra[k])
	}
	return w.MarshalJSON()
}

// UnmarshalJSON loads a book from one document. Missing top-level keys are
// backfilled from defaults; unknown keys are kept and written back on save.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("could not parse book document: %w", err)
	}

	fresh := NewBook()
	if v, ok := raw["customers"]; ok {
		if err := json.Unmarshal(v, &fresh.customers); err != nil {
			return fmt.Errorf("could not parse customers: %w", err)
		}
	}
	if v, ok := raw["purchases"]; ok {
		if err := json.Unmarshal(v, &fresh.purchases); err != nil {
			return fmt.Errorf("could not parse purchases: %w", err)
		}
	}
	if v, ok := raw["expenses"]; ok {
		if err := json.Unmarshal(v, &fresh.expenses); err != nil {
			return fmt.Errorf("could not parse expenses: %w", err)
		}
	}
	if v, ok := raw["cash"]; ok {
		if err := json.Unmarshal(v, &fresh.cash); err != nil {
			return fmt.Errorf("could not parse cash pockets: %w", err)
		}
	}
	if v, ok := raw["settings"]; ok {
		if err := json.Unmarshal(v, &fresh.settings); err != nil {
			return fmt.Errorf("could not parse settings: %w", err)
		}
	}
	if v, ok := raw["recent"]; ok {
		if err := json.Unmarshal(v, &fresh.recent); err != nil {
			return fmt.Errorf("could not parse recent activity: %w", err)
		}
	}
	if fresh.settings.Template == "" {
		fresh.settings.Template = DefaultTemplate
	}
	for _, c := range fresh.customers {
		if c.Entries == nil {
			c.Entries = make([]Entry, 0)
		}
	}
	if len(fresh.recent) > recentCap {
		fresh.recent = fresh.recent[:recentCap]
	}

	for k, v := range raw {
		if slices.Contains(knownKeys, k) {
			continue
		}
		if fresh.extra == nil {
			fresh.extra = make(map[string][]byte)
		}
		fresh.extra[k] = v
	}

	*b = *fresh
	return nil
}

// CheckShape validates the structural minimum of a backup document:
// "customers" must be a sequence and "cash" must be an object. Anything else
// fails with ErrSchema, without touching any book.
func CheckShape(doc []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	customers, ok := raw["customers"]
	if !ok {
		return fmt.Errorf("%w: missing customers", ErrSchema)
	}
	var seq []json.RawMessage
	if err := json.Unmarshal(customers, &seq); err != nil {
		return fmt.Errorf("%w: customers is not a sequence", ErrSchema)
	}
	cash, ok := raw["cash"]
	if !ok {
		return fmt.Errorf("%w: missing cash", ErrSchema)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(cash, &obj); err != nil {
		return fmt.Errorf("%w: cash is not an object", ErrSchema)
	}
	return nil
}

// EncodeBook writes the book to w as one indented JSON document.
func EncodeBook(w io.Writer, b *Book) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode book: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write book: %w", err)
	}
	return nil
}

// DecodeBook reads one whole-book document from r.
func DecodeBook(r io.Reader) (*Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read book document: %w", err)
	}
	b := NewBook()
	if err := json.Unmarshal(data, b); err != nil {
		return nil, err
	}
	return b, nil
}
