package khata

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the book's persisted form,
// e.g. "$.cash.bank" or "$.customers[0].balance". It is a read-only
// inspection hatch for scripts and debugging.
func (b *Book) Query(expr string) (any, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("could not marshal book for query: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse book for query: %w", err)
	}
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return v, nil
}
