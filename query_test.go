package khata

import "testing"

func TestBook_Query(t *testing.T) {
	b := NewBook()
	b.AdjustPocket(Bank, M(250.5), AddCash)
	b.RegisterCustomer("Ravi", "", M(100))

	testCases := []struct {
		name string
		expr string
		want any
	}{
		{name: "pocket balance", expr: "$.cash.bank", want: float64(250.5)},
		{name: "customer name", expr: "$.customers[0].name", want: "Ravi"},
		{name: "customer balance", expr: "$.customers[0].balance", want: float64(100)},
		{name: "template", expr: "$.settings.waTemplate", want: DefaultTemplate},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := b.Query(tc.expr)
			if err != nil {
				t.Fatalf("Query(%q) failed: %v", tc.expr, err)
			}
			if got != tc.want {
				t.Errorf("Query(%q) = %v (%T), want %v", tc.expr, got, got, tc.want)
			}
		})
	}

	if _, err := b.Query("$.["); err == nil {
		t.Error("Query() accepted a malformed expression")
	}
}
