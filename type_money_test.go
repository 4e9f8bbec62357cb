package khata

import (
	"encoding/json"
	"testing"
)

func TestMoney_RoundsAtEveryOperation(t *testing.T) {
	m := M(0)
	for i := 0; i < 10; i++ {
		m = m.Add(M(0.1))
	}
	if !m.Equal(M(1)) {
		t.Errorf("ten additions of 0.1 = %s, want exactly 1", m.Text())
	}

	// Sub rounds too.
	got := M(10).Sub(M(0.005))
	if got.Text() != "10" {
		t.Errorf("10 - 0.005 rounded = %s, want 10", got.Text())
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{in: M(0), want: "₹0.00"},
		{in: M(1000), want: "₹1,000.00"},
		{in: M(40.5), want: "₹40.50"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String(%s) = %q, want %q", tc.in.Text(), got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := M(5).SignedString(); got != "+₹5.00" {
		t.Errorf("SignedString(5) = %q", got)
	}
}

func TestMoney_JSONNumbers(t *testing.T) {
	data, err := json.Marshal(M(123.45))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "123.45" {
		t.Errorf("marshal = %s, want a bare number", data)
	}

	var m Money
	if err := json.Unmarshal([]byte("300"), &m); err != nil || !m.Equal(M(300)) {
		t.Errorf("unmarshal = %s, %v", m.Text(), err)
	}
}
