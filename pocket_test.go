package khata

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParsePocket(t *testing.T) {
	testCases := []struct {
		in      string
		want    Pocket
		wantErr bool
	}{
		{in: "kalla", want: Kalla},
		{in: "home", want: Home},
		{in: "bank", want: Bank},
		{in: "upi", want: UPI},
		{in: "other", want: Other},
		{in: "till", wantErr: true},
		{in: "", wantErr: true},
		{in: "Bank", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePocket(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPocket) {
					t.Fatalf("ParsePocket(%q) error = %v, want ErrInvalidPocket", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePocket(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParsePocket(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPocket_StringRoundTrip(t *testing.T) {
	for _, p := range Pockets {
		got, err := ParsePocket(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePocket(%q) = %v, %v", p.String(), got, err)
		}
	}
}

func TestPocket_JSON(t *testing.T) {
	data, err := json.Marshal(Bank)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"bank"` {
		t.Errorf("marshal = %s, want \"bank\"", data)
	}

	var p Pocket
	if err := json.Unmarshal([]byte(`"upi"`), &p); err != nil || p != UPI {
		t.Errorf("unmarshal = %v, %v", p, err)
	}
	if err := json.Unmarshal([]byte(`"wallet"`), &p); !errors.Is(err, ErrInvalidPocket) {
		t.Errorf("unmarshal unknown pocket: error = %v, want ErrInvalidPocket", err)
	}
}
