package khata

import (
	"errors"
	"strings"
	"testing"
)

func TestBook_ReminderMessage(t *testing.T) {
	b := NewBook()
	b.SetTemplate("{name} owes {balance}")
	c := &Customer{Name: "Ravi", Balance: M(300)}

	if got := b.ReminderMessage(c); got != "Ravi owes 300" {
		t.Errorf("ReminderMessage() = %q, want %q", got, "Ravi owes 300")
	}
}

func TestBook_ReminderLink(t *testing.T) {
	testCases := []struct {
		name    string
		mobile  string
		wantErr bool
		want    []string // substrings of the link
	}{
		{
			name:   "plain ten digits",
			mobile: "9876543210",
			want:   []string{"https://wa.me/919876543210?", "text="},
		},
		{
			name:   "formatted number is normalized",
			mobile: "98765 43210",
			want:   []string{"https://wa.me/919876543210?"},
		},
		{name: "too short", mobile: "12345", wantErr: true},
		{name: "too long", mobile: "919876543210", wantErr: true},
		{name: "empty", mobile: "", wantErr: true},
	}

	b := NewBook()
	b.SetTemplate("{name} owes {balance}")
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Customer{Name: "Ravi", Mobile: tc.mobile, Balance: M(300)}
			link, err := b.ReminderLink(c, "")
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("ReminderLink() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReminderLink() failed: %v", err)
			}
			for _, sub := range tc.want {
				if !strings.Contains(link, sub) {
					t.Errorf("link %q missing %q", link, sub)
				}
			}
			// The message is percent-encoded with substitutions applied.
			if !strings.Contains(link, "text=Ravi+owes+300") {
				t.Errorf("link %q missing encoded message", link)
			}
		})
	}
}

func TestBook_ReminderLink_CountryCode(t *testing.T) {
	b := NewBook()
	c := &Customer{Name: "Ravi", Mobile: "9876543210", Balance: M(10)}
	link, err := b.ReminderLink(c, "44")
	if err != nil {
		t.Fatalf("ReminderLink() failed: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/449876543210?") {
		t.Errorf("link = %q, want 44 prefix", link)
	}
}
