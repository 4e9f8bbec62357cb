package khata

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultCountryCode is prepended to the customer's 10-digit mobile number
// when building a reminder link.
const DefaultCountryCode = "91"

const waBase = "https://wa.me/"

// ReminderMessage substitutes {name} and {balance} in the book's template
// for the given customer. The balance is the plain decimal value.
func (b *Book) ReminderMessage(c *Customer) string {
	msg := strings.ReplaceAll(b.Template(), "{name}", c.Name)
	return strings.ReplaceAll(msg, "{balance}", c.Balance.Text())
}

// digits strips everything but decimal digits from s.
func digits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ReminderLink builds a prefilled WhatsApp URL for the customer: the message
// percent-encoded, the destination the customer's mobile number normalized
// to digits with the country code prepended.
//
// It declines to produce a link when the stored number is not exactly ten
// digits long.
func (b *Book) ReminderLink(c *Customer, countryCode string) (string, error) {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	number := digits(c.Mobile)
	if len(number) != 10 {
		return "", fmt.Errorf("%w: %s has no 10-digit mobile number (got %q)", ErrValidation, c.Name, c.Mobile)
	}
	q := url.Values{"text": {b.ReminderMessage(c)}}
	return waBase + countryCode + number + "?" + q.Encode(), nil
}
