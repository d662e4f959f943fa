package models

import (
	"regexp"
	"strings"
)

// amexPattern matches American Express card numbers, which show five tail
// digits instead of four.
var amexPattern = regexp.MustCompile(`^3[47]`)

// CardView is the plaintext form of a payment card item.
type CardView struct {
	CardholderName string `json:"cardholderName,omitempty"`
	Brand          string `json:"brand,omitempty"`
	Number         string `json:"number,omitempty"`
	ExpMonth       string `json:"expMonth,omitempty"`
	ExpYear        string `json:"expYear,omitempty"`
	Code           string `json:"code,omitempty"`
}

// MaskedCode masks the security code preserving its length.
func (c *CardView) MaskedCode() string {
	return strings.Repeat("•", len(c.Code))
}

// MaskedNumber masks the card number preserving its length.
func (c *CardView) MaskedNumber() string {
	return strings.Repeat("•", len(c.Number))
}

// SubTitle renders "Brand, *1234" for list views. Amex numbers show the
// last five digits, everything else the last four.
func (c *CardView) SubTitle() string {
	sub := c.Brand
	if len(c.Number) >= 4 {
		if sub != "" {
			sub += ", "
		}
		count := 4
		if len(c.Number) >= 5 && amexPattern.MatchString(c.Number) {
			count = 5
		}
		sub += "*" + c.Number[len(c.Number)-count:]
	}
	return sub
}

// Expiration renders "MM / YYYY" with placeholders for missing halves.
func (c *CardView) Expiration() string {
	if c.ExpMonth == "" && c.ExpYear == "" {
		return ""
	}

	month, year := "__", "____"
	if c.ExpMonth != "" {
		padded := "0" + c.ExpMonth
		month = padded[len(padded)-2:]
	}
	if c.ExpYear != "" {
		year = c.ExpYear
		if len(year) == 2 {
			year = "20" + year
		}
	}
	return month + " / " + year
}
