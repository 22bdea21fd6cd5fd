package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces user input into a whole currency amount.
//
// The first "k" is expanded to "000", every other non-digit is dropped.
// Input without any digits yields zero.
func ParseAmount(s string) decimal.Decimal {
	if i := strings.IndexAny(s, "kK"); i >= 0 {
		s = s[:i] + "000" + s[i+1:]
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, s)

	if digits == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Amount is a money value as submitted by clients. It decodes from a
// JSON number or a string, strings are coerced with ParseAmount.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps an integer amount.
func NewAmount(i int64) Amount {
	return Amount{decimal.NewFromInt(i)}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.Decimal = ParseAmount(s)
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}
