package domain

import (
	"fmt"
	"strings"
)

// Currency identifies one of the two currencies an account can be
// denominated in. It is fixed at account creation and never changes.
type Currency string

const (
	RON Currency = "RON"
	EUR Currency = "EUR"
)

// ParseCurrency converts a user-supplied code into a Currency.
func ParseCurrency(s string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RON):
		return RON, nil
	case string(EUR):
		return EUR, nil
	default:
		return "", fmt.Errorf("unsupported currency %q (expected RON or EUR)", s)
	}
}
