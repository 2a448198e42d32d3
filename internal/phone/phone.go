// Package phone normalizes Ugandan mobile numbers into the +256 E.164 form
// expected by the Marz Pay API. Pure functions, no I/O.
package phone

import (
	"fmt"
	"strings"
)

const (
	countryPrefix = "+256"
	// normalized form is "+256" followed by 9 digits
	normalizedLen = 13
)

// Normalize strips formatting characters from raw and canonicalizes the
// result into "+256xxxxxxxxx". Accepted input shapes, in precedence order:
// "+256xxxxxxxxx", "256xxxxxxxxx", "0xxxxxxxxx", or a bare 9-digit "xxxxxxxxx".
// Normalize is idempotent: feeding back its own output returns the same value.
func Normalize(raw string) (string, error) {
	cleaned := clean(raw)

	var number string
	switch {
	case strings.HasPrefix(cleaned, countryPrefix):
		number = cleaned
	case strings.HasPrefix(cleaned, "256"):
		number = "+" + cleaned
	case strings.HasPrefix(cleaned, "0"):
		number = countryPrefix + cleaned[1:]
	case len(cleaned) == 9:
		number = countryPrefix + cleaned
	default:
		return "", fmt.Errorf("invalid phone number format. Accepted formats: +256xxxxxxxxx, 256xxxxxxxxx, 0xxxxxxxxx, or xxxxxxxxx")
	}

	if !strings.HasPrefix(number, countryPrefix) {
		return "", fmt.Errorf("phone number must be a valid Ugandan number")
	}
	if len(number) != normalizedLen {
		return "", fmt.Errorf("invalid phone number length. Expected 9 digits after country code, got %d", len(number)-len(countryPrefix))
	}
	if !isDigits(number[len(countryPrefix):]) {
		return "", fmt.Errorf("phone number must contain only digits after country code")
	}

	return number, nil
}

// clean drops every character except digits and a leading plus sign.
func clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
