package utils

import (
	"strings"
	"unicode"
)

// NormalizePhone strips whitespace from a phone number and reports whether
// the rest is exactly ten digits.
func NormalizePhone(raw string) (string, bool) {
	phone := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if len(phone) != 10 {
		return phone, false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return phone, false
		}
	}
	return phone, true
}
