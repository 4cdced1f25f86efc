package helper

import (
	"errors"
	"strings"
)

var ErrInvalidPhone = errors.New("phone must be exactly 10 digits")

// NormalizePhone strips everything but ASCII digits and requires exactly ten of them.
// No country-code stripping: "+91 98765 43210" is 12 digits and is rejected.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) != 10 {
		return "", ErrInvalidPhone
	}
	return out, nil
}
