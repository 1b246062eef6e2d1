package errors

import (
	"unicode"
)

// ValidateFrontalCount checks the length invariant of a conditional:
// 0 <= nrFrontals <= total.
func ValidateFrontalCount(nrFrontals, total int) error {
	if nrFrontals < 0 {
		return New(ErrCodeInvalidFrontalCount, "frontal count %d is negative", nrFrontals)
	}
	if nrFrontals > total {
		return New(ErrCodeInvalidFrontalCount, "frontal count %d exceeds %d keys", nrFrontals, total)
	}
	return nil
}

// ValidateLabel validates a rendering label.
//
// Labels prefix single-line renderings, so they must not contain control
// characters (including newlines) and are limited to 128 characters.
func ValidateLabel(label string) error {
	if len(label) > 128 {
		return New(ErrCodeInvalidInput, "label too long (max 128 characters)")
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}
	return nil
}
