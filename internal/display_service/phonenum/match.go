package phonenum

import "regexp"

// possibleNumberPattern accepts a dialable phone-number shape: an optional
// +country part, an optional (area) part, then digits joined by dash, space
// or dot. The whole string must match. Numbers containing letters
// ("1-800-FLOWERS") or unusual punctuation are rejected; callers rely on
// that strictness to avoid false positives on ordinary text.
var possibleNumberPattern = regexp.MustCompile(`^(\+[0-9]+[\- .]*)?(\([0-9]+\)[\- .]*)?([0-9][0-9\- .]+[0-9])$`)

// globalNumberPattern accepts the fully qualified form carriers accept
// verbatim: an optional leading + followed by digits, dots and dashes.
var globalNumberPattern = regexp.MustCompile(`^\+?[0-9.\-]+$`)

// IsPossibleNumber reports whether text as a whole looks like a phone
// number. Empty input is not a number.
func IsPossibleNumber(text string) bool {
	if text == "" {
		return false
	}
	return possibleNumberPattern.MatchString(text)
}

// IsGlobalNumber reports whether number is in globally dialable form.
// Empty input is not a number.
func IsGlobalNumber(number string) bool {
	if number == "" {
		return false
	}
	return globalNumberPattern.MatchString(number)
}
