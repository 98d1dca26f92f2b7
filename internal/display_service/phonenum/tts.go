package phonenum

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// SpanData derives the spoken-number hints carried by a telephone span.
// The number is parsed with no default region so a bare national number
// never gains a country code it does not literally contain. When parsing
// fails the whole input is reduced to its digit groups instead.
func SpanData(number string) (countryCode, nationalNumber string) {
	parsed, err := phonenumbers.Parse(number, "")
	if err != nil {
		return "", splitAtNonDigits(number)
	}
	if parsed.CountryCode != nil {
		countryCode = strconv.Itoa(int(parsed.GetCountryCode()))
	}
	nationalNumber = strconv.FormatUint(parsed.GetNationalNumber(), 10)
	return countryCode, nationalNumber
}

// splitAtNonDigits replaces every non-digit with a space and collapses the
// result to single-space-separated digit groups. Leading, trailing or
// doubled spaces make screen readers skip the span entirely, so they must
// not survive.
func splitAtNonDigits(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
