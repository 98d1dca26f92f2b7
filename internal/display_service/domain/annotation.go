package domain

// TelephoneSpan marks one occurrence of a phone number inside a message.
// Start is inclusive and End exclusive, so Text[Start:End] == Number.
// CountryCode and NationalNumber are verbalization hints for screen readers;
// when the number cannot be parsed, CountryCode is empty and NationalNumber
// holds the digits with separators collapsed to single spaces.
type TelephoneSpan struct {
	Start          int    `json:"start"`
	End            int    `json:"end"`
	Number         string `json:"number"`
	CountryCode    string `json:"country_code,omitempty"`
	NationalNumber string `json:"national_number"`
}

// AnnotatedMessage is a message text plus the telephone spans found in it.
// The text is never rewritten; spans are an overlay and span ranges never
// overlap each other.
type AnnotatedMessage struct {
	Text  string          `json:"text"`
	Spans []TelephoneSpan `json:"spans"`
}
