package phonenum

import (
	"strings"

	"github.com/dialware/golang_services/internal/display_service/domain"
)

// AnnotateTelephoneNumbers marks every non-overlapping occurrence of number
// inside message with a telephone span. Matching is literal and
// case-sensitive; the scan is greedy leftmost, resuming at the end of the
// previous match. The message text is returned untouched, spans are an
// overlay.
//
// A nil message yields nil. A nil number yields the message with no spans.
// The span metadata is built once from the number itself, not from the
// matched slice.
func AnnotateTelephoneNumbers(message, number *string) *domain.AnnotatedMessage {
	if message == nil {
		return nil
	}
	annotated := &domain.AnnotatedMessage{Text: *message}
	if number == nil || *number == "" {
		// strings.Index finds "" at every offset; nothing real to mark.
		return annotated
	}

	countryCode, nationalNumber := SpanData(*number)

	searchFrom := 0
	for {
		i := strings.Index(annotated.Text[searchFrom:], *number)
		if i < 0 {
			break
		}
		start := searchFrom + i
		end := start + len(*number)
		annotated.Spans = append(annotated.Spans, domain.TelephoneSpan{
			Start:          start,
			End:            end,
			Number:         *number,
			CountryCode:    countryCode,
			NationalNumber: nationalNumber,
		})
		searchFrom = end
	}
	return annotated
}
