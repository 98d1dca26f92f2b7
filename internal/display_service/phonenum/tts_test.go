package phonenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanData(t *testing.T) {
	t.Run("e164 us number", func(t *testing.T) {
		cc, nn := SpanData("+14155552671")
		assert.Equal(t, "1", cc)
		assert.Equal(t, "4155552671", nn)
	})

	t.Run("e164 uk number", func(t *testing.T) {
		cc, nn := SpanData("+442071838750")
		assert.Equal(t, "44", cc)
		assert.Equal(t, "2071838750", nn)
	})

	t.Run("national number has no region to parse against", func(t *testing.T) {
		cc, nn := SpanData("555-1234")
		assert.Equal(t, "", cc)
		assert.Equal(t, "555 1234", nn)
	})

	t.Run("separators collapse to single spaces", func(t *testing.T) {
		cc, nn := SpanData(" (650)  555.1234 ")
		assert.Equal(t, "", cc)
		assert.Equal(t, "650 555 1234", nn)
	})

	t.Run("no digits at all", func(t *testing.T) {
		cc, nn := SpanData("ext.")
		assert.Equal(t, "", cc)
		assert.Equal(t, "", nn)
	})
}
