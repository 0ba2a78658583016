package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEntryOrg(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	e := Entry{
		ID:       "12",
		Date:     &day,
		Bias:     []string{"sell"},
		Array:    []string{"FVG"},
		Results:  []string{"Loss"},
		PNL:      -42.5,
		Emotions: []string{"Calm"},
		Mistake:  "moved the stop",
	}

	out := FormatEntryOrg(e)

	assert.True(t, strings.HasPrefix(out, "** Trade 12 (2024-03-05)"))
	assert.Contains(t, out, ":PROPERTIES:")
	assert.Contains(t, out, ":BIAS: sell")
	assert.Contains(t, out, ":PNL: -42.5")
	assert.Contains(t, out, "*** Mistake\nmoved the stop")
	// Empty phase sets render with the general-emotions fallback.
	assert.Contains(t, out, ":BEFORE: Calm")
	// No Reason section when the note is empty.
	assert.NotContains(t, out, "*** Reason")
}

func TestFormatEntriesOrg(t *testing.T) {
	t.Parallel()

	out := FormatEntriesOrg([]Entry{{ID: "1"}, {ID: "2"}})
	assert.Contains(t, out, "** Trade 1 (no date)")
	assert.Contains(t, out, "** Trade 2 (no date)")
}
