package journal

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	entries := []Entry{
		{
			ID:      "1",
			Date:    &day,
			Bias:    []string{"buy"},
			Array:   []string{"FVG", "OB"},
			Results: []string{"Win"},
			PNL:     150.25,
			Reason:  "trend continuation",
		},
		{ID: "2"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entries))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2024-03-05", rows[1][1])
	assert.Equal(t, "FVG, OB", rows[1][6])
	assert.Equal(t, "150.25", rows[1][8])

	// Nil date exports as empty, pnl as plain zero.
	assert.Equal(t, "", rows[2][1])
	assert.Equal(t, "0", rows[2][8])
}
