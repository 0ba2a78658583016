package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/journal"
)

func TestOpenDisplacesActiveTarget(t *testing.T) {
	t.Parallel()

	c := NewCoordinator()
	a := Target{EntryID: "1", Field: journal.FieldReason}
	b := Target{EntryID: "2", Field: journal.FieldPNL}

	c.Open(a)
	require.True(t, c.IsEditing(a))

	// Opening B without closing A: exactly B is active afterwards.
	c.Open(b)
	assert.False(t, c.IsEditing(a))
	assert.True(t, c.IsEditing(b))

	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, b, active)
}

func TestClose(t *testing.T) {
	t.Parallel()

	c := NewCoordinator()
	c.Open(Target{EntryID: "1", Field: journal.FieldDate})
	c.Close()

	_, ok := c.Active()
	assert.False(t, ok)
	assert.False(t, c.IsEditing(Target{EntryID: "1", Field: journal.FieldDate}))
}

func TestIdentityIsFullTuple(t *testing.T) {
	t.Parallel()

	c := NewCoordinator()
	before := Target{EntryID: "1", Field: journal.FieldBefore, Sub: "before"}
	after := Target{EntryID: "1", Field: journal.FieldAfter, Sub: "after"}

	c.Open(before)
	assert.True(t, c.IsEditing(before))
	// A different panel of the same entry never reports as editing.
	assert.False(t, c.IsEditing(after))

	// Same entry and field but a different sub-panel is a different
	// target.
	biasCell := Target{EntryID: "1", Field: journal.FieldBias}
	biasPanel := Target{EntryID: "1", Field: journal.FieldBias, Sub: "bias"}
	c.Open(biasCell)
	assert.False(t, c.IsEditing(biasPanel))
	assert.True(t, c.IsEditing(biasCell))
}
