package editor

import (
	"sync"

	"github.com/rustyeddy/tradejournal/journal"
)

// Target identifies the single cell being edited: an entry, a field, and
// optionally a sub-panel for fields whose display is split (the bias
// panel, or the before/during/after emotion panels). The sub-panel only
// disambiguates which panel is open; the mutated entry field is always
// Field.
type Target struct {
	EntryID string
	Field   journal.Field
	Sub     string
}

// Coordinator tracks which cell is in edit mode. At most one target is
// active at any time: opening a new target implicitly closes whichever
// was active, no blur required.
type Coordinator struct {
	mu     sync.Mutex
	active *Target
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Open makes t the active target, displacing any previous one.
func (c *Coordinator) Open(t Target) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = &t
}

// Close deactivates the current target, if any.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = nil
}

// Active returns the current target and whether one is open.
func (c *Coordinator) Active() (Target, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return Target{}, false
	}
	return *c.active, true
}

// IsEditing reports whether t is the active target. Identity is the
// exact (entry, field, sub) tuple, so phase panels of the same logical
// field never report each other as editing.
func (c *Coordinator) IsEditing(t Target) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil && *c.active == t
}
