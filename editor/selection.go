package editor

// Rect is the screen rectangle of the cell a selection editor anchors
// to, and Point is where the rendering layer chose to place it.
// Placement is presentation: the buffer only carries the result through.
type Rect struct {
	X, Y, W, H int
}

type Point struct {
	X, Y int
}

// PlaceFunc computes where to put the editor overlay for an anchor
// rectangle. Supplied by the rendering layer.
type PlaceFunc func(anchor Rect) Point

// Selection stages a multi-select editor's in-progress choices. Toggling
// mutates only the buffer; nothing reaches the entry or the network
// until Apply. Cancel and Dismiss discard the buffer, so an accidental
// outside click can never persist a partial selection.
type Selection struct {
	place   PlaceFunc
	open    bool
	pending []string
	pos     Point
}

// NewSelection creates a closed buffer. place may be nil when the caller
// does not render an overlay.
func NewSelection(place PlaceFunc) *Selection {
	return &Selection{place: place}
}

// Open seeds the buffer from the field's current display value and
// requests a placement for the anchor. The owning entry is not touched.
func (s *Selection) Open(current []string, anchor Rect) {
	s.pending = append([]string(nil), current...)
	if s.place != nil {
		s.pos = s.place(anchor)
	}
	s.open = true
}

// Toggle flips membership of tag in the pending set, preserving the
// order of the remaining tags.
func (s *Selection) Toggle(tag string) {
	if !s.open {
		return
	}
	for i, t := range s.pending {
		if t == tag {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	s.pending = append(s.pending, tag)
}

// Pending returns a copy of the staged selection.
func (s *Selection) Pending() []string {
	return append([]string(nil), s.pending...)
}

// Has reports whether tag is currently staged.
func (s *Selection) Has(tag string) bool {
	for _, t := range s.pending {
		if t == tag {
			return true
		}
	}
	return false
}

// Apply closes the buffer and returns the staged selection for the
// caller to commit as one unit.
func (s *Selection) Apply() []string {
	out := s.pending
	s.pending = nil
	s.open = false
	return out
}

// Cancel discards the staged selection and closes. There is nothing to
// restore: the entry was never mutated.
func (s *Selection) Cancel() {
	s.pending = nil
	s.open = false
}

// Dismiss handles loss of focus outside the editor. Equivalent to
// Cancel.
func (s *Selection) Dismiss() {
	s.Cancel()
}

// IsOpen reports whether the editor is open.
func (s *Selection) IsOpen() bool {
	return s.open
}

// Position returns the placement chosen when the buffer was opened.
func (s *Selection) Position() Point {
	return s.pos
}
