package listview

// State is the selection and scroll position of a list. It is owned by the
// caller across renders. Selection changes are O(1); the scroll window only
// follows the selection on the next layout pass.
//
// A State must not be shared by concurrent renders.
type State struct {
	selected    int
	hasSelected bool

	// offset is the index of the first item in the window.
	offset int
	// firstTruncated is how many leading cells of the first item are hidden.
	firstTruncated int
	// contentLength is the summed untruncated extent of the last window.
	contentLength int

	// numElements and infinite mirror the list the state was last rendered
	// with so navigation can wrap or saturate without a layout pass.
	numElements int
	infinite    bool
}

// NewState returns a state with nothing selected.
func NewState() *State {
	return &State{}
}

// Selected returns the selected index and whether there is a selection.
func (s *State) Selected() (int, bool) {
	return s.selected, s.hasSelected
}

// Select sets the selected index. A negative index clears the selection. The
// scroll offset is left alone; the next layout pass brings the item into view.
func (s *State) Select(index int) {
	if index < 0 {
		s.Deselect()
		return
	}
	s.selected = index
	s.hasSelected = true
}

// Deselect clears the selection.
func (s *State) Deselect() {
	s.selected = 0
	s.hasSelected = false
}

// SelectNext selects the following item, wrapping to the first one when
// infinite scrolling is enabled. With nothing selected the first item is
// selected.
func (s *State) SelectNext() {
	if s.numElements == 0 {
		return
	}
	if !s.hasSelected {
		s.Select(0)
		return
	}
	s.SelectBy(1)
}

// SelectPrevious selects the preceding item, wrapping to the last one when
// infinite scrolling is enabled. With nothing selected the first item is
// selected.
func (s *State) SelectPrevious() {
	if s.numElements == 0 {
		return
	}
	if !s.hasSelected {
		s.Select(0)
		return
	}
	s.SelectBy(-1)
}

// SelectFirst selects the first item.
func (s *State) SelectFirst() {
	if s.numElements == 0 {
		return
	}
	s.Select(0)
}

// SelectLast selects the last item.
func (s *State) SelectLast() {
	if s.numElements == 0 {
		return
	}
	s.Select(s.numElements - 1)
}

// SelectBy moves the selection by delta items. Movement wraps modulo the item
// count when infinite scrolling is enabled and saturates at the ends otherwise.
func (s *State) SelectBy(delta int) {
	n := s.numElements
	if n == 0 {
		return
	}
	cur := 0
	if s.hasSelected {
		cur = min(s.selected, n-1)
	}
	next := cur + delta
	if s.infinite {
		next = wrap(next, n)
	} else {
		next = max(0, min(next, n-1))
	}
	s.Select(next)
}

// ScrollOffsetIndex returns the index of the first item in the window.
func (s *State) ScrollOffsetIndex() int {
	return s.offset
}

// FirstTruncated returns how many leading cells of the first item are hidden.
func (s *State) FirstTruncated() int {
	return s.firstTruncated
}

// ContentLength returns the untruncated extent of the last laid out window.
func (s *State) ContentLength() int {
	return s.contentLength
}

// ItemCount returns the item count recorded by the last render.
func (s *State) ItemCount() int {
	return s.numElements
}

// SetItemCount records the item count so navigation works before the first
// render. Callers shrinking the list are responsible for re-selecting.
func (s *State) SetItemCount(n int) {
	s.numElements = max(n, 0)
}

// Infinite reports whether navigation wraps around.
func (s *State) Infinite() bool {
	return s.infinite
}

// SetInfinite enables or disables wraparound navigation.
func (s *State) SetInfinite(infinite bool) {
	s.infinite = infinite
}

// validSelection returns the selection if it is within [0, n).
func (s *State) validSelection(n int) (int, bool) {
	if !s.hasSelected || s.selected >= n {
		return 0, false
	}
	return s.selected, true
}

// wrap maps i into [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
