package listview

// Truncation is the number of cells cropped from each end of an item along
// the scroll axis.
type Truncation struct {
	Leading  int
	Trailing int
}

// Entry is one laid out item. Area is relative to the viewport origin.
type Entry struct {
	Index     int
	Area      Rect
	Size      int
	Truncated Truncation
}

// Element pairs a laid out entry with the item that was built for it.
type Element[T any] struct {
	Entry
	Item T
}

// LayoutOptions controls how the window follows the selection.
type LayoutOptions struct {
	Axis          ScrollAxis
	ScrollPadding int
	Infinite      bool
}

// candidate is an item considered for the window. pos is the start of the
// item along the main axis and is negative when the item is cut at the top.
type candidate struct {
	index int
	size  int
	pos   int
}

// window is the result of one forward pass.
type window struct {
	first      int
	lead       int
	cands      []candidate
	end        int
	reachedEnd bool
}

// pass holds everything a single layout invocation needs. Sizes and items
// are memoized so the builder runs once per index per pass.
type pass[T any] struct {
	n        int
	extent   int
	cross    int
	opts     LayoutOptions
	build    Builder[T]
	selected int
	hasSel   bool
	sizes    map[int]int
	items    map[int]T
}

func (p *pass[T]) size(i int) int {
	if sz, ok := p.sizes[i]; ok {
		return sz
	}
	item, sz := p.build(BuildContext{
		Index:         i,
		IsSelected:    p.hasSel && i == p.selected,
		Axis:          p.opts.Axis,
		CrossAxisSize: p.cross,
	})
	// Negative sizes are a builder bug; treat them as empty.
	sz = max(sz, 0)
	p.sizes[i] = sz
	p.items[i] = item
	return sz
}

func (p *pass[T]) next(i int) (int, bool) {
	if p.opts.Infinite {
		return wrap(i+1, p.n), true
	}
	if i+1 >= p.n {
		return 0, false
	}
	return i + 1, true
}

func (p *pass[T]) prev(i int) (int, bool) {
	if p.opts.Infinite {
		return wrap(i-1, p.n), true
	}
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}

// distance is the number of forward steps from i to j.
func (p *pass[T]) distance(i, j int) int {
	if p.opts.Infinite {
		return wrap(j-i, p.n)
	}
	return j - i
}

// back moves i back by k items.
func (p *pass[T]) back(i, k int) int {
	if p.opts.Infinite {
		return wrap(i-k, p.n)
	}
	return max(i-k, 0)
}

// forward lays out items starting at first, hiding lead cells of the first
// item, until the viewport is full or the items run out. No index is visited
// twice even when wrapping.
func (p *pass[T]) forward(first, lead int) window {
	lead = max(0, min(lead, p.size(first)-1))
	w := window{first: first, lead: lead}
	pos := -lead
	i := first
	for count := 1; ; count++ {
		sz := p.size(i)
		w.cands = append(w.cands, candidate{index: i, size: sz, pos: pos})
		pos += sz
		if pos >= p.extent {
			// Empty items sitting exactly on the edge are still on screen.
			for pos == p.extent && count < p.n {
				nx, ok := p.next(i)
				if !ok || p.size(nx) != 0 {
					break
				}
				i = nx
				count++
				w.cands = append(w.cands, candidate{index: i, pos: pos})
			}
			break
		}
		nx, ok := p.next(i)
		if !ok || count >= p.n {
			w.reachedEnd = true
			break
		}
		i = nx
	}
	w.end = pos
	return w
}

// anchorBottom returns the window start that places the end of item last on
// the end of the viewport. The first item may be partially hidden.
func (p *pass[T]) anchorBottom(last int) (int, int) {
	acc := 0
	i := last
	for count := 1; ; count++ {
		sz := p.size(i)
		if acc+sz >= p.extent {
			return i, acc + sz - p.extent
		}
		acc += sz
		pv, ok := p.prev(i)
		if !ok || count >= p.n {
			return i, 0
		}
		i = pv
	}
}

// find returns the candidate for index i.
func (w window) find(i int) (candidate, int, bool) {
	for k, c := range w.cands {
		if c.index == i {
			return c, k, true
		}
	}
	return candidate{}, 0, false
}

// fullyVisible reports whether item i is entirely on screen. An item larger
// than the viewport counts as visible when it starts at the origin.
func (p *pass[T]) fullyVisible(w window, i int) bool {
	c, _, ok := w.find(i)
	if !ok || c.pos < 0 {
		return false
	}
	return c.pos+c.size <= p.extent || c.pos == 0
}

// selectionBefore reports whether the selection should be brought in at the
// top of the viewport rather than the bottom.
func (p *pass[T]) selectionBefore(w window, s int) bool {
	if _, k, ok := w.find(s); ok {
		return k == 0
	}
	if !p.opts.Infinite {
		return s < w.first
	}
	d := p.distance(w.first, s)
	after := d - (len(w.cands) - 1)
	before := p.n - d
	return before < after
}

// follow moves the window onto the selection when it is not fully visible.
func (p *pass[T]) follow(w window, s int) window {
	if p.fullyVisible(w, s) {
		return w
	}
	if p.selectionBefore(w, s) || p.size(s) >= p.extent {
		return p.forward(s, 0)
	}
	return p.forward(p.anchorBottom(s))
}

// fill pulls earlier items into view when the list ends before the viewport
// does, so the last item sits on the end of the viewport.
func (p *pass[T]) fill(w window) window {
	if !w.reachedEnd || w.end >= p.extent {
		return w
	}
	last := w.cands[len(w.cands)-1].index
	first, lead := p.anchorBottom(last)
	if first == w.first && lead == w.lead {
		return w
	}
	return p.forward(first, lead)
}

// Layout computes the visible window for a list of count items inside a
// viewport of mainExtent by crossExtent cells and updates state to match.
// The returned elements are ordered along the main axis; their areas are
// relative to the viewport origin.
func Layout[T any](
	state *State,
	count int,
	build Builder[T],
	mainExtent, crossExtent int,
	opts LayoutOptions,
) []Element[T] {
	if count <= 0 {
		state.offset, state.firstTruncated, state.contentLength = 0, 0, 0
		return nil
	}
	if mainExtent <= 0 {
		return nil
	}

	p := &pass[T]{
		n:      count,
		extent: mainExtent,
		cross:  max(crossExtent, 0),
		opts:   opts,
		build:  build,
		sizes:  make(map[int]int),
		items:  make(map[int]T),
	}
	p.selected, p.hasSel = state.validSelection(count)

	offset, lead := state.offset, state.firstTruncated
	if offset < 0 || offset >= count {
		if opts.Infinite {
			offset = wrap(offset, count)
		} else {
			offset = count - 1
		}
		lead = 0
	}

	w := p.forward(offset, lead)
	if p.hasSel {
		w = p.follow(w, p.selected)
	}
	w = p.fill(w)

	if p.hasSel {
		if shift, adjust := p.resolveScrollPadding(w, p.selected); adjust {
			w = p.fill(p.forward(p.back(w.first, -shift), 0))
		}
	}

	elements := p.elements(w)
	state.offset = w.first
	state.firstTruncated = w.lead
	state.contentLength = 0
	for _, e := range elements {
		state.contentLength += e.Size
	}
	return elements
}

// elements converts candidates into viewport relative entries.
func (p *pass[T]) elements(w window) []Element[T] {
	out := make([]Element[T], 0, len(w.cands))
	for _, c := range w.cands {
		start := max(c.pos, 0)
		end := min(c.pos+c.size, p.extent)
		if c.size > 0 && end <= start {
			continue
		}
		extent := max(end-start, 0)
		out = append(out, Element[T]{
			Entry: Entry{
				Index: c.index,
				Area:  p.opts.Axis.rect(start, 0, extent, p.cross),
				Size:  c.size,
				Truncated: Truncation{
					Leading:  start - c.pos,
					Trailing: max(c.pos+c.size-end, 0),
				},
			},
			Item: p.items[c.index],
		})
	}
	return out
}
