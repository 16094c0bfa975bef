package listview

// resolveScrollPadding checks that at least ScrollPadding cells stay visible
// on both sides of the selected item s. When they do not, it returns the
// signed number of whole items the window start has to move (positive moves
// it later) and adjust is true; the window is then re-laid out from that item
// with no leading truncation.
//
// Padding is clipped where the list ends (unless scrolling is infinite) and
// shared out when the viewport is too small for both sides: the selected item
// stays visible first, the rest goes to whichever side has room. The target
// start depends only on s and the item sizes, so resolving an already resolved
// window never moves it again.
func (p *pass[T]) resolveScrollPadding(w window, s int) (int, bool) {
	padding := p.opts.ScrollPadding
	if padding <= 0 {
		return 0, false
	}
	c, _, ok := w.find(s)
	if !ok {
		return 0, false
	}

	before := min(padding, p.reach(s, padding, p.prev))
	after := min(padding, p.reach(s, padding, p.next))
	if room := max(p.extent-c.size, 0); before+after > room {
		before, after = sharePadding(before, after, room)
	}

	topOK := c.pos >= before
	bottomOK := c.pos+c.size+after <= p.extent
	if topOK && bottomOK {
		return 0, false
	}

	latest := p.itemsToFill(s, before)
	earliest := p.itemsFitting(s, c.size+after)
	target := earliest
	if bottomOK {
		target = min(latest, earliest)
	}
	current := p.distance(w.first, s)
	return current - target, true
}

// reach sums item sizes walking away from s with step until limit cells are
// covered or the list ends. It never visits more than n-1 items.
func (p *pass[T]) reach(s, limit int, step func(int) (int, bool)) int {
	acc := 0
	i := s
	for k := 1; k < p.n && acc < limit; k++ {
		nx, ok := step(i)
		if !ok {
			break
		}
		acc += p.size(nx)
		i = nx
	}
	return acc
}

// itemsToFill returns the fewest items before s whose sizes add up to at
// least cells, stopping at the start of the list.
func (p *pass[T]) itemsToFill(s, cells int) int {
	acc, j := 0, 0
	i := s
	for acc < cells && j < p.n-1 {
		pv, ok := p.prev(i)
		if !ok {
			break
		}
		acc += p.size(pv)
		i = pv
		j++
	}
	return j
}

// itemsFitting returns the most items before s that still fit in the
// viewport together with used cells.
func (p *pass[T]) itemsFitting(s, used int) int {
	if used > p.extent {
		return 0
	}
	acc, j := used, 0
	i := s
	for j < p.n-1 {
		pv, ok := p.prev(i)
		if !ok || acc+p.size(pv) > p.extent {
			break
		}
		acc += p.size(pv)
		i = pv
		j++
	}
	return j
}

// sharePadding splits room between the two sides, half each to start with and
// the remainder to the side that still wants it.
func sharePadding(before, after, room int) (int, int) {
	b := min(before, room/2)
	a := min(after, room-b)
	b = min(before, room-a)
	return b, a
}
