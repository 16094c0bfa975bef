package listview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// Frame is an optional decoration drawn around the list. Empty border sides
// take no space.
type Frame struct {
	Border lipgloss.Border
	Style  lipgloss.Style
	Title  string
}

// thickness returns the cells taken by each side.
func (f *Frame) thickness() (int, int, int, int) {
	side := func(s string) int {
		if s == "" {
			return 0
		}
		return 1
	}
	b := f.Border
	return side(b.Top), side(b.Right), side(b.Bottom), side(b.Left)
}

// Inner returns the part of area left for content.
func (f *Frame) Inner(area Rect) Rect {
	if f == nil {
		return area
	}
	top, right, bottom, left := f.thickness()
	return area.Inset(top, right, bottom, left)
}

// Render draws the frame onto buf.
func (f *Frame) Render(area Rect, buf *Buffer) {
	if f == nil || area.IsEmpty() {
		return
	}
	b := f.Border
	top, right, bottom, left := f.thickness()
	x0, y0 := area.X, area.Y
	x1, y1 := area.Right()-1, area.Bottom()-1

	if top > 0 {
		for x := x0; x <= x1; x++ {
			buf.SetString(x, y0, b.Top, f.Style)
		}
	}
	if bottom > 0 {
		for x := x0; x <= x1; x++ {
			buf.SetString(x, y1, b.Bottom, f.Style)
		}
	}
	if left > 0 {
		for y := y0; y <= y1; y++ {
			buf.SetString(x0, y, b.Left, f.Style)
		}
	}
	if right > 0 {
		for y := y0; y <= y1; y++ {
			buf.SetString(x1, y, b.Right, f.Style)
		}
	}
	corner := func(x, y int, s string, ok bool) {
		if ok && s != "" {
			buf.SetString(x, y, s, f.Style)
		}
	}
	corner(x0, y0, b.TopLeft, top > 0 && left > 0)
	corner(x1, y0, b.TopRight, top > 0 && right > 0)
	corner(x0, y1, b.BottomLeft, bottom > 0 && left > 0)
	corner(x1, y1, b.BottomRight, bottom > 0 && right > 0)

	if f.Title != "" && top > 0 {
		// Keep the corners intact.
		limit := area.Width - left - right
		title := truncateWidth(f.Title, limit)
		buf.SetString(x0+left, y0, title, f.Style)
	}
}

// truncateWidth cuts s to at most width cells.
func truncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	out, used := "", 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if used+gr.Width() > width {
			break
		}
		out += gr.Str()
		used += gr.Width()
	}
	return out
}
