package listview

import "fmt"

// ScrollAxis selects which viewport dimension the list scrolls along.
type ScrollAxis int

const (
	// Vertical scrolls along the height of the viewport. This is the default.
	Vertical ScrollAxis = iota
	// Horizontal scrolls along the width of the viewport.
	Horizontal
)

// String returns the lowercase axis name.
func (a ScrollAxis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("ScrollAxis(%d)", int(a))
	}
}

// ParseScrollAxis converts an axis name into a ScrollAxis.
func ParseScrollAxis(s string) (ScrollAxis, error) {
	switch s {
	case "", "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
	}
}

// extents splits an area into its main and cross axis sizes.
func (a ScrollAxis) extents(area Rect) (int, int) {
	if a == Horizontal {
		return area.Width, area.Height
	}
	return area.Height, area.Width
}

// rect builds a rect from main/cross positions and sizes.
func (a ScrollAxis) rect(mainPos, crossPos, mainSize, crossSize int) Rect {
	if a == Horizontal {
		return NewRect(mainPos, crossPos, mainSize, crossSize)
	}
	return NewRect(crossPos, mainPos, crossSize, mainSize)
}

// Item is anything that can draw itself into a region of a Buffer.
type Item interface {
	Render(area Rect, buf *Buffer)
}

// BuildContext describes the slot an item is being built for.
type BuildContext struct {
	// Index is the position of the item in the list.
	Index int
	// IsSelected reports whether the item is the current selection.
	IsSelected bool
	// Axis is the scroll axis of the list.
	Axis ScrollAxis
	// CrossAxisSize is the extent every item spans perpendicular to scrolling.
	CrossAxisSize int
}

// Builder produces the item at ctx.Index together with its extent along the
// scroll axis. It may be called more than once per index during a layout pass
// and should be cheap and free of side effects.
type Builder[T any] func(ctx BuildContext) (T, int)

// ItemFunc adapts a plain function to the Item interface.
type ItemFunc func(area Rect, buf *Buffer)

// Render implements Item.
func (f ItemFunc) Render(area Rect, buf *Buffer) { f(area, buf) }
