package listview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Config holds the options of a View.
type Config struct {
	// Axis is the scroll direction. Defaults to Vertical.
	Axis ScrollAxis
	// ScrollPadding is the number of cells kept visible before and after the
	// selected item where possible. Zero disables it.
	ScrollPadding int
	// InfiniteScrolling wraps navigation and the window around the list ends.
	InfiniteScrolling bool
	// Style is applied to the whole list area before anything is drawn.
	Style lipgloss.Style
	// Frame is an optional decoration around the list. It shrinks the
	// viewport by its border thickness.
	Frame *Frame
	// Logger receives a trace event per render.
	Logger zerolog.Logger
}

// DefaultConfig returns a vertical list without padding, wraparound or frame.
func DefaultConfig() Config {
	return Config{
		Axis:   Vertical,
		Style:  lipgloss.NewStyle(),
		Logger: zerolog.Nop(),
	}
}

// View renders ItemCount items produced lazily by Builder.
type View[T Item] struct {
	ItemCount int
	Builder   Builder[T]
	Config    Config
}

// New creates a View with the default configuration.
func New[T Item](builder Builder[T], itemCount int) *View[T] {
	return &View[T]{
		ItemCount: itemCount,
		Builder:   builder,
		Config:    DefaultConfig(),
	}
}

// FromSlice creates a View over a fixed slice of single-cell items.
func FromSlice[T Item](items []T) *View[T] {
	return New[T](func(ctx BuildContext) (T, int) {
		return items[ctx.Index], 1
	}, len(items))
}

// Len returns the number of items.
func (v *View[T]) Len() int { return v.ItemCount }

// IsEmpty reports whether the list has no items.
func (v *View[T]) IsEmpty() bool { return v.ItemCount == 0 }

// Render lays the list out in area, draws the visible items onto buf and
// updates state. It returns the drawn entries with areas in buffer
// coordinates.
func (v *View[T]) Render(area Rect, buf *Buffer, state *State) []Entry {
	cfg := v.Config
	state.SetItemCount(v.ItemCount)
	state.SetInfinite(cfg.InfiniteScrolling)

	buf.SetStyle(area, cfg.Style)
	cfg.Frame.Render(area, buf)
	inner := cfg.Frame.Inner(area)

	mainExtent, crossExtent := cfg.Axis.extents(inner)
	elements := Layout(state, v.ItemCount, v.Builder, mainExtent, crossExtent, LayoutOptions{
		Axis:          cfg.Axis,
		ScrollPadding: cfg.ScrollPadding,
		Infinite:      cfg.InfiniteScrolling,
	})

	entries := make([]Entry, 0, len(elements))
	for _, el := range elements {
		entry := el.Entry
		entry.Area.X += inner.X
		entry.Area.Y += inner.Y
		entries = append(entries, entry)
		if entry.Area.IsEmpty() {
			continue
		}
		if entry.Truncated.Leading > 0 || entry.Truncated.Trailing > 0 {
			renderTruncated(el.Item, entry, buf, cfg.Style, cfg.Axis)
			continue
		}
		el.Item.Render(entry.Area, buf)
	}

	cfg.Logger.Trace().
		Int("items", v.ItemCount).
		Int("offset", state.ScrollOffsetIndex()).
		Int("first_truncated", state.FirstTruncated()).
		Int("entries", len(entries)).
		Int("content_length", state.ContentLength()).
		Msg("list rendered")

	return entries
}

// renderTruncated draws item into a scratch buffer of its full size and copies
// the visible part into buf.
func renderTruncated(item Item, entry Entry, buf *Buffer, base lipgloss.Style, axis ScrollAxis) {
	area := entry.Area
	full := NewRect(area.X, area.Y, area.Width, entry.Size)
	visible := NewRect(area.X, area.Y+entry.Truncated.Leading, area.Width, area.Height)
	if axis == Horizontal {
		full = NewRect(area.X, area.Y, entry.Size, area.Height)
		visible = NewRect(area.X+entry.Truncated.Leading, area.Y, area.Width, area.Height)
	}

	hidden := NewBuffer(full)
	hidden.SetStyle(full, base)
	item.Render(full, hidden)
	buf.CopyFrom(hidden, visible, area.X, area.Y)
}
