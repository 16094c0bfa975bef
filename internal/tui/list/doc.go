// Package listview lays out and renders scrollable lists of variably sized items.
//
// Items are produced lazily by a Builder that reports each item's extent along the
// scroll axis, so only the items inside the viewport are ever built. Key features:
//   - Vertical or horizontal scrolling; items always span the cross axis
//   - Partial items at either edge are truncated rather than skipped
//   - The window follows the selection and keeps optional scroll padding around it
//   - Infinite scrolling wraps the window and navigation around the list ends
//   - A Bubble Tea model with keyboard navigation and lipgloss styling
//
// Layout work is bounded by the viewport size, not by the item count, which keeps
// lists with millions of items responsive.
package listview
