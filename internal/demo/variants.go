package demo

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	listview "github.com/rshade/widgetlist/internal/tui/list"
)

// ErrUnknownVariant is returned by Lookup for names no variant answers to.
const ErrUnknownVariant = constError("unknown demo variant")

type constError string

func (e constError) Error() string { return string(e) }

// DefaultVariant is used when no variant name is given.
const DefaultVariant = "simple"

// Variant is a named demo list.
type Variant struct {
	Name         string
	Description  string
	DefaultCount int
	build        func(n int, theme Theme) *listview.View[listview.Item]
}

// View builds the variant's list with count items, or DefaultCount when count
// is not positive.
func (v Variant) View(count int, theme Theme) *listview.View[listview.Item] {
	if count <= 0 {
		count = v.DefaultCount
	}
	return v.build(count, theme)
}

// Variants returns every demo variant in display order.
func Variants() []Variant {
	return []Variant{
		{Name: "simple", Description: "single-row items", DefaultCount: 50, build: simpleView},
		{Name: "sizes", Description: "bordered cards of varying height", DefaultCount: 30, build: sizesView},
		{Name: "horizontal", Description: "columns scrolling left to right", DefaultCount: 10, build: horizontalView},
		{Name: "padding", Description: "three-row items with scroll padding", DefaultCount: 30, build: paddingView},
		{Name: "infinite", Description: "ten thousand rows that wrap around", DefaultCount: 10_000, build: infiniteView},
		{Name: "paragraph", Description: "text wrapped to the list width", DefaultCount: 20, build: paragraphView},
	}
}

// Lookup returns the variant called name. An empty name selects DefaultVariant.
func Lookup(name string) (Variant, error) {
	if name == "" {
		name = DefaultVariant
	}
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Names returns the names of all variants.
func Names() []string {
	variants := Variants()
	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, v.Name)
	}
	return names
}

func simpleView(n int, theme Theme) *listview.View[listview.Item] {
	return listview.New[listview.Item](func(ctx listview.BuildContext) (listview.Item, int) {
		return TextItem{Text: fmt.Sprintf("Item %d", ctx.Index), Style: theme.ItemStyle(ctx)}, 1
	}, n)
}

func sizesView(n int, theme Theme) *listview.View[listview.Item] {
	return listview.New[listview.Item](func(ctx listview.BuildContext) (listview.Item, int) {
		height := 3 + ctx.Index%3
		text := fmt.Sprintf("Item %d (%d rows)", ctx.Index, height)
		return NewCard(text, theme.ItemStyle(ctx), theme.Border), height
	}, n)
}

func horizontalView(n int, theme Theme) *listview.View[listview.Item] {
	view := listview.New[listview.Item](func(ctx listview.BuildContext) (listview.Item, int) {
		return TextItem{Text: fmt.Sprintf("Item %d", ctx.Index), Style: theme.ItemStyle(ctx), PadTop: 1}, 20
	}, n)
	view.Config.Axis = listview.Horizontal
	return view
}

func paddingView(n int, theme Theme) *listview.View[listview.Item] {
	view := listview.New[listview.Item](func(ctx listview.BuildContext) (listview.Item, int) {
		return TextItem{Text: fmt.Sprintf("Item %d", ctx.Index), Style: theme.ItemStyle(ctx), PadTop: 1}, 3
	}, n)
	view.Config.ScrollPadding = 4
	return view
}

func infiniteView(n int, theme Theme) *listview.View[listview.Item] {
	printer := message.NewPrinter(language.English)
	view := listview.New[listview.Item](func(ctx listview.BuildContext) (listview.Item, int) {
		text := printer.Sprintf("Row %d of %d", ctx.Index+1, n)
		return TextItem{Text: text, Style: theme.ItemStyle(ctx)}, 1
	}, n)
	view.Config.InfiniteScrolling = true
	return view
}

//nolint:gochecknoglobals // Fixed sample text.
var paragraphBodies = []string{
	"Items are built lazily, so only the rows near the viewport are ever constructed.",
	"A paragraph wraps to whatever width the list gives it and reports its own height.",
	"When an item does not fit it is cut at the edge of the viewport instead of being skipped.",
	"Selecting an item far away moves the window just enough to show it in full.",
}

func paragraphView(n int, theme Theme) *listview.View[listview.Item] {
	return listview.New[listview.Item](func(ctx listview.BuildContext) (listview.Item, int) {
		body := strings.Repeat(paragraphBodies[ctx.Index%len(paragraphBodies)]+" ", 1+ctx.Index%3)
		p := NewParagraph(fmt.Sprintf("Paragraph %d", ctx.Index), strings.TrimSpace(body), ctx.CrossAxisSize, theme.ItemStyle(ctx))
		return p, p.Height()
	}, n)
}
