// Package demo provides sample items and lists shown by the widgetlist CLI.
package demo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	listview "github.com/rshade/widgetlist/internal/tui/list"
)

// Palette used by the demo lists.
const (
	colorBlack    = lipgloss.Color("#000000")
	colorWhite    = lipgloss.Color("#ffffff")
	colorCharcoal = lipgloss.Color("#1c1c20")
	colorOrange   = lipgloss.Color("#ff9900")
	colorGray     = lipgloss.Color("#606060")
)

// Theme holds the styles applied to demo items.
type Theme struct {
	Even     lipgloss.Style
	Odd      lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTheme returns alternating charcoal and black rows with an orange
// selection.
func DefaultTheme() Theme {
	return Theme{
		Even:     lipgloss.NewStyle().Background(colorCharcoal).Foreground(colorWhite),
		Odd:      lipgloss.NewStyle().Background(colorBlack).Foreground(colorWhite),
		Selected: lipgloss.NewStyle().Background(colorOrange).Foreground(colorCharcoal),
		Border:   lipgloss.NewStyle().Foreground(colorGray),
	}
}

// ItemStyle picks the style for the item described by ctx.
func (t Theme) ItemStyle(ctx listview.BuildContext) lipgloss.Style {
	switch {
	case ctx.IsSelected:
		return t.Selected
	case ctx.Index%2 == 0:
		return t.Even
	default:
		return t.Odd
	}
}

// TextItem is a line of centered text on a filled background. PadTop moves
// the text down from the top edge of the item.
type TextItem struct {
	Text   string
	Style  lipgloss.Style
	PadTop int
}

// Render implements listview.Item.
func (t TextItem) Render(area listview.Rect, buf *listview.Buffer) {
	buf.Fill(area, ' ', t.Style)
	if area.IsEmpty() {
		return
	}
	row := area.Y + min(t.PadTop, area.Height-1)
	line := lipgloss.PlaceHorizontal(area.Width, lipgloss.Center, t.Text)
	buf.SetString(area.X, row, line, t.Style)
}

// Paragraph is a title followed by body text wrapped to a fixed width.
type Paragraph struct {
	Title string
	Style lipgloss.Style
	lines []string
}

// NewParagraph wraps body to width cells.
func NewParagraph(title, body string, width int, style lipgloss.Style) Paragraph {
	wrapped := body
	if width > 0 {
		wrapped = lipgloss.NewStyle().Width(width).Render(body)
	}
	return Paragraph{
		Title: title,
		Style: style,
		lines: strings.Split(wrapped, "\n"),
	}
}

// Height returns the number of rows the paragraph needs.
func (p Paragraph) Height() int {
	return 1 + len(p.lines)
}

// Render implements listview.Item.
func (p Paragraph) Render(area listview.Rect, buf *listview.Buffer) {
	buf.Fill(area, ' ', p.Style)
	buf.SetString(area.X, area.Y, p.Title, p.Style.Bold(true))
	for i, line := range p.lines {
		buf.SetString(area.X, area.Y+1+i, line, p.Style)
	}
}

// Card is a bordered box with a single line of text inside.
type Card struct {
	Text  string
	Style lipgloss.Style
	Frame *listview.Frame
}

// NewCard creates a card with a rounded border.
func NewCard(text string, style, border lipgloss.Style) Card {
	return Card{
		Text:  text,
		Style: style,
		Frame: &listview.Frame{Border: lipgloss.RoundedBorder(), Style: border.Inherit(style)},
	}
}

// Render implements listview.Item.
func (c Card) Render(area listview.Rect, buf *listview.Buffer) {
	buf.Fill(area, ' ', c.Style)
	c.Frame.Render(area, buf)
	inner := c.Frame.Inner(area)
	if inner.IsEmpty() {
		return
	}
	buf.SetString(inner.X, inner.Y, c.Text, c.Style)
}
