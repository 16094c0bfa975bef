package demo_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/widgetlist/internal/demo"
	listview "github.com/rshade/widgetlist/internal/tui/list"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		expect  string
		wantErr bool
	}{
		{name: "empty selects default", input: "", expect: demo.DefaultVariant},
		{name: "known variant", input: "infinite", expect: "infinite"},
		{name: "unknown variant", input: "spiral", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := demo.Lookup(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, demo.ErrUnknownVariant)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, v.Name)
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t,
		[]string{"simple", "sizes", "horizontal", "padding", "infinite", "paragraph"},
		demo.Names())
}

func TestVariants_RenderWithoutPanicking(t *testing.T) {
	for _, v := range demo.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			view := v.View(0, demo.DefaultTheme())
			area := listview.NewRect(0, 0, 30, 8)
			buf := listview.NewBuffer(area)
			state := listview.NewState()
			state.Select(v.DefaultCount - 1)

			entries := view.Render(area, buf, state)

			require.NotEmpty(t, entries)
			assert.Equal(t, v.DefaultCount, view.ItemCount)
			assert.Len(t, buf.Lines(), 8)
		})
	}
}

func TestVariants_Defaults(t *testing.T) {
	theme := demo.DefaultTheme()

	horizontal, err := demo.Lookup("horizontal")
	require.NoError(t, err)
	assert.Equal(t, listview.Horizontal, horizontal.View(0, theme).Config.Axis)

	padding, err := demo.Lookup("padding")
	require.NoError(t, err)
	assert.Equal(t, 4, padding.View(0, theme).Config.ScrollPadding)

	infinite, err := demo.Lookup("infinite")
	require.NoError(t, err)
	view := infinite.View(0, theme)
	assert.True(t, view.Config.InfiniteScrolling)
	assert.Equal(t, 10_000, view.ItemCount)

	simple, err := demo.Lookup("simple")
	require.NoError(t, err)
	assert.Equal(t, 7, simple.View(7, theme).ItemCount)
}

func TestVariants_SizesCycle(t *testing.T) {
	sizes, err := demo.Lookup("sizes")
	require.NoError(t, err)
	view := sizes.View(0, demo.DefaultTheme())

	var got []int
	for i := range 4 {
		_, size := view.Builder(listview.BuildContext{Index: i, CrossAxisSize: 20})
		got = append(got, size)
	}

	assert.Equal(t, []int{3, 4, 5, 3}, got)
}

func TestVariants_InfiniteLabelsUseGrouping(t *testing.T) {
	infinite, err := demo.Lookup("infinite")
	require.NoError(t, err)
	view := infinite.View(0, demo.DefaultTheme())
	area := listview.NewRect(0, 0, 30, 1)
	buf := listview.NewBuffer(area)

	view.Render(area, buf, listview.NewState())

	assert.Contains(t, buf.Lines()[0], "Row 1 of 10,000")
}

func TestTextItem_Render(t *testing.T) {
	tests := []struct {
		name   string
		item   demo.TextItem
		height int
		expect []string
	}{
		{
			name:   "centered",
			item:   demo.TextItem{Text: "Item 0"},
			height: 1,
			expect: []string{"   Item 0   "},
		},
		{
			name:   "padded from the top",
			item:   demo.TextItem{Text: "ab", PadTop: 1},
			height: 3,
			expect: []string{"            ", "     ab     ", "            "},
		},
		{
			name:   "padding clamped to the item",
			item:   demo.TextItem{Text: "ab", PadTop: 5},
			height: 2,
			expect: []string{"            ", "     ab     "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := listview.NewRect(0, 0, 12, tt.height)
			buf := listview.NewBuffer(area)

			tt.item.Render(area, buf)

			assert.Equal(t, tt.expect, buf.Lines())
		})
	}
}

func TestParagraph(t *testing.T) {
	p := demo.NewParagraph("Title", "aaa bbb ccc", 7, lipgloss.NewStyle())
	require.Equal(t, 3, p.Height())

	area := listview.NewRect(0, 0, 7, p.Height())
	buf := listview.NewBuffer(area)
	p.Render(area, buf)

	lines := buf.Lines()
	assert.Equal(t, "Title  ", lines[0])
	assert.Equal(t, "aaa bbb", lines[1])
	assert.Equal(t, "ccc", strings.TrimRight(lines[2], " "))
}

func TestParagraph_ZeroWidthKeepsOneLine(t *testing.T) {
	p := demo.NewParagraph("Title", "one two", 0, lipgloss.NewStyle())

	assert.Equal(t, 2, p.Height())
}

func TestCard_Render(t *testing.T) {
	card := demo.NewCard("hi", lipgloss.NewStyle(), lipgloss.NewStyle())
	area := listview.NewRect(0, 0, 6, 3)
	buf := listview.NewBuffer(area)

	card.Render(area, buf)

	assert.Equal(t, []string{"╭────╮", "│hi  │", "╰────╯"}, buf.Lines())
}
