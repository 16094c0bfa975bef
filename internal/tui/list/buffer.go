package listview

import (
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// defaultStyleID is the style index every fresh cell points at.
const defaultStyleID = 0

// Cell is a single terminal cell. Content holds one grapheme cluster; a cell
// following a wide grapheme has empty content and zero width.
type Cell struct {
	Content string
	Width   int
	styleID int
}

//nolint:gochecknoglobals // Immutable template for cleared cells.
var blankCell = Cell{Content: " ", Width: 1, styleID: defaultStyleID}

// Buffer is a fixed-size grid of cells addressed in absolute coordinates.
// Styles are interned in a per-buffer table so cells stay comparable and
// neighbouring cells with equal styles render as one run.
type Buffer struct {
	Area   Rect
	cells  []Cell
	styles []lipgloss.Style
}

// NewBuffer creates a blank buffer covering area.
func NewBuffer(area Rect) *Buffer {
	b := &Buffer{
		Area:   area,
		cells:  make([]Cell, area.Width*area.Height),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range b.cells {
		b.cells[i] = blankCell
	}
	return b
}

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.Area.Contains(x, y) {
		return 0, false
	}
	return (y-b.Area.Y)*b.Area.Width + (x - b.Area.X), true
}

// intern returns the id of style, adding it to the table only when no equal
// style is there yet.
func (b *Buffer) intern(style lipgloss.Style) int {
	for id := len(b.styles) - 1; id >= 0; id-- {
		if reflect.DeepEqual(b.styles[id], style) {
			return id
		}
	}
	b.styles = append(b.styles, style)
	return len(b.styles) - 1
}

// layered returns a lookup from a cell's current style id to the id of style
// drawn on top of it. Properties style leaves unset come from the cell.
func (b *Buffer) layered(style lipgloss.Style) func(base int) int {
	ids := make(map[int]int, 1)
	return func(base int) int {
		if id, ok := ids[base]; ok {
			return id
		}
		id := b.intern(style.Inherit(b.styles[base]))
		ids[base] = id
		return id
	}
}

// Cell returns the cell at (x, y). Out of range coordinates yield a blank cell.
func (b *Buffer) Cell(x, y int) Cell {
	i, ok := b.index(x, y)
	if !ok {
		return blankCell
	}
	return b.cells[i]
}

// StyleAt returns the style applied to the cell at (x, y).
func (b *Buffer) StyleAt(x, y int) lipgloss.Style {
	i, ok := b.index(x, y)
	if !ok {
		return b.styles[defaultStyleID]
	}
	return b.styles[b.cells[i].styleID]
}

// SetStyle applies style to every cell of area without touching content.
func (b *Buffer) SetStyle(area Rect, style lipgloss.Style) {
	area = area.Intersect(b.Area)
	if area.IsEmpty() {
		return
	}
	id := b.intern(style)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			i, _ := b.index(x, y)
			b.cells[i].styleID = id
		}
	}
}

// Fill sets every cell of area to r with style layered over the cell's
// current style.
func (b *Buffer) Fill(area Rect, r rune, style lipgloss.Style) {
	area = area.Intersect(b.Area)
	if area.IsEmpty() {
		return
	}
	styleOver := b.layered(style)
	content := string(r)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			i, _ := b.index(x, y)
			b.cells[i] = Cell{Content: content, Width: 1, styleID: styleOver(b.cells[i].styleID)}
		}
	}
}

// SetString writes s starting at (x, y) and returns the column after the last
// written grapheme. style is layered over the style already in each cell.
// Text beyond the right edge of the buffer is clipped; a wide grapheme that
// does not fit entirely is dropped.
func (b *Buffer) SetString(x, y int, s string, style lipgloss.Style) int {
	if y < b.Area.Y || y >= b.Area.Bottom() {
		return x
	}
	styleOver := b.layered(style)
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		if cluster == "\n" || cluster == "\r\n" {
			break
		}
		w := gr.Width()
		if w == 0 {
			continue
		}
		if x+w > b.Area.Right() {
			break
		}
		if x >= b.Area.X {
			i, _ := b.index(x, y)
			b.cells[i] = Cell{Content: cluster, Width: w, styleID: styleOver(b.cells[i].styleID)}
			for k := 1; k < w; k++ {
				j, _ := b.index(x+k, y)
				b.cells[j] = Cell{styleID: styleOver(b.cells[j].styleID)}
			}
		}
		x += w
	}
	return x
}

// CopyFrom copies the cells of src inside srcArea into b with the top-left
// corner placed at (dstX, dstY). Styles are re-interned into b.
func (b *Buffer) CopyFrom(src *Buffer, srcArea Rect, dstX, dstY int) {
	srcArea = srcArea.Intersect(src.Area)
	remap := make(map[int]int)
	for sy := srcArea.Y; sy < srcArea.Bottom(); sy++ {
		for sx := srcArea.X; sx < srcArea.Right(); sx++ {
			di, ok := b.index(dstX+sx-srcArea.X, dstY+sy-srcArea.Y)
			if !ok {
				continue
			}
			si, _ := src.index(sx, sy)
			cell := src.cells[si]
			id, seen := remap[cell.styleID]
			if !seen {
				id = b.intern(src.styles[cell.styleID])
				remap[cell.styleID] = id
			}
			cell.styleID = id
			b.cells[di] = cell
		}
	}
}

// Lines returns the plain text content of every row.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.Area.Height)
	for y := b.Area.Y; y < b.Area.Bottom(); y++ {
		var sb strings.Builder
		for x := b.Area.X; x < b.Area.Right(); x++ {
			sb.WriteString(b.Cell(x, y).Content)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String renders the buffer as styled text, one line per row. Consecutive
// cells sharing a style are rendered together.
func (b *Buffer) String() string {
	rows := make([]string, 0, b.Area.Height)
	for y := b.Area.Y; y < b.Area.Bottom(); y++ {
		var row, run strings.Builder
		runStyle := defaultStyleID
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == defaultStyleID {
				row.WriteString(run.String())
			} else {
				row.WriteString(b.styles[runStyle].Render(run.String()))
			}
			run.Reset()
		}
		for x := b.Area.X; x < b.Area.Right(); x++ {
			cell := b.Cell(x, y)
			if cell.Width == 0 {
				continue
			}
			if cell.styleID != runStyle {
				flush()
				runStyle = cell.styleID
			}
			run.WriteString(cell.Content)
		}
		flush()
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
