package listview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBuffer_EqualStylesShareOneID(t *testing.T) {
	buf := NewBuffer(NewRect(0, 0, 12, 4))
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("#606060"))

	frame := &Frame{Border: lipgloss.NormalBorder(), Style: border, Title: "list"}
	frame.Render(buf.Area, buf)
	frame.Render(buf.Area, buf)

	// The default style plus the border style.
	assert.Len(t, buf.styles, 2)
	assert.Equal(t, buf.Cell(0, 0).styleID, buf.Cell(11, 3).styleID)
	assert.Equal(t, buf.Cell(0, 0).styleID, buf.Cell(3, 0).styleID)
}

func TestBuffer_StringMergesRuns(t *testing.T) {
	buf := NewBuffer(NewRect(0, 0, 6, 1))
	style := lipgloss.NewStyle().Bold(true)
	for x := range 6 {
		buf.SetString(x, 0, "x", style)
	}

	assert.Len(t, buf.styles, 2)
	assert.Equal(t, "xxxxxx", strings.TrimSpace(buf.Lines()[0]))
	assert.Equal(t, style.Render("xxxxxx"), buf.String())
}
