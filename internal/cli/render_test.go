package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/widgetlist/internal/cli"
	"github.com/rshade/widgetlist/internal/demo"
)

// plainFlags renders without a frame into a fixed-size area.
func plainFlags(width, height string) []string {
	return []string{"--plain", "--border", "none", "--width", width, "--height", height}
}

func frames(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n\n")
}

func TestRender_Window(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "top of list",
			args:     []string{"simple"},
			contains: []string{"Item 0", "Item 4"},
			excludes: []string{"Item 5"},
		},
		{
			name:     "selection past the window",
			args:     []string{"simple", "--select", "25"},
			contains: []string{"Item 21", "Item 25"},
			excludes: []string{"Item 20", "Item 26"},
		},
		{
			name:     "count limits the list",
			args:     []string{"simple", "--count", "2"},
			contains: []string{"Item 0", "Item 1"},
			excludes: []string{"Item 2"},
		},
		{
			name:     "default variant",
			args:     nil,
			contains: []string{"Item 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			args := append([]string{"render"}, tt.args...)
			args = append(args, plainFlags("20", "5")...)
			out, err := executeCmd(t, args...)
			require.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRender_PlainLinesHaveFrameWidth(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, append([]string{"render", "simple"}, plainFlags("12", "4")...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Len(t, []rune(line), 12)
	}
}

func TestRender_Steps(t *testing.T) {
	setupCLITest(t)

	args := append([]string{"render", "simple", "--select", "4", "--steps", "2"}, plainFlags("20", "3")...)
	out, err := executeCmd(t, args...)
	require.NoError(t, err)

	got := frames(out)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "Item 4")
	assert.NotContains(t, got[0], "Item 5")
	assert.Contains(t, got[1], "Item 5")
	assert.NotContains(t, got[1], "Item 2")
}

func TestRender_InfiniteWraps(t *testing.T) {
	setupCLITest(t)

	args := append([]string{"render", "infinite", "--select", "9999", "--steps", "2"}, plainFlags("30", "3")...)
	out, err := executeCmd(t, args...)
	require.NoError(t, err)

	got := frames(out)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "Row 10,000 of 10,000")
	assert.Contains(t, got[1], "Row 1 of 10,000")
}

func TestRender_Border(t *testing.T) {
	tests := []struct {
		name   string
		border []string
		prefix string
	}{
		{name: "rounded by default", prefix: "╭"},
		{name: "double flag", border: []string{"--border", "double"}, prefix: "╔"},
		{name: "normal flag", border: []string{"--border", "normal"}, prefix: "┌"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			args := []string{"render", "simple", "--plain", "--width", "20", "--height", "5"}
			out, err := executeCmd(t, append(args, tt.border...)...)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(out, tt.prefix), "got %q", out)
			assert.Contains(t, strings.SplitN(out, "\n", 2)[0], "simple")
		})
	}
}

func TestRender_ConfigFileAndFlagPrecedence(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\n  frame:\n    border: none\n"), 0o600))

	out, err := executeCmd(t, "render", "simple", "--config", path, "--plain", "--width", "20", "--height", "5")
	require.NoError(t, err)
	assert.Contains(t, strings.SplitN(out, "\n", 2)[0], "Item 0")

	out, err = executeCmd(t, "render", "simple", "--config", path, "--border", "thick",
		"--plain", "--width", "20", "--height", "5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "┏"), "got %q", out)
}

func TestRender_All(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, append([]string{"render", "--all"}, plainFlags("30", "6")...)...)
	require.NoError(t, err)

	last := -1
	for _, name := range demo.Names() {
		idx := strings.Index(out, "== "+name+" ==")
		require.GreaterOrEqual(t, idx, 0, "missing variant %s", name)
		assert.Greater(t, idx, last, "variant %s out of order", name)
		last = idx
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "zero width",
			args:    []string{"render", "--width", "0", "--height", "5"},
			wantErr: cli.ErrInvalidSize,
		},
		{
			name:    "negative height",
			args:    []string{"render", "--width", "5", "--height", "-1"},
			wantErr: cli.ErrInvalidSize,
		},
		{
			name:    "zero steps",
			args:    []string{"render", "--width", "5", "--height", "5", "--steps", "0"},
			wantErr: cli.ErrInvalidSteps,
		},
		{
			name:    "unknown variant",
			args:    []string{"render", "spiral", "--width", "5", "--height", "5"},
			wantErr: demo.ErrUnknownVariant,
		},
		{
			name:    "unknown axis",
			args:    []string{"render", "--axis", "diagonal", "--width", "5", "--height", "5"},
			wantMsg: "invalid list options",
		},
		{
			name:    "unknown border",
			args:    []string{"render", "--border", "wavy", "--width", "5", "--height", "5"},
			wantMsg: "invalid list options",
		},
		{
			name:    "too many args",
			args:    []string{"render", "simple", "sizes"},
			wantMsg: "accepts at most 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, err := executeCmd(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDemo_RequiresTerminal(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "demo", "simple")
	require.ErrorIs(t, err, cli.ErrNotTerminal)
}

func TestDemo_UnknownVariant(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "demo", "spiral")
	require.ErrorIs(t, err, demo.ErrUnknownVariant)
}
