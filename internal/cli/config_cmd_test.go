package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/widgetlist/internal/cli"
	"github.com/rshade/widgetlist/internal/config"
)

func TestConfigInit_DefaultLocation(t *testing.T) {
	home := setupCLITest(t)

	out, err := executeCmd(t, "config", "init")
	require.NoError(t, err)

	path := filepath.Join(home, "config.yaml")
	assert.Contains(t, out, "Configuration initialized at "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().List, cfg.List)
	assert.Equal(t, config.CurrentVersion, cfg.Version)
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "nested", "widgetlist.yaml")

	// The file does not exist yet, which must not stop the config group.
	out, err := executeCmd(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigInit_ExistingFile(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\n  scroll_padding: 7\n"), 0o600))

	_, err := executeCmd(t, "config", "init")
	require.ErrorIs(t, err, cli.ErrConfigExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scroll_padding: 7", "existing file must be left alone")
}

func TestConfigInit_ForceOverwritesConfig(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\n  scroll_padding: 7\n"), 0o600))

	_, err := executeCmd(t, "config", "init", "--force")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.List.ScrollPadding)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  bool
		contains []string
	}{
		{
			name:     "empty file uses defaults",
			content:  "",
			contains: []string{"Configuration is valid"},
		},
		{
			name:     "partial list section",
			content:  "list:\n  axis: horizontal\n  scroll_padding: 2\n",
			contains: []string{"Configuration is valid"},
		},
		{
			name:     "unknown top-level key",
			content:  "colors:\n  accent: red\nlist:\n  axis: vertical\n",
			contains: []string{`unknown key "colors"`, "Configuration is valid"},
		},
		{name: "bad axis", content: "list:\n  axis: diagonal\n", wantErr: true},
		{name: "negative padding", content: "list:\n  scroll_padding: -1\n", wantErr: true},
		{name: "bad border", content: "list:\n  frame:\n    border: wavy\n", wantErr: true},
		{name: "bad log level", content: "logging:\n  level: loud\n", wantErr: true},
		{name: "future version", content: "version: 2.0.0\n", wantErr: true},
		{name: "malformed yaml", content: "list: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupCLITest(t)
			path := filepath.Join(home, "check.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			out, err := executeCmd(t, "config", "validate", path)
			if tt.wantErr {
				require.ErrorIs(t, err, cli.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestConfigValidate_Verbose(t *testing.T) {
	home := setupCLITest(t)
	_, err := executeCmd(t, "config", "init")
	require.NoError(t, err)

	out, err := executeCmd(t, "config", "validate", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join(home, "config.yaml"))
	assert.Contains(t, out, "Configuration details:")
	assert.Contains(t, out, "Scroll axis: vertical")
	assert.Contains(t, out, "Frame border: rounded")
	assert.Contains(t, out, "Log file: (stderr)")
}

func TestConfigValidate_MissingFile(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "config", "validate")
	require.ErrorIs(t, err, cli.ErrInvalidConfig)
	require.ErrorIs(t, err, os.ErrNotExist)
}
