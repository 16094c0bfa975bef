// Package config loads, validates and saves the widgetlist configuration and
// owns the global logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	listview "github.com/rshade/widgetlist/internal/tui/list"
)

// CurrentVersion is the schema version written by Save.
const CurrentVersion = "1.0.0"

// supportedVersions is the range of schema versions this build understands.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// Environment variables that override file values.
const (
	EnvHome          = "WIDGETLIST_HOME"
	EnvLogLevel      = "WIDGETLIST_LOG_LEVEL"
	EnvScrollPadding = "WIDGETLIST_SCROLL_PADDING"
	EnvAxis          = "WIDGETLIST_AXIS"
	EnvInfinite      = "WIDGETLIST_INFINITE"
)

// Config is the root of the configuration file.
type Config struct {
	Version string        `yaml:"version"`
	List    ListConfig    `yaml:"list"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// ListConfig controls how lists are laid out and styled.
type ListConfig struct {
	Axis              string      `yaml:"axis"`
	ScrollPadding     int         `yaml:"scroll_padding"`
	InfiniteScrolling bool        `yaml:"infinite_scrolling"`
	Style             ColorConfig `yaml:"style"`
	Highlight         ColorConfig `yaml:"highlight"`
	Frame             FrameConfig `yaml:"frame"`
}

// ColorConfig is a foreground/background pair. Empty values leave the
// terminal default in place.
type ColorConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// FrameConfig describes the border drawn around a list.
type FrameConfig struct {
	Border     string `yaml:"border"`
	Title      string `yaml:"title"`
	Foreground string `yaml:"foreground"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		List: ListConfig{
			Axis: listview.Vertical.String(),
			Highlight: ColorConfig{
				Foreground: "#1c1c20",
				Background: "#ff9900",
			},
			Frame: FrameConfig{Border: "rounded"},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// New returns the default configuration merged with the config file in the
// config directory, if there is one, and the environment overrides. Problems
// with the file are logged and the defaults are kept.
func New() *Config {
	cfg := Default()
	dir, err := GetConfigDir()
	if err != nil {
		log := GetLogger()
		log.Warn().Err(err).Msg("config directory unavailable, using defaults")
		cfg.ApplyEnvOverrides()
		return cfg
	}
	cfg.configPath = filepath.Join(dir, "config.yaml")

	if _, mergeErr := MergeYAML(cfg, cfg.configPath); mergeErr != nil && !errors.Is(mergeErr, os.ErrNotExist) {
		log := GetLogger()
		log.Warn().Err(mergeErr).Str("path", cfg.configPath).Msg("ignoring unreadable config file")
	}
	cfg.ApplyEnvOverrides()
	return cfg
}

// Load reads the config file at path over the defaults and applies the
// environment overrides. Unlike New, a missing or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if _, err := MergeYAML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// ConfigPath returns the file the config was loaded from and is saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config to its path, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return ErrNoConfigPath
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.configPath, err)
	}
	return nil
}

// ApplyEnvOverrides replaces file values with the WIDGETLIST_* environment
// variables that are set. Unparsable values are logged and skipped.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvAxis); v != "" {
		c.List.Axis = v
	}
	if v := os.Getenv(EnvScrollPadding); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.List.ScrollPadding = n
		} else {
			log := GetLogger()
			log.Warn().Str("env", EnvScrollPadding).Str("value", v).Msg("ignoring non-numeric override")
		}
	}
	if v := os.Getenv(EnvInfinite); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.List.InfiniteScrolling = b
		} else {
			log := GetLogger()
			log.Warn().Str("env", EnvInfinite).Str("value", v).Msg("ignoring non-boolean override")
		}
	}
}

// Validate checks the version range and every enumerated value.
func (c *Config) Validate() error {
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidVersion, c.Version, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, v, supportedVersions)
	}

	if _, err = listview.ParseScrollAxis(c.List.Axis); err != nil {
		return fmt.Errorf("list.axis: %w", err)
	}
	if c.List.ScrollPadding < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePadding, c.List.ScrollPadding)
	}
	if _, err = ParseBorder(c.List.Frame.Border); err != nil {
		return fmt.Errorf("list.frame.border: %w", err)
	}
	if c.Logging.Level != "" && !isLogLevel(c.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return nil
}

// Style converts the pair into a lipgloss style.
func (cc ColorConfig) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if cc.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cc.Foreground))
	}
	if cc.Background != "" {
		style = style.Background(lipgloss.Color(cc.Background))
	}
	return style
}

// ViewConfig converts the list section into a view configuration. It fails
// on the same values Validate rejects.
func (c *Config) ViewConfig() (listview.Config, error) {
	cfg := listview.DefaultConfig()

	axis, err := listview.ParseScrollAxis(c.List.Axis)
	if err != nil {
		return cfg, err
	}
	if c.List.ScrollPadding < 0 {
		return cfg, fmt.Errorf("%w: %d", ErrNegativePadding, c.List.ScrollPadding)
	}
	frame, err := c.List.Frame.Frame()
	if err != nil {
		return cfg, err
	}

	cfg.Axis = axis
	cfg.ScrollPadding = c.List.ScrollPadding
	cfg.InfiniteScrolling = c.List.InfiniteScrolling
	cfg.Style = c.List.Style.Style()
	cfg.Frame = frame
	return cfg, nil
}

// Frame builds the list frame, or nil when the border is "none" or empty.
func (fc FrameConfig) Frame() (*listview.Frame, error) {
	border, err := ParseBorder(fc.Border)
	if err != nil || border == nil {
		return nil, err
	}
	style := lipgloss.NewStyle()
	if fc.Foreground != "" {
		style = style.Foreground(lipgloss.Color(fc.Foreground))
	}
	return &listview.Frame{Border: *border, Style: style, Title: fc.Title}, nil
}

// ParseBorder maps a border name to a lipgloss border. "none" and the empty
// string return nil.
func ParseBorder(name string) (*lipgloss.Border, error) {
	var b lipgloss.Border
	switch name {
	case "", "none":
		return nil, nil
	case "normal":
		b = lipgloss.NormalBorder()
	case "rounded":
		b = lipgloss.RoundedBorder()
	case "thick":
		b = lipgloss.ThickBorder()
	case "double":
		b = lipgloss.DoubleBorder()
	case "hidden":
		b = lipgloss.HiddenBorder()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
	}
	return &b, nil
}
