package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keyVersion = "version"
	keyList    = "list"
	keyLogging = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyVersion: true,
	keyList:    true,
	keyLogging: true,
}

// MergeYAML loads a YAML file and decodes each known top-level section onto
// the matching field of target. Fields missing from a section keep their
// current value, so a file only needs to name what it changes. Unknown
// top-level keys are skipped and returned sorted so callers can report them.
func MergeYAML(target *Config, path string) ([]string, error) {
	if target == nil {
		return nil, errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	var unknown []string
	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			unknown = append(unknown, key)
			continue
		}
		if err = decodeSection(target, key, &node); err != nil {
			return nil, fmt.Errorf("applying config section %q: %w", key, err)
		}
	}
	sort.Strings(unknown)

	return unknown, nil
}

// decodeSection decodes node into the field of target named by key.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyVersion:
		return node.Decode(&target.Version)
	case keyList:
		return node.Decode(&target.List)
	case keyLogging:
		return node.Decode(&target.Logging)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
