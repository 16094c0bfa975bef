package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// GlobalConfig is the configuration shared by all commands of one run. It is
// nil until InitGlobalConfig or SetGlobalConfig is called.
//
//nolint:gochecknoglobals // Process-wide configuration.
var GlobalConfig *Config

//nolint:gochecknoglobals // Guards GlobalConfig.
var globalConfigMu sync.RWMutex

// InitGlobalConfig loads the default configuration unless one is installed.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if GlobalConfig == nil {
		GlobalConfig = New()
	}
}

// SetGlobalConfig installs cfg, for example one loaded from an explicit
// --config path.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	GlobalConfig = cfg
}

// ResetGlobalConfigForTest drops the installed configuration.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}

// GetGlobalConfig returns the installed configuration, loading the default
// one first if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return GlobalConfig
}

// GetLogLevel returns logging.level of the global configuration.
func GetLogLevel() string {
	return GetGlobalConfig().Logging.Level
}

// GetLogFile returns logging.file of the global configuration.
func GetLogFile() string {
	return GetGlobalConfig().Logging.File
}

// GetConfigDir returns $WIDGETLIST_HOME, or ~/.widgetlist when it is unset.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(userHome, ".widgetlist"), nil
}

// DefaultConfigPath returns config.yaml inside GetConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
