package config

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for configuration problems.
const (
	ErrInvalidVersion     = constError("invalid config version")
	ErrUnsupportedVersion = constError("unsupported config version")
	ErrNegativePadding    = constError("scroll padding must not be negative")
	ErrUnknownBorder      = constError("unknown border style")
	ErrInvalidLogLevel    = constError("invalid log level")
	ErrNoConfigPath       = constError("config path not set")
)
