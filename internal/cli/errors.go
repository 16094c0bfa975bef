package cli

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by commands.
const (
	ErrNotTerminal   = constError("demo needs an interactive terminal; use render for static output")
	ErrInvalidSize   = constError("width and height must be positive")
	ErrInvalidSteps  = constError("steps must be at least 1")
	ErrConfigExists  = constError("configuration file already exists, use --force to overwrite")
	ErrInvalidConfig = constError("configuration is invalid")
)
