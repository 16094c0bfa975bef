package listview

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownAxis is returned when a scroll axis name is not recognized.
const ErrUnknownAxis = constError("unknown scroll axis")
