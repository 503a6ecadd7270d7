package urlenc

// Kind classifies an encoding error.
type Kind uint8

const (
	// InvalidArgument means a required argument is missing.
	InvalidArgument Kind = iota + 1
	// OutOfRange means offset or count doesn't fit into the buffer.
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	// Param is the name of the offending parameter. Empty Param matches every
	// parameter of the kind when used as errors.Is target.
	Param   string
	Message string
}

func NewError(kind Kind, param, message string) error {
	return Error{
		Kind:    kind,
		Param:   param,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether the target has the same kind and, unless the target
// leaves it empty, the same parameter.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind && (len(t.Param) == 0 || t.Param == e.Param)
}

var (
	ErrInvalidArgument = NewError(InvalidArgument, "", "invalid argument")
	ErrOutOfRange      = NewError(OutOfRange, "", "argument out of range")

	ErrNilBuffer        = NewError(InvalidArgument, "bytes", "bytes: nil buffer with non-zero count")
	ErrOffsetOutOfRange = NewError(OutOfRange, "offset", "offset: out of buffer bounds")
	ErrCountOutOfRange  = NewError(OutOfRange, "count", "count: out of buffer bounds")
)
