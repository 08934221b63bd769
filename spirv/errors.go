package spirv

import "fmt"

// ErrorKind categorizes SPIR-V generation errors.
type ErrorKind uint8

const (
	// ErrUnsupported indicates an IR construct the backend cannot lower.
	ErrUnsupported ErrorKind = iota

	// ErrMalformedIR indicates IR that breaks a structural or metadata
	// invariant.
	ErrMalformedIR

	// ErrInternal indicates a backend bug.
	ErrInternal
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupported:
		return "Unsupported"
	case ErrMalformedIR:
		return "MalformedIR"
	case ErrInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is a SPIR-V generation error. The backend raises it by panicking
// from deep inside instruction selection; Backend.Compile recovers it
// and returns it.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("spirv %s: %s", e.Kind, e.Message)
}

// NewError creates a new SPIR-V error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func unsupportedf(format string, args ...any) *Error {
	return NewError(ErrUnsupported, fmt.Sprintf(format, args...))
}

func malformedf(format string, args ...any) *Error {
	return NewError(ErrMalformedIR, fmt.Sprintf(format, args...))
}

func internalErrorf(format string, args ...any) *Error {
	return NewError(ErrInternal, fmt.Sprintf(format, args...))
}
