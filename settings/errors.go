package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for table decoding and validation.
var (
	// ErrInvalidTag indicates a missing or malformed tag.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnknownType indicates a row type that names no setting kind.
	ErrUnknownType = errors.New("unknown setting type")

	// ErrAmbiguousValue indicates a row with no usable value payload or more than one.
	ErrAmbiguousValue = errors.New("ambiguous setting value")

	// ErrFunctionNotFound indicates a function reference that does not resolve.
	ErrFunctionNotFound = errors.New("function not found")

	// ErrUnknownClass indicates a class name missing from the class registry.
	ErrUnknownClass = errors.New("unknown class")

	// ErrDanglingOverride indicates a showNextTo target that no row declares.
	ErrDanglingOverride = errors.New("showNextTo target not found")

	// ErrSignatureMismatch indicates a function registered with the wrong signature for its use.
	ErrSignatureMismatch = errors.New("function signature mismatch")

	// ErrDuplicateTag indicates two rows declaring the same tag.
	ErrDuplicateTag = errors.New("duplicate tag")
)

// ValidationError is a single problem found in a settings table row.
type ValidationError struct {
	// Path locates the row, e.g. "Video[3] VSync".
	Path string

	Message string

	// Err is the sentinel the problem wraps, if any.
	Err error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every problem of a validation pass.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Add appends a problem for path.
func (e *ValidationErrors) Add(path string, sentinel error, format string, args ...any) {
	e.Errors = append(e.Errors, &ValidationError{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	})
}

// HasErrors reports whether any problem was recorded.
func (e *ValidationErrors) HasErrors() bool {
	return e != nil && len(e.Errors) > 0
}

// Is lets errors.Is match any collected sentinel.
func (e *ValidationErrors) Is(target error) bool {
	for _, err := range e.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
