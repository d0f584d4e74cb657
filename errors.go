package cascade

import (
	"errors"
	"fmt"
)

// Errors returned when parsing style sheets or accessing selector chains.
var (
	ErrTooManyClosingBrackets = errors.New("too many closing brackets in style sheet")
	ErrMissingClosingBrackets = errors.New("missing closing brackets in style sheet")
	ErrIndexOutOfRange        = errors.New("selector index out of bounds")
)

// ParseError is returned by the style sheet parser. Line is 1-based.
// Err is nil for lines which did not match any syntax, otherwise it is
// the cause, e.g. one of the bracket errors or an error from
// Declaration.ParseAttribute.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("line %d in style sheet could not be parsed", e.Line)
	case errors.Is(e.Err, ErrTooManyClosingBrackets), errors.Is(e.Err, ErrMissingClosingBrackets):
		return fmt.Sprintf("%s (line %d)", e.Err.Error(), e.Line)
	}
	return fmt.Sprintf("line %d in style sheet could not be parsed: %s", e.Line, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
