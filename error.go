package base79

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("base79")

// ErrEqualBounds is returned when asked for a value strictly between two
// equal numbers.
var ErrEqualBounds = Error.New("equal bounds")

// InvalidDigitError reports a character outside the alphabet.
type InvalidDigitError struct {
	Char byte
	Pos  int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit character %q at position %d", e.Char, e.Pos)
}

// NonCanonicalError reports text that decodes to digits with a trailing zero.
// The value is not repaired since that would change the stored key.
type NonCanonicalError struct {
	Text string
}

func (e *NonCanonicalError) Error() string {
	return fmt.Sprintf("non-canonical input %q: trailing zero digit %q", e.Text, MinChar)
}
