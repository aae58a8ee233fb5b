// Package record parses and serializes the three line formats used by the
// data files.  Parsers are pure: a line goes in, a model value or an error
// comes out.  Every error wraps either ErrSyntax or ErrSemantic so callers
// can tell a malformed line from a well-formed line that breaks a rule.
package record

import (
	"errors"
	"fmt"
)

// ErrSyntax marks a line that does not match its grammar: wrong field
// count, wrong character class or wrong length.
var ErrSyntax = errors.New("syntax violation")

// ErrSemantic marks a well-formed field that violates a domain rule, such
// as a calendar date that does not exist.
var ErrSemantic = errors.New("semantic violation")

func syntaxf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

func semanticf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSemantic, fmt.Sprintf(format, args...))
}
