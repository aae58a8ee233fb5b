// Package validate checks the data files for structural and semantic
// integrity.  File checks look at a single file; the cross-file checks
// make sure the booking ledger agrees with the student and schedule
// files.  All checks are pure and operate on lines already read from disk.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Rule sentinels.  Violations wrap one of these together with
// record.ErrSyntax or record.ErrSemantic so errors.Is works on either.
var (
	ErrDuplicateID    = errors.New("duplicate id")
	ErrNotAscending   = errors.New("id not ascending")
	ErrDailyCap       = errors.New("too many showings on one date")
	ErrUnknownStudent = errors.New("unknown student")
	ErrUnknownShow    = errors.New("unknown show")
	ErrSeatMismatch   = errors.New("booked seats do not match schedule")
)

// Violation is one offending line.  Line is 1-based; it is 0 for
// violations that concern a show ID rather than a single line.
type Violation struct {
	Line    int
	Content string
	Err     error
}

func (v Violation) String() string {
	if v.Line == 0 {
		return fmt.Sprintf("%s: %v", v.Content, v.Err)
	}
	return fmt.Sprintf("line %d: %q: %v", v.Line, v.Content, v.Err)
}

// Error reports every violation found by one check.
type Error struct {
	Check      string
	Violations []Violation
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed (%d violation", e.Check, len(e.Violations))
	if len(e.Violations) != 1 {
		b.WriteByte('s')
	}
	b.WriteString(")")
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.String())
	}
	return b.String()
}

// Unwrap exposes the per-line errors to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, len(e.Violations))
	for _, v := range e.Violations {
		errs = append(errs, v.Err)
	}
	return errs
}

func fail(check string, vs []Violation) error {
	if len(vs) == 0 {
		return nil
	}
	return &Error{Check: check, Violations: vs}
}
