package validate

import (
	"fmt"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/record"
)

// MaxShowsPerDate is the number of showings a single date may hold.  The
// tenth entry on the same date is a violation.
const MaxShowsPerDate = 9

// Check names used in Error.Check.
const (
	CheckStudents       = "student file check"
	CheckSchedule       = "schedule file check"
	CheckBookings       = "booking file check"
	CheckStudentRefs    = "booking student reference check"
	CheckShowRefs       = "booking show reference check"
	CheckSeatConsistent = "booking seat consistency check"
)

// ReservationLine is a parsed booking record together with its position
// in the booking file.
type ReservationLine struct {
	Line    int
	Content string
	model.Reservation
}

// Students validates every line of the student file.  All offending lines
// are collected before failing; a duplicate student ID is reported at its
// second and later occurrences.
func Students(lines []string) ([]model.Student, error) {
	var (
		out  = make([]model.Student, 0, len(lines))
		seen = make(map[string]bool, len(lines))
		bad  []Violation
	)
	for i, line := range lines {
		s, err := record.ParseStudent(line)
		if err != nil {
			bad = append(bad, Violation{Line: i + 1, Content: line, Err: err})
			continue
		}
		if seen[s.ID] {
			bad = append(bad, Violation{Line: i + 1, Content: line,
				Err: fmt.Errorf("%w: %w: student %s", record.ErrSemantic, ErrDuplicateID, s.ID)})
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	if err := fail(CheckStudents, bad); err != nil {
		return nil, err
	}
	return out, nil
}

// Schedule validates the schedule file line by line and stops at the first
// violation.  IDs must be strictly ascending and no date may carry more
// than MaxShowsPerDate showings.
func Schedule(lines []string) ([]model.Show, error) {
	var (
		out     = make([]model.Show, 0, len(lines))
		seen    = make(map[string]bool, len(lines))
		perDate = make(map[string]int)
		prev    string
	)
	for i, line := range lines {
		stop := func(err error) ([]model.Show, error) {
			return nil, fail(CheckSchedule, []Violation{{Line: i + 1, Content: line, Err: err}})
		}
		s, err := record.ParseShow(line)
		if err != nil {
			return stop(err)
		}
		if seen[s.ID] {
			return stop(fmt.Errorf("%w: %w: show %s", record.ErrSemantic, ErrDuplicateID, s.ID))
		}
		// IDs are fixed width, so string order is numeric order.
		if prev != "" && s.ID <= prev {
			return stop(fmt.Errorf("%w: %w: %s after %s", record.ErrSemantic, ErrNotAscending, s.ID, prev))
		}
		perDate[s.Date]++
		if perDate[s.Date] > MaxShowsPerDate {
			return stop(fmt.Errorf("%w: %w: %s has %d showings", record.ErrSemantic, ErrDailyCap, s.Date, perDate[s.Date]))
		}
		seen[s.ID] = true
		prev = s.ID
		out = append(out, s)
	}
	return out, nil
}

// Reservations validates the syntax of every booking line, collecting all
// offending lines before failing.
func Reservations(lines []string) ([]ReservationLine, error) {
	var (
		out = make([]ReservationLine, 0, len(lines))
		bad []Violation
	)
	for i, line := range lines {
		r, err := record.ParseReservation(line)
		if err != nil {
			bad = append(bad, Violation{Line: i + 1, Content: line, Err: err})
			continue
		}
		out = append(out, ReservationLine{Line: i + 1, Content: line, Reservation: r})
	}
	if err := fail(CheckBookings, bad); err != nil {
		return nil, err
	}
	return out, nil
}
