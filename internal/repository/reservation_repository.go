package repository

import (
	"fmt"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/record"
)

// ReservationRepo manages the booking file, a ledger that must always
// reduce to the occupancy recorded in the schedule file.
type ReservationRepo struct {
	path string
}

// NewReservationRepo returns a ReservationRepo bound to the given file.
func NewReservationRepo(path string) *ReservationRepo { return &ReservationRepo{path: path} }

// Path returns the file backing the repository.
func (r *ReservationRepo) Path() string { return r.path }

// Lines returns the raw lines of the booking file.
func (r *ReservationRepo) Lines() ([]string, error) { return readLines(r.path) }

// ListByStudent returns the bookings of one student in file order.
func (r *ReservationRepo) ListByStudent(studentID string) ([]model.Reservation, error) {
	lines, err := r.Lines()
	if err != nil {
		return nil, err
	}
	var out []model.Reservation
	for i, line := range lines {
		res, err := record.ParseReservation(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", r.path, i+1, err)
		}
		if res.StudentID == studentID {
			out = append(out, res)
		}
	}
	return out, nil
}

// Create appends one booking record.
func (r *ReservationRepo) Create(res model.Reservation) error {
	return appendLine(r.path, record.FormatReservation(res))
}

// Delete removes the first line whose parsed fields equal res.  Lines are
// compared after parsing, so spacing inside the seat vector does not
// matter.  It returns ErrNotFound when nothing matches.
func (r *ReservationRepo) Delete(res model.Reservation) error {
	lines, err := r.Lines()
	if err != nil {
		return err
	}
	for i, line := range lines {
		got, err := record.ParseReservation(line)
		if err != nil || !got.Equal(res) {
			continue
		}
		kept := append(lines[:i:i], lines[i+1:]...)
		return writeLines(r.path, kept)
	}
	return fmt.Errorf("booking %s: %w", record.FormatReservation(res), ErrNotFound)
}

// PruneEmpty removes every booking whose seat vector is all zero and
// returns how many lines were dropped.  The file is only rewritten when
// something was removed.
func (r *ReservationRepo) PruneEmpty() (int, error) {
	lines, err := r.Lines()
	if err != nil {
		return 0, err
	}
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		res, err := record.ParseReservation(line)
		if err == nil && res.Seats.IsZero() {
			continue
		}
		kept = append(kept, line)
	}
	removed := len(lines) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, writeLines(r.path, kept)
}
