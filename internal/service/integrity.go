package service

import (
	"log/slog"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/validate"
)

// Summary describes a successful integrity pass.
type Summary struct {
	Students int `yaml:"students"`
	Shows    int `yaml:"shows"`
	Bookings int `yaml:"bookings"`
	Pruned   int `yaml:"pruned"`
}

// ValidateStudents reads and checks the student file.
func (s *BookingService) ValidateStudents() ([]model.Student, error) {
	lines, err := s.Students.Lines()
	if err != nil {
		return nil, err
	}
	return validate.Students(lines)
}

// ValidateSchedule reads and checks the schedule file, stopping at the
// first violation.
func (s *BookingService) ValidateSchedule() ([]model.Show, error) {
	lines, err := s.Shows.Lines()
	if err != nil {
		return nil, err
	}
	return validate.Schedule(lines)
}

// ValidateBookingSyntax reads and checks every line of the booking file.
func (s *BookingService) ValidateBookingSyntax() ([]validate.ReservationLine, error) {
	lines, err := s.Reservations.Lines()
	if err != nil {
		return nil, err
	}
	return validate.Reservations(lines)
}

// ValidateCrossFile reads all three files again and checks that the
// booking ledger agrees with the student and schedule files.
func (s *BookingService) ValidateCrossFile() error {
	students, err := s.ValidateStudents()
	if err != nil {
		return err
	}
	shows, err := s.ValidateSchedule()
	if err != nil {
		return err
	}
	bookings, err := s.ValidateBookingSyntax()
	if err != nil {
		return err
	}
	return validate.CrossFile(students, shows, bookings)
}

// PruneEmptyBookings drops booking records that hold no seat.
func (s *BookingService) PruneEmptyBookings() (int, error) {
	n, err := s.Reservations.PruneEmpty()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("pruned empty bookings", "count", n, "file", s.Reservations.Path())
	}
	return n, nil
}

// CheckAll runs the full integrity pass in its fixed order: students,
// schedule, booking syntax, cross-file rules, then pruning.  Any error
// means the data files cannot be trusted and the program must stop.
func (s *BookingService) CheckAll() (Summary, error) {
	students, err := s.ValidateStudents()
	if err != nil {
		return Summary{}, err
	}
	shows, err := s.ValidateSchedule()
	if err != nil {
		return Summary{}, err
	}
	bookings, err := s.ValidateBookingSyntax()
	if err != nil {
		return Summary{}, err
	}
	if err := s.ValidateCrossFile(); err != nil {
		return Summary{}, err
	}
	pruned, err := s.PruneEmptyBookings()
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{
		Students: len(students),
		Shows:    len(shows),
		Bookings: len(bookings) - pruned,
		Pruned:   pruned,
	}
	slog.Debug("integrity pass ok", "students", sum.Students, "shows", sum.Shows, "bookings", sum.Bookings)
	return sum, nil
}
