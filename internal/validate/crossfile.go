package validate

import (
	"fmt"
	"sort"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/record"
)

// CrossFile runs the three ledger checks in order and returns the first
// one that fails: student references, show references, then seat sums.
func CrossFile(students []model.Student, shows []model.Show, bookings []ReservationLine) error {
	if err := StudentRefs(students, bookings); err != nil {
		return err
	}
	if err := ShowRefs(shows, bookings); err != nil {
		return err
	}
	return SeatSums(shows, bookings)
}

// StudentRefs reports every booking whose student does not exist.
func StudentRefs(students []model.Student, bookings []ReservationLine) error {
	known := make(map[string]bool, len(students))
	for _, s := range students {
		known[s.ID] = true
	}
	var bad []Violation
	for _, b := range bookings {
		if !known[b.StudentID] {
			bad = append(bad, Violation{Line: b.Line, Content: b.Content,
				Err: fmt.Errorf("%w: %w: %s", record.ErrSemantic, ErrUnknownStudent, b.StudentID)})
		}
	}
	return fail(CheckStudentRefs, bad)
}

// ShowRefs reports every booking whose show does not exist.
func ShowRefs(shows []model.Show, bookings []ReservationLine) error {
	known := indexShows(shows)
	var bad []Violation
	for _, b := range bookings {
		if _, ok := known[b.ShowID]; !ok {
			bad = append(bad, Violation{Line: b.Line, Content: b.Content,
				Err: fmt.Errorf("%w: %w: %s", record.ErrSemantic, ErrUnknownShow, b.ShowID)})
		}
	}
	return fail(CheckShowRefs, bad)
}

// SeatSums adds up the booking vectors of every booked show and compares
// the sum with the show's occupancy.  Sums are not OR-ed: a seat booked
// twice sums to 2 and can never match the schedule.
func SeatSums(shows []model.Show, bookings []ReservationLine) error {
	known := indexShows(shows)
	sums := make(map[string]model.SeatVector)
	for _, b := range bookings {
		sums[b.ShowID] = sums[b.ShowID].Add(b.Seats)
	}
	ids := make([]string, 0, len(sums))
	for id := range sums {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var bad []Violation
	for _, id := range ids {
		show, ok := known[id]
		switch {
		case !ok:
			bad = append(bad, Violation{Content: id,
				Err: fmt.Errorf("%w: %w: %s", record.ErrSemantic, ErrUnknownShow, id)})
		case sums[id] != show.Seats:
			bad = append(bad, Violation{Content: id,
				Err: fmt.Errorf("%w: %w: bookings sum to %s, schedule has %s",
					record.ErrSemantic, ErrSeatMismatch, sums[id].Encode(), show.Seats.Encode())})
		}
	}
	return fail(CheckSeatConsistent, bad)
}

func indexShows(shows []model.Show) map[string]model.Show {
	m := make(map[string]model.Show, len(shows))
	for _, s := range shows {
		m[s.ID] = s
	}
	return m
}
