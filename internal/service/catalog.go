package service

import (
	"sort"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/session"
)

// MaxListed caps how many numbered choices a menu offers, since choices
// are entered as a single digit.
const MaxListed = 9

// Booking pairs a booking record with the show it refers to.
type Booking struct {
	model.Reservation
	Show model.Show
}

// BookableDates returns the distinct show dates strictly after today in
// ascending order, at most MaxListed of them.
func (s *BookingService) BookableDates(sess *session.Session) ([]string, error) {
	shows, err := s.Shows.List()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var dates []string
	for _, sh := range shows {
		if sess.IsAfterToday(sh.Date) && !seen[sh.Date] {
			seen[sh.Date] = true
			dates = append(dates, sh.Date)
		}
	}
	sort.Strings(dates)
	if len(dates) > MaxListed {
		dates = dates[:MaxListed]
	}
	return dates, nil
}

// ShowsOn returns the showings of one date in file order.
func (s *BookingService) ShowsOn(date string) ([]model.Show, error) {
	shows, err := s.Shows.List()
	if err != nil {
		return nil, err
	}
	var out []model.Show
	for _, sh := range shows {
		if sh.Date == date {
			out = append(out, sh)
		}
	}
	return out, nil
}

// Timetable returns every showing that is not in the past, ordered by
// date and time.
func (s *BookingService) Timetable(sess *session.Session) ([]model.Show, error) {
	shows, err := s.Shows.List()
	if err != nil {
		return nil, err
	}
	out := make([]model.Show, 0, len(shows))
	for _, sh := range shows {
		if !sess.IsPast(sh.Date) {
			out = append(out, sh)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// History returns the logged in student's bookings whose show is not in
// the past, ordered by show date and time.
func (s *BookingService) History(sess *session.Session) ([]Booking, error) {
	bookings, err := s.bookingsOf(sess.StudentID, func(sh model.Show) bool { return !sess.IsPast(sh.Date) })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i].Show, bookings[j].Show
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})
	return bookings, nil
}

// Cancellable returns the logged in student's bookings whose show date is
// strictly after today, ordered by show ID, at most MaxListed of them.
// Same-day and past bookings can no longer be cancelled.
func (s *BookingService) Cancellable(sess *session.Session) ([]Booking, error) {
	bookings, err := s.bookingsOf(sess.StudentID, func(sh model.Show) bool { return sess.IsAfterToday(sh.Date) })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(bookings, func(i, j int) bool { return bookings[i].ShowID < bookings[j].ShowID })
	if len(bookings) > MaxListed {
		bookings = bookings[:MaxListed]
	}
	return bookings, nil
}

func (s *BookingService) bookingsOf(studentID string, keep func(model.Show) bool) ([]Booking, error) {
	shows, err := s.Shows.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Show, len(shows))
	for _, sh := range shows {
		byID[sh.ID] = sh
	}
	res, err := s.Reservations.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	var out []Booking
	for _, r := range res {
		sh, ok := byID[r.ShowID]
		if !ok || !keep(sh) {
			continue
		}
		out = append(out, Booking{Reservation: r, Show: sh})
	}
	return out, nil
}
