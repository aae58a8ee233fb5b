package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/queue"
)

// MaxSeatsPerBooking is the largest group a single booking may hold.
const MaxSeatsPerBooking = 4

// ErrInvalidSelection is returned by Book when the seat labels are not a
// set of one to MaxSeatsPerBooking distinct valid labels.
var ErrInvalidSelection = errors.New("invalid seat selection")

// Book reserves the given seats of show for a student, re-runs the
// integrity pass and publishes a confirmation event.  The seat labels
// must already have been checked against the show's occupancy.
func (s *BookingService) Book(ctx context.Context, show model.Show, labels []string, studentID string) (model.Reservation, error) {
	res, err := s.book(show, labels, studentID)
	if err != nil {
		return model.Reservation{}, err
	}
	if _, err := s.CheckAll(); err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, queue.KindConfirmed, show, res)
	return res, nil
}

// book writes the two files of a booking.  The schedule is updated first
// and the booking record appended second.  There is no rollback: if the
// second write fails, the next integrity pass reports the mismatch.
func (s *BookingService) book(show model.Show, labels []string, studentID string) (model.Reservation, error) {
	seats, err := selection(labels)
	if err != nil {
		return model.Reservation{}, err
	}
	if _, err := s.Shows.UpdateSeats(show.ID, func(cur model.SeatVector) (model.SeatVector, error) {
		return cur.Or(seats), nil
	}); err != nil {
		return model.Reservation{}, fmt.Errorf("book %s: %w", show.ID, err)
	}
	res := model.Reservation{StudentID: studentID, ShowID: show.ID, Seats: seats}
	if err := s.Reservations.Create(res); err != nil {
		return model.Reservation{}, fmt.Errorf("book %s: %w", show.ID, err)
	}
	slog.Info("booking written", "student", studentID, "show", show.ID, "seats", seats.Labels(),
		"schedule", s.Shows.Path(), "bookings", s.Reservations.Path())
	return res, nil
}

// Cancel removes a booking, frees its seats in the schedule, re-runs the
// integrity pass and publishes a cancellation event.
func (s *BookingService) Cancel(ctx context.Context, res model.Reservation) (model.Show, error) {
	show, err := s.cancel(res)
	if err != nil {
		return model.Show{}, err
	}
	if _, err := s.CheckAll(); err != nil {
		return model.Show{}, err
	}
	s.publish(ctx, queue.KindCancelled, show, res)
	return show, nil
}

// cancel deletes the matching booking line and subtracts its seats from
// the schedule, clamping at zero.
func (s *BookingService) cancel(res model.Reservation) (model.Show, error) {
	if err := s.Reservations.Delete(res); err != nil {
		return model.Show{}, fmt.Errorf("cancel: %w", err)
	}
	show, err := s.Shows.UpdateSeats(res.ShowID, func(cur model.SeatVector) (model.SeatVector, error) {
		return cur.Sub(res.Seats), nil
	})
	if err != nil {
		return model.Show{}, fmt.Errorf("cancel %s: %w", res.ShowID, err)
	}
	slog.Info("booking cancelled", "student", res.StudentID, "show", res.ShowID, "seats", res.Seats.Labels(),
		"schedule", s.Shows.Path(), "bookings", s.Reservations.Path())
	return show, nil
}

func selection(labels []string) (model.SeatVector, error) {
	if len(labels) == 0 || len(labels) > MaxSeatsPerBooking {
		return model.SeatVector{}, fmt.Errorf("%w: %d seats", ErrInvalidSelection, len(labels))
	}
	seats, err := model.SeatsFromLabels(labels)
	if err != nil {
		return model.SeatVector{}, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	if seats.Count() != len(labels) {
		return model.SeatVector{}, fmt.Errorf("%w: duplicate seat", ErrInvalidSelection)
	}
	return seats, nil
}

// publish sends a booking event when a publisher is configured.  Broker
// failures are logged and otherwise ignored.
func (s *BookingService) publish(ctx context.Context, kind string, show model.Show, res model.Reservation) {
	if s.Events == nil {
		return
	}
	ev := queue.BookingEvent{
		EventID:    uuid.NewString(),
		Kind:       kind,
		StudentID:  res.StudentID,
		ShowID:     show.ID,
		MovieTitle: show.Title,
		ShowDate:   show.Date,
		ShowTime:   show.Time,
		SeatLabels: res.Seats.Labels(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Events.Publish(ctx, ev); err != nil {
		slog.Warn("booking event not published", "kind", kind, "show", show.ID, "error", err)
	}
}
