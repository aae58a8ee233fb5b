// Package service implements the booking workflow on top of the flat-file
// repositories: the integrity pass run at startup and after every change,
// the booking and cancellation transactions, and the read-only queries the
// menus display.
package service

import (
	"context"

	"github.com/iliyamo/kucinema/internal/queue"
	"github.com/iliyamo/kucinema/internal/repository"
)

// Publisher delivers booking events.  queue.AMQPPublisher satisfies it.
type Publisher interface {
	Publish(ctx context.Context, ev queue.BookingEvent) error
}

// BookingService groups the three repositories.  Events may be nil, in
// which case no events are published.
type BookingService struct {
	Students     *repository.StudentRepo
	Shows        *repository.ShowRepo
	Reservations *repository.ReservationRepo
	Events       Publisher
}

// NewBookingService constructs a BookingService.  The repositories must be
// non-nil.
func NewBookingService(students *repository.StudentRepo, shows *repository.ShowRepo, reservations *repository.ReservationRepo, events Publisher) *BookingService {
	if students == nil || shows == nil || reservations == nil {
		panic("nil repository passed to NewBookingService")
	}
	return &BookingService{
		Students:     students,
		Shows:        shows,
		Reservations: reservations,
		Events:       events,
	}
}
