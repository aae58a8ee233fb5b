// Package queue defines booking event payloads and the broker plumbing that
// carries them.  Publishing is optional and never affects the data files.
package queue

// Queue names.  Both queues are durable.
const (
	ConfirmedQueue = "booking.confirmed"
	CancelledQueue = "booking.cancelled"
)

// Event kinds.
const (
	KindConfirmed = "confirmed"
	KindCancelled = "cancelled"
)

// BookingEvent is published after a booking or cancellation has been
// written and the data files re-validated.  It carries enough show detail
// for consumers to log it without reading the schedule file.
type BookingEvent struct {
	EventID    string   `json:"event_id"`
	Kind       string   `json:"kind"`
	StudentID  string   `json:"student_id"`
	ShowID     string   `json:"show_id"`
	MovieTitle string   `json:"movie_title"`
	ShowDate   string   `json:"show_date"`
	ShowTime   string   `json:"show_time"`
	SeatLabels []string `json:"seats"`
	OccurredAt string   `json:"occurred_at"`
}

// QueueName returns the queue an event of this kind is published to.
func (e BookingEvent) QueueName() string {
	if e.Kind == KindCancelled {
		return CancelledQueue
	}
	return ConfirmedQueue
}
