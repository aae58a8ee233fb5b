package handler

import (
	"context"
	"strconv"

	"github.com/iliyamo/kucinema/internal/session"
)

// History lists the student's bookings that are not in the past.
func (h *CustomerHandler) History(_ context.Context, sess *session.Session) error {
	bookings, err := h.Svc.History(sess)
	if err != nil {
		return err
	}
	h.P.Printf("\nBookings of %s:\n", sess.StudentID)
	if len(bookings) == 0 {
		h.P.Printf("%s has no bookings.\n", sess.StudentID)
	}
	for i, b := range bookings {
		showLine(h.P, i+1, b.Show, " | seats: "+seatList(b.Seats))
	}
	h.P.Println("Returning to the main menu.")
	return nil
}

// Cancel offers the student's future bookings for cancellation.  After
// each answer to the confirmation the list is shown again, until the
// student enters 0 or has nothing left to cancel.
func (h *CustomerHandler) Cancel(ctx context.Context, sess *session.Session) error {
	for {
		bookings, err := h.Svc.Cancellable(sess)
		if err != nil {
			return err
		}
		if len(bookings) == 0 {
			h.P.Printf("%s has no bookings that can be cancelled. Returning to the main menu.\n", sess.StudentID)
			return nil
		}
		h.P.Printf("Bookings of %s:\n", sess.StudentID)
		for i, b := range bookings {
			showLine(h.P, i+1, b.Show, " | "+seatList(b.Seats))
		}
		h.P.Println("0) Back")
		n, err := h.P.Choice("Choose the booking to cancel: ", len(bookings))
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		b := bookings[n-1]
		ok, err := h.P.Confirm(b.Show.Date + " " + b.Show.Time + " | " + b.Show.Title + " | " + seatList(b.Seats) + " - cancel this booking? (Y/N): ")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if _, err := h.Svc.Cancel(ctx, b.Reservation); err != nil {
			return err
		}
		h.P.Println("The booking was cancelled.")
	}
}

// Timetable prints every showing from the current date on.
func (h *CustomerHandler) Timetable(_ context.Context, sess *session.Session) error {
	shows, err := h.Svc.Timetable(sess)
	if err != nil {
		return err
	}
	h.P.Printf("\n--- Timetable (from %s) ---\n", sess.Today)
	if len(shows) == 0 {
		h.P.Println("No showings are scheduled.")
	}
	for i, sh := range shows {
		showLine(h.P, i+1, sh, "")
	}
	h.P.Println("------------------------------------------")
	_, err = h.P.Line("Press Enter to continue...")
	return err
}

func itoa(n int) string { return strconv.Itoa(n) }
