package handler

import (
	"context"
	"strings"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/prompt"
	"github.com/iliyamo/kucinema/internal/service"
	"github.com/iliyamo/kucinema/internal/session"
)

// CustomerHandler groups the menu flows a logged in student can run:
// booking, reservation history, cancellation and the timetable.
type CustomerHandler struct {
	Svc *service.BookingService
	P   *prompt.Prompt
}

// NewCustomerHandler returns a CustomerHandler.
func NewCustomerHandler(svc *service.BookingService, p *prompt.Prompt) *CustomerHandler {
	if svc == nil || p == nil {
		panic("nil dependency passed to NewCustomerHandler")
	}
	return &CustomerHandler{Svc: svc, P: p}
}

type bookingStep int

const (
	stepSelectDate bookingStep = iota
	stepSelectShowing
	stepSelectHeadcount
	stepSelectSeats
	stepDone
)

// bookingState is what the booking flow has collected so far.  Answering
// 0 at any step moves back one step; from the first step it leaves.
type bookingState struct {
	step      bookingStep
	date      string
	show      model.Show
	headcount int
}

// Book runs the booking flow until a booking is written or the student
// backs out to the main menu.
func (h *CustomerHandler) Book(ctx context.Context, sess *session.Session) error {
	st := bookingState{step: stepSelectDate}
	for st.step != stepDone {
		var err error
		switch st.step {
		case stepSelectDate:
			err = h.selectDate(sess, &st)
		case stepSelectShowing:
			err = h.selectShowing(&st)
		case stepSelectHeadcount:
			err = h.selectHeadcount(&st)
		case stepSelectSeats:
			err = h.selectSeats(ctx, sess, &st)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (h *CustomerHandler) selectDate(sess *session.Session, st *bookingState) error {
	dates, err := h.Svc.BookableDates(sess)
	if err != nil {
		return err
	}
	h.P.Println("Booking a movie. These dates are open for booking:")
	if len(dates) == 0 {
		h.P.Println("There are no showings after the current date.")
		st.step = stepDone
		return nil
	}
	for i, d := range dates {
		h.P.Printf(">> %d) %s\n", i+1, d)
	}
	h.P.Println("0) Back")
	n, err := h.P.Choice("Enter the number of a date: ", len(dates))
	if err != nil {
		return err
	}
	if n == 0 {
		st.step = stepDone
		return nil
	}
	st.date = dates[n-1]
	st.step = stepSelectShowing
	return nil
}

func (h *CustomerHandler) selectShowing(st *bookingState) error {
	shows, err := h.Svc.ShowsOn(st.date)
	if err != nil {
		return err
	}
	h.P.Printf("Showings on %s:\n", st.date)
	for i, sh := range shows {
		showLine(h.P, i+1, sh, " | "+itoa(sh.Seats.Free())+" seats left")
	}
	h.P.Println("0) Back")
	for {
		n, err := h.P.Choice("Enter the number of a showing: ", len(shows))
		if err != nil {
			return err
		}
		if n == 0 {
			st.step = stepSelectDate
			return nil
		}
		if shows[n-1].Seats.Free() == 0 {
			h.P.Errorf("that showing is sold out")
			continue
		}
		st.show = shows[n-1]
		st.step = stepSelectHeadcount
		return nil
	}
}

func (h *CustomerHandler) selectHeadcount(st *bookingState) error {
	free := st.show.Seats.Free()
	for {
		n, err := h.P.Choice("Number of people (1-4, 0 to go back): ", service.MaxSeatsPerBooking)
		if err != nil {
			return err
		}
		if n == 0 {
			st.step = stepSelectShowing
			return nil
		}
		if n > free {
			h.P.Errorf("only %d seats are left", free)
			continue
		}
		st.headcount = n
		st.step = stepSelectSeats
		return nil
	}
}

func (h *CustomerHandler) selectSeats(ctx context.Context, sess *session.Session, st *bookingState) error {
	h.P.Printf("%s %s | %s\n", st.show.Date, st.show.Time, st.show.Title)
	h.P.Printf("%s", seatMap(st.show.Seats))

	picked := make([]string, 0, st.headcount)
	taken := make(map[string]bool, st.headcount)
	for len(picked) < st.headcount {
		s, err := h.P.Line("Seat " + itoa(len(picked)+1) + " of " + itoa(st.headcount) + " (e.g. A1, 0 to go back): ")
		if err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "0" {
			st.step = stepSelectHeadcount
			return nil
		}
		idx, err := model.SeatIndex(s)
		if err != nil {
			h.P.Errorf("a seat is a row A-E followed by a column 1-5")
			continue
		}
		if st.show.Seats[idx] != 0 {
			h.P.Errorf("seat %s is already booked", s)
			continue
		}
		if taken[s] {
			h.P.Errorf("seat %s is already in this booking", s)
			continue
		}
		taken[s] = true
		picked = append(picked, s)
	}

	res, err := h.Svc.Book(ctx, st.show, picked, sess.StudentID)
	if err != nil {
		return err
	}
	h.P.Printf("Booked %s %s | %s | %s\n", st.show.Date, st.show.Time, st.show.Title, seatList(res.Seats))
	st.step = stepDone
	return nil
}
