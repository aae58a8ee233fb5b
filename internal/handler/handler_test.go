package handler

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/kucinema/internal/prompt"
	"github.com/iliyamo/kucinema/internal/repository"
	"github.com/iliyamo/kucinema/internal/service"
	"github.com/iliyamo/kucinema/internal/session"
)

const emptySeats = "[0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]"

const schedule = "202512250900/Today/2025-12-25/09:00-11:00/" + emptySeats + "\n" +
	"202512261000/Tomorrow/2025-12-26/10:00-12:00/" + emptySeats + "\n" +
	"202512261400/Matinee/2025-12-26/14:00-16:00/[1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1]\n"

const (
	students = "07/1234\n09/0909\n"
	// the matinee is sold out to student 09
	soldOut = "09/202512261400/[1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1]\n"
)

type env struct {
	svc      *service.BookingService
	dir      string
	out      *bytes.Buffer
	students string
	bookings string
	schedule string
}

func newEnv(t *testing.T, bookings string) *env {
	t.Helper()
	dir := t.TempDir()
	e := &env{
		dir:      dir,
		out:      &bytes.Buffer{},
		schedule: filepath.Join(dir, "movie-schedule.txt"),
		students: filepath.Join(dir, "student-info.txt"),
		bookings: filepath.Join(dir, "booking-info.txt"),
	}
	require.NoError(t, os.WriteFile(e.schedule, []byte(schedule), 0o644))
	require.NoError(t, os.WriteFile(e.students, []byte(students), 0o644))
	require.NoError(t, os.WriteFile(e.bookings, []byte(soldOut+bookings), 0o644))
	e.svc = service.NewBookingService(
		repository.NewStudentRepo(e.students),
		repository.NewShowRepo(e.schedule),
		repository.NewReservationRepo(e.bookings),
		nil,
	)
	return e
}

func (e *env) customer(input string) *CustomerHandler {
	return NewCustomerHandler(e.svc, prompt.New(strings.NewReader(input), e.out))
}

func (e *env) read(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

func TestBook_FullFlow(t *testing.T) {
	e := newEnv(t, "")
	sess := session.New("2025-12-25", "07")

	// date 1, showing 1, two people, then an invalid, a repeated and a valid seat
	input := "1\n1\n2\nA1\nZ9\nA1\nA2\n"
	require.NoError(t, e.customer(input).Book(context.Background(), sess))

	assert.Equal(t, soldOut+"07/202512261000/[1,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n", e.read(t, e.bookings))
	assert.Contains(t, e.read(t, e.schedule), "202512261000/Tomorrow/2025-12-26/10:00-12:00/[1,1,0,")

	out := e.out.String()
	assert.Contains(t, out, ">> 1) 2025-12-26")
	assert.NotContains(t, out, ">> 1) 2025-12-25", "today is not bookable")
	assert.Contains(t, out, "a seat is a row A-E")
	assert.Contains(t, out, "already in this booking")
	assert.Contains(t, out, "Booked 2025-12-26 10:00-12:00 | Tomorrow | A1 A2")
}

func TestBook_RejectsOccupiedSeatAndSoldOutShow(t *testing.T) {
	e := newEnv(t, "")
	sess := session.New("2025-12-25", "07")

	// the sold out matinee first, then the open showing
	input := "1\n2\n1\n1\nB1\n"
	require.NoError(t, e.customer(input).Book(context.Background(), sess))
	assert.Contains(t, e.out.String(), "sold out")
	assert.Equal(t, soldOut+"07/202512261000/[0,0,0,0,0,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n", e.read(t, e.bookings))

	e.out.Reset()
	input = "1\n1\n1\nB1\nB2\n"
	require.NoError(t, e.customer(input).Book(context.Background(), sess))
	assert.Contains(t, e.out.String(), "seat B1 is already booked")
}

func TestBook_BackingOutWritesNothing(t *testing.T) {
	e := newEnv(t, "")
	sess := session.New("2025-12-25", "07")

	// seats -> headcount -> showing -> date -> main menu
	input := "1\n1\n1\n0\n0\n0\n0\n"
	require.NoError(t, e.customer(input).Book(context.Background(), sess))
	assert.Equal(t, soldOut, e.read(t, e.bookings))
	assert.Equal(t, schedule, e.read(t, e.schedule))
	assert.Equal(t, 2, strings.Count(e.out.String(), ">> 1) 2025-12-26"))
}

func TestBook_NoDates(t *testing.T) {
	e := newEnv(t, "")
	require.NoError(t, e.customer("").Book(context.Background(), session.New("2025-12-31", "07")))
	assert.Contains(t, e.out.String(), "no showings after the current date")
}

func TestBook_EOF(t *testing.T) {
	e := newEnv(t, "")
	err := e.customer("1\n").Book(context.Background(), session.New("2025-12-25", "07"))
	assert.ErrorIs(t, err, io.EOF)
}

const booked = "07/202512261000/[1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n"

func bookedSchedule() string {
	return strings.Replace(schedule, "202512261000/Tomorrow/2025-12-26/10:00-12:00/[0,", "202512261000/Tomorrow/2025-12-26/10:00-12:00/[1,", 1)
}

func TestCancel_RefuseThenConfirm(t *testing.T) {
	e := newEnv(t, booked)
	require.NoError(t, os.WriteFile(e.schedule, []byte(bookedSchedule()), 0o644))
	sess := session.New("2025-12-25", "07")

	input := "1\nN\n1\nY\n"
	require.NoError(t, e.customer(input).Cancel(context.Background(), sess))

	assert.Equal(t, soldOut, e.read(t, e.bookings))
	assert.Equal(t, schedule, e.read(t, e.schedule))
	out := e.out.String()
	assert.Contains(t, out, "The booking was cancelled.")
	assert.Contains(t, out, "no bookings that can be cancelled")
}

func TestCancel_SameDayIsNotOffered(t *testing.T) {
	e := newEnv(t, booked)
	require.NoError(t, os.WriteFile(e.schedule, []byte(bookedSchedule()), 0o644))

	require.NoError(t, e.customer("").Cancel(context.Background(), session.New("2025-12-26", "07")))
	assert.Contains(t, e.out.String(), "no bookings that can be cancelled")
	assert.Equal(t, soldOut+booked, e.read(t, e.bookings))
}

func TestHistoryAndTimetable(t *testing.T) {
	e := newEnv(t, booked)
	require.NoError(t, os.WriteFile(e.schedule, []byte(bookedSchedule()), 0o644))
	sess := session.New("2025-12-25", "07")
	c := e.customer("\n")

	require.NoError(t, c.History(context.Background(), sess))
	assert.Contains(t, e.out.String(), "1) 2025-12-26 10:00-12:00 | Tomorrow | seats: A1")

	e.out.Reset()
	require.NoError(t, c.Timetable(context.Background(), sess))
	out := e.out.String()
	assert.Contains(t, out, "1) 2025-12-25 09:00-11:00 | Today")
	assert.Contains(t, out, "3) 2025-12-26 14:00-16:00 | Matinee")
}

func TestAuth_ExistingStudent(t *testing.T) {
	e := newEnv(t, "")
	input := strings.Join([]string{
		"2025-02-30", "2025-12-25", // nonexistent date, then a real one
		"7", "07", "N", // bad id, then refuse
		"07", "Y", "12", "4321", // bad syntax, then wrong password
		"07", "Y", "1234",
	}, "\n") + "\n"
	h := NewAuthHandler(e.svc, prompt.New(strings.NewReader(input), e.out))

	sess, err := h.Start()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", sess.Today)
	assert.Equal(t, "07", sess.StudentID)

	out := e.out.String()
	assert.Contains(t, out, "does not exist in the calendar")
	assert.Contains(t, out, "two digits")
	assert.Contains(t, out, "four digits")
	assert.Contains(t, out, "does not match")
	assert.Contains(t, out, "Welcome, 07!")
}

func TestAuth_SignUp(t *testing.T) {
	e := newEnv(t, "")
	h := NewAuthHandler(e.svc, prompt.New(strings.NewReader("2025-12-25\n08\nY\n0000\n"), e.out))

	sess, err := h.Start()
	require.NoError(t, err)
	assert.Equal(t, "08", sess.StudentID)
	assert.Equal(t, students+"08/0000\n", e.read(t, e.students))
}

func TestSeatMap(t *testing.T) {
	m := seatMap([25]int{0, 1})
	lines := strings.Split(strings.TrimRight(m, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "   1 2 3 4 5", lines[0])
	assert.Equal(t, "A  □ ■ □ □ □", lines[1])
	assert.Equal(t, "E  □ □ □ □ □", lines[5])
}
