package model

// Show is one schedule entry: a single showing of a title at a date and
// time, together with the occupancy of its seats.  The schedule file is
// authoritative for occupancy; only Seats is ever rewritten by this
// program.
//
// Fields:
//  ID    – 12 digit YYYYMMDDHHmm identifier, strictly increasing in file order.
//  Title – movie title (letters, digits and inner spaces only).
//  Date  – show date, YYYY-MM-DD.
//  Time  – "HH:MM-HH:MM" with the end after the start.
//  Seats – occupancy vector, 1 for a booked seat.
type Show struct {
	ID    string     // movie-schedule.txt field 1
	Title string     // movie-schedule.txt field 2
	Date  string     // movie-schedule.txt field 3
	Time  string     // movie-schedule.txt field 4
	Seats SeatVector // movie-schedule.txt field 5
}
