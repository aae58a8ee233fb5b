package model

// Reservation is one booking record.  A single booking action stores all
// of its seats (one to four) in one record, so Seats only carries the
// seats of that action, never the cumulative occupancy of the show.
//
// Fields:
//  StudentID – student who booked; must exist in the student file.
//  ShowID    – schedule entry ID; must exist in the schedule file.
//  Seats     – seats held by this record.
type Reservation struct {
	StudentID string     // booking-info.txt field 1
	ShowID    string     // booking-info.txt field 2
	Seats     SeatVector // booking-info.txt field 3
}

// Equal reports a field-for-field match on the parsed values.
func (r Reservation) Equal(o Reservation) bool {
	return r.StudentID == o.StudentID && r.ShowID == o.ShowID && r.Seats == o.Seats
}
