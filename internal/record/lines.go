package record

import (
	"regexp"
	"strings"

	"github.com/iliyamo/kucinema/internal/model"
)

var reStudentLine = regexp.MustCompile(`^(\d{2})/(\d{4})$`)

// ParseStudent parses "id/password".  Any deviation, including a blank
// line or surrounding whitespace, is a syntax violation.
func ParseStudent(line string) (model.Student, error) {
	m := reStudentLine.FindStringSubmatch(line)
	if m == nil {
		return model.Student{}, syntaxf("student line %q is not NN/NNNN", line)
	}
	return model.Student{ID: m[1], Password: m[2]}, nil
}

// FormatStudent is the inverse of ParseStudent.
func FormatStudent(s model.Student) string { return s.ID + "/" + s.Password }

// ParseShow parses "id/title/date/time/[seats]".  Fields are checked in
// order and the first violation is returned.
func ParseShow(line string) (model.Show, error) {
	if err := checkBare(line); err != nil {
		return model.Show{}, err
	}
	f := strings.Split(line, "/")
	if len(f) != 5 {
		return model.Show{}, syntaxf("schedule line has %d fields, want 5", len(f))
	}
	if err := CheckShowID(f[0]); err != nil {
		return model.Show{}, err
	}
	if err := CheckTitle(f[1]); err != nil {
		return model.Show{}, err
	}
	if err := CheckDate(f[2]); err != nil {
		return model.Show{}, err
	}
	if err := CheckShowTime(f[3]); err != nil {
		return model.Show{}, err
	}
	seats, err := model.DecodeSeats(f[4])
	if err != nil {
		return model.Show{}, syntaxf("%v", err)
	}
	// Only the year is compared; the rest of the ID is free to differ
	// from the show date.
	if f[0][0:4] != f[2][0:4] {
		return model.Show{}, semanticf("show id %q and date %q have different years", f[0], f[2])
	}
	return model.Show{ID: f[0], Title: f[1], Date: f[2], Time: f[3], Seats: seats}, nil
}

// FormatShow is the inverse of ParseShow.
func FormatShow(s model.Show) string {
	return strings.Join([]string{s.ID, s.Title, s.Date, s.Time, s.Seats.Encode()}, "/")
}

// ParseReservation parses "student_id/show_id/[seats]".
func ParseReservation(line string) (model.Reservation, error) {
	if err := checkBare(line); err != nil {
		return model.Reservation{}, err
	}
	f := strings.Split(line, "/")
	if len(f) != 3 {
		return model.Reservation{}, syntaxf("booking line has %d fields, want 3", len(f))
	}
	if !ValidStudentID(f[0]) {
		return model.Reservation{}, syntaxf("student id %q is not 2 digits", f[0])
	}
	if err := CheckShowID(f[1]); err != nil {
		return model.Reservation{}, err
	}
	seats, err := model.DecodeSeats(f[2])
	if err != nil {
		return model.Reservation{}, syntaxf("%v", err)
	}
	return model.Reservation{StudentID: f[0], ShowID: f[1], Seats: seats}, nil
}

// FormatReservation is the inverse of ParseReservation.
func FormatReservation(r model.Reservation) string {
	return r.StudentID + "/" + r.ShowID + "/" + r.Seats.Encode()
}

func checkBare(line string) error {
	if strings.TrimSpace(line) == "" {
		return syntaxf("blank line")
	}
	if strings.TrimSpace(line) != line {
		return syntaxf("line %q has surrounding whitespace", line)
	}
	return nil
}
