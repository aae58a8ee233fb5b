// Package session holds the per-run context shared by the menu flows: the
// operator supplied "today" and the logged in student.
package session

// Session is created once after login and passed by pointer to every
// flow that needs it.  Neither field changes after login.
type Session struct {
	// Today is the virtual current date, YYYY-MM-DD.  It is compared as
	// a string against show dates, which share the same fixed layout.
	Today string
	// StudentID is the logged in student.
	StudentID string
}

// New returns a session for the given date and student.
func New(today, studentID string) *Session {
	return &Session{Today: today, StudentID: studentID}
}

// IsAfterToday reports whether date is strictly later than Today.
func (s *Session) IsAfterToday(date string) bool { return date > s.Today }

// IsPast reports whether date is strictly earlier than Today.
func (s *Session) IsPast(date string) bool { return date < s.Today }
