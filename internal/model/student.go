package model

// Student is one line of the student file.  The password is fixed at
// signup and stored as typed, so the file line is simply "id/password".
//
// Fields:
//  ID       – two digit student number, unique file-wide.
//  Password – four digit numeric password.
type Student struct {
	ID       string // student-info.txt field 1
	Password string // student-info.txt field 2
}
