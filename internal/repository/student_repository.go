package repository

import (
	"fmt"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/record"
)

// StudentRepo reads and appends to the student file.  Students are never
// modified or removed once written.
type StudentRepo struct {
	path string
}

// NewStudentRepo returns a StudentRepo bound to the given file.
func NewStudentRepo(path string) *StudentRepo { return &StudentRepo{path: path} }

// Path returns the file backing the repository.
func (r *StudentRepo) Path() string { return r.path }

// Lines returns the raw lines of the student file.
func (r *StudentRepo) Lines() ([]string, error) { return readLines(r.path) }

// Create appends a new student.  The caller is responsible for checking
// that the ID is not taken.
func (r *StudentRepo) Create(s model.Student) error {
	if !record.ValidStudentID(s.ID) || !record.ValidPassword(s.Password) {
		return fmt.Errorf("create student %q: %w", s.ID, record.ErrSyntax)
	}
	return appendLine(r.path, record.FormatStudent(s))
}
