package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/record"
	"github.com/iliyamo/kucinema/internal/utils"
)

// ErrWrongPassword is returned by Login when the password does not match.
var ErrWrongPassword = errors.New("wrong password")

// ErrStudentExists is returned by Register for an ID already on file.
var ErrStudentExists = errors.New("student already registered")

// FindStudent looks a student up in a freshly validated student file.
func (s *BookingService) FindStudent(id string) (model.Student, bool, error) {
	students, err := s.ValidateStudents()
	if err != nil {
		return model.Student{}, false, err
	}
	for _, st := range students {
		if st.ID == id {
			return st, true, nil
		}
	}
	return model.Student{}, false, nil
}

// Login checks a typed password against the stored one.
func (s *BookingService) Login(st model.Student, password string) error {
	if !utils.VerifyPassword(st.Password, password) {
		return ErrWrongPassword
	}
	return nil
}

// Register appends a new student to the student file.
func (s *BookingService) Register(id, password string) (model.Student, error) {
	if !record.ValidStudentID(id) || !record.ValidPassword(password) {
		return model.Student{}, fmt.Errorf("register %q: %w", id, record.ErrSyntax)
	}
	if _, found, err := s.FindStudent(id); err != nil {
		return model.Student{}, err
	} else if found {
		return model.Student{}, fmt.Errorf("register %q: %w", id, ErrStudentExists)
	}
	st := model.Student{ID: id, Password: password}
	if err := s.Students.Create(st); err != nil {
		return model.Student{}, err
	}
	slog.Info("student registered", "student", id, "file", s.Students.Path())
	return st, nil
}
