package handler

import (
	"errors"

	"github.com/iliyamo/kucinema/internal/prompt"
	"github.com/iliyamo/kucinema/internal/service"
	"github.com/iliyamo/kucinema/internal/session"
)

// AuthHandler runs the date prompt and the login/signup flow that open
// every session.
type AuthHandler struct {
	Svc *service.BookingService
	P   *prompt.Prompt
}

// NewAuthHandler returns an AuthHandler.
func NewAuthHandler(svc *service.BookingService, p *prompt.Prompt) *AuthHandler {
	return &AuthHandler{Svc: svc, P: p}
}

// Start asks for the virtual current date and then logs a student in,
// registering them first if the student number is new.
func (h *AuthHandler) Start() (*session.Session, error) {
	today, err := h.P.Date("Set the current date (YYYY-MM-DD): ")
	if err != nil {
		return nil, err
	}
	id, err := h.login()
	if err != nil {
		return nil, err
	}
	h.P.Printf("Welcome, %s! Moving to the main menu.\n", id)
	return session.New(today, id), nil
}

// login loops until a student is logged in.  A refused intent prompt or
// a wrong password restarts from the student number.
func (h *AuthHandler) login() (string, error) {
	for {
		id, err := h.P.StudentID("Student number (2 digits): ")
		if err != nil {
			return "", err
		}
		ok, err := h.P.Confirm("Log in or sign up with this student number? (Y/N): ")
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}

		st, found, err := h.Svc.FindStudent(id)
		if err != nil {
			return "", err
		}
		if !found {
			pw, err := h.P.Password("New password (4 digits): ")
			if err != nil {
				return "", err
			}
			if _, err := h.Svc.Register(id, pw); err != nil {
				return "", err
			}
			h.P.Println("Sign up complete.")
			return id, nil
		}

		pw, err := h.P.Password("Password (4 digits): ")
		if err != nil {
			return "", err
		}
		if err := h.Svc.Login(st, pw); err != nil {
			if errors.Is(err, service.ErrWrongPassword) {
				h.P.Errorf("the password does not match; starting over")
				continue
			}
			return "", err
		}
		return id, nil
	}
}
