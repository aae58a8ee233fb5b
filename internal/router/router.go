// Package router maps main menu choices to the flows that serve them.
package router

import (
	"context"

	"github.com/iliyamo/kucinema/internal/handler"
	"github.com/iliyamo/kucinema/internal/prompt"
	"github.com/iliyamo/kucinema/internal/session"
)

// Action is one main menu entry.
type Action func(ctx context.Context, sess *session.Session) error

type route struct {
	label  string
	action Action
}

// Menu is the main prompt.  Choice 0 always exits.
type Menu struct {
	p      *prompt.Prompt
	order  []int
	routes map[int]route
}

// NewMenu returns an empty menu writing to p.
func NewMenu(p *prompt.Prompt) *Menu {
	return &Menu{p: p, routes: make(map[int]route)}
}

// Handle registers an action under a single digit choice between 1 and 9.
func (m *Menu) Handle(choice int, label string, action Action) {
	if choice < 1 || choice > 9 {
		panic("menu choice must be a digit between 1 and 9")
	}
	if _, ok := m.routes[choice]; !ok {
		m.order = append(m.order, choice)
	}
	m.routes[choice] = route{label: label, action: action}
}

// RegisterRoutes wires the customer flows onto the menu.
func RegisterRoutes(m *Menu, c *handler.CustomerHandler) {
	m.Handle(1, "Book a movie", c.Book)
	m.Handle(2, "View my bookings", c.History)
	m.Handle(3, "Cancel a booking", c.Cancel)
	m.Handle(4, "View the timetable", c.Timetable)
}

// Run shows the menu until the operator chooses 0.  An error from an
// action ends the loop and is returned.
func (m *Menu) Run(ctx context.Context, sess *session.Session) error {
	allowed := append([]int{0}, m.order...)
	for {
		m.p.Println()
		m.p.Println("================= Main menu =================")
		for _, c := range m.order {
			m.p.Printf("%d) %s\n", c, m.routes[c].label)
		}
		m.p.Println("0) Exit")
		m.p.Println("=============================================")
		n, err := m.p.MenuChoice("Choose a menu: ", allowed...)
		if err != nil {
			return err
		}
		if n == 0 {
			m.p.Println("Exiting.")
			return nil
		}
		if err := m.routes[n].action(ctx, sess); err != nil {
			return err
		}
	}
}
