package repository

import (
	"fmt"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/record"
)

// ShowRepo manages the schedule file.  The schedule is seeded externally;
// the only field this program ever rewrites is a show's seat vector.
type ShowRepo struct {
	path string
}

// NewShowRepo returns a ShowRepo bound to the given file.
func NewShowRepo(path string) *ShowRepo { return &ShowRepo{path: path} }

// Path returns the file backing the repository.
func (r *ShowRepo) Path() string { return r.path }

// Lines returns the raw lines of the schedule file.
func (r *ShowRepo) Lines() ([]string, error) { return readLines(r.path) }

// List parses every line of the schedule file in file order.  It assumes
// the file already passed validation and fails on the first bad line.
func (r *ShowRepo) List() ([]model.Show, error) {
	lines, err := r.Lines()
	if err != nil {
		return nil, err
	}
	shows := make([]model.Show, 0, len(lines))
	for i, line := range lines {
		s, err := record.ParseShow(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", r.path, i+1, err)
		}
		shows = append(shows, s)
	}
	return shows, nil
}

// GetByID returns the show with the given ID or ErrNotFound.
func (r *ShowRepo) GetByID(id string) (model.Show, error) {
	shows, err := r.List()
	if err != nil {
		return model.Show{}, err
	}
	for _, s := range shows {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Show{}, fmt.Errorf("show %s: %w", id, ErrNotFound)
}

// UpdateSeats rewrites the seat vector of one show.  update receives the
// stored vector and returns the new one; every other line of the file is
// written back untouched.  It returns the updated show.
func (r *ShowRepo) UpdateSeats(id string, update func(model.SeatVector) (model.SeatVector, error)) (model.Show, error) {
	lines, err := r.Lines()
	if err != nil {
		return model.Show{}, err
	}
	for i, line := range lines {
		s, err := record.ParseShow(line)
		if err != nil || s.ID != id {
			continue
		}
		seats, err := update(s.Seats)
		if err != nil {
			return model.Show{}, err
		}
		s.Seats = seats
		lines[i] = record.FormatShow(s)
		if err := writeLines(r.path, lines); err != nil {
			return model.Show{}, err
		}
		return s, nil
	}
	return model.Show{}, fmt.Errorf("show %s: %w", id, ErrNotFound)
}
