// Package database prepares the data directory that holds the three flat
// files.  It is the only place that decides whether a missing file is
// fatal or can be created.
package database

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrScheduleMissing is returned when the schedule file does not exist.
// The schedule is seeded externally and is never created here.
var ErrScheduleMissing = errors.New("schedule file missing")

// Files holds the resolved paths of the data files.
type Files struct {
	Schedule string
	Students string
	Bookings string
}

// Open resolves the data files inside dir and verifies them: the schedule
// file must exist and be readable, while missing student and booking files
// are created empty.  Any failure here is an environment failure and the
// caller should stop before starting the interactive flow.
func Open(dir, schedule, students, bookings string) (Files, error) {
	f := Files{
		Schedule: filepath.Join(dir, schedule),
		Students: filepath.Join(dir, students),
		Bookings: filepath.Join(dir, bookings),
	}

	if _, err := os.Stat(f.Schedule); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Files{}, fmt.Errorf("%w: %s", ErrScheduleMissing, f.Schedule)
		}
		return Files{}, fmt.Errorf("stat %s: %w", f.Schedule, err)
	}
	if err := checkReadable(f.Schedule); err != nil {
		return Files{}, err
	}

	for _, p := range []string{f.Students, f.Bookings} {
		if err := ensureFile(p); err != nil {
			return Files{}, err
		}
	}
	return f, nil
}

func checkReadable(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return fh.Close()
}

// ensureFile creates an empty file when path does not exist, and
// otherwise checks that it can be opened for reading and writing.
func ensureFile(path string) error {
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Warn("data file missing, creating empty file", "path", path)
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("stat %s: %w", path, err)
	}
	fh, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return fh.Close()
}
