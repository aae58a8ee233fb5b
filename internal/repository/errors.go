// Package repository provides access to the flat data files.  Each file is
// read whole and rewritten whole; there is no locking, so the program
// assumes a single operator.  Sentinel errors defined here let the
// service layer tell a missing record from an I/O failure.
package repository

import "errors"

// ErrNotFound is returned when a show or booking record the caller
// refers to is not in the file.
var ErrNotFound = errors.New("not found")
