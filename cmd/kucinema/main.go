// Package main is the kucinema entry point: a terminal movie booking tool
// that keeps its schedule, students and bookings in three flat files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const (
	Version = "0.1.0"
	appName = "kucinema"
)

// Exit statuses.  An interrupt exits like a shell reports SIGINT.
const (
	exitFailure     = 1
	exitInterrupted = 130
)

// errInterrupted is returned when the operator stops the program with
// Ctrl+C or the process receives SIGTERM.
var errInterrupted = errors.New("terminated by the user")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	code := exitCode(err)
	if code == exitFailure {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if code != 0 {
		os.Exit(code)
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInterrupted):
		return exitInterrupted
	default:
		return exitFailure
	}
}
