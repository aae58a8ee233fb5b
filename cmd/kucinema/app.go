package main

import (
	"log/slog"
	"os"

	"github.com/iliyamo/kucinema/internal/config"
	"github.com/iliyamo/kucinema/internal/database"
	"github.com/iliyamo/kucinema/internal/queue"
	"github.com/iliyamo/kucinema/internal/repository"
	"github.com/iliyamo/kucinema/internal/service"
)

// options are the persistent flags shared by every command.
type options struct {
	home     string
	logLevel string
}

// config loads the environment and applies flag overrides, then installs
// the default logger.
func (o options) config() config.Config {
	cfg := config.Load()
	if o.home != "" {
		cfg.Home = o.home
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return cfg
}

type app struct {
	svc *service.BookingService
}

// newApp prepares the data directory and wires the booking service.
func newApp(o options) (*app, error) {
	cfg := o.config()
	files, err := database.Open(cfg.Home, cfg.ScheduleFile, cfg.StudentFile, cfg.BookingFile)
	if err != nil {
		return nil, err
	}
	var events service.Publisher
	if cfg.EventsEnabled {
		events = queue.NewAMQPPublisher(cfg.AMQPURL)
	}
	svc := service.NewBookingService(
		repository.NewStudentRepo(files.Students),
		repository.NewShowRepo(files.Schedule),
		repository.NewReservationRepo(files.Bookings),
		events,
	)
	slog.Debug("data files ready", "env", cfg.Env, "home", cfg.Home)
	return &app{svc: svc}, nil
}
