package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iliyamo/kucinema/internal/handler"
	"github.com/iliyamo/kucinema/internal/prompt"
	"github.com/iliyamo/kucinema/internal/queue"
	"github.com/iliyamo/kucinema/internal/router"
	"github.com/iliyamo/kucinema/internal/service"
)

// errCheckFailed is returned by validate after the yaml report has
// already described the failure.
var errCheckFailed = errors.New("integrity check failed")

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Campus movie ticket booking",
		Long: `kucinema books movie seats for students from a terminal.

The schedule, student and booking files are validated on startup and
after every booking or cancellation; any inconsistency stops the program.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), a, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.PersistentFlags().StringVar(&opts.home, "home", "", "Directory holding the data files (overrides KUCINEMA_HOME)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(validateCmd(&opts), pruneCmd(&opts), auditConsumeCmd(&opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func validateCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the data files and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*opts)
			if err != nil {
				return err
			}
			sum, err := a.svc.CheckAll()
			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if encErr := enc.Encode(service.NewReport(sum, err)); encErr != nil {
					return encErr
				}
				if closeErr := enc.Close(); closeErr != nil {
					return closeErr
				}
				if err != nil {
					return errCheckFailed
				}
				return nil
			case "text":
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "ok: %d students, %d shows, %d bookings (%d pruned)\n",
					sum.Students, sum.Shows, sum.Bookings, sum.Pruned)
				return nil
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml)")
	return cmd
}

func pruneCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove booking records that hold no seat",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*opts)
			if err != nil {
				return err
			}
			n, err := a.svc.PruneEmptyBookings()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d empty booking(s)\n", n)
			return nil
		},
	}
}

func auditConsumeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "audit-consume",
		Short: "Append booking events from the broker to the audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.config()
			err := queue.StartAuditConsumer(cmd.Context(), cfg.AMQPURL, cfg.AuditLogPath)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// runInteractive validates the data files, then runs the login flow and
// the main menu.  Running out of input ends the session quietly.  When
// ctx is cancelled the terminal is restored, a warning is printed and
// errInterrupted is returned while the session is left blocked on input.
func runInteractive(ctx context.Context, a *app, in io.Reader, out io.Writer) error {
	if _, err := a.svc.CheckAll(); err != nil {
		return err
	}
	p := prompt.New(in, out)
	done := make(chan error, 1)
	go func() { done <- interactiveSession(ctx, a, p) }()

	select {
	case err := <-done:
		return ignoreEOF(err)
	case <-ctx.Done():
		if err := p.Restore(); err != nil {
			slog.Warn("could not restore terminal", "error", err)
		}
		p.Println()
		p.Warnf("the program was terminated by the user")
		return errInterrupted
	}
}

func interactiveSession(ctx context.Context, a *app, p *prompt.Prompt) error {
	sess, err := handler.NewAuthHandler(a.svc, p).Start()
	if err != nil {
		return err
	}
	menu := router.NewMenu(p)
	router.RegisterRoutes(menu, handler.NewCustomerHandler(a.svc, p))
	return menu.Run(ctx, sess)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
