package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dias221467/waseela/internal/app"
	"github.com/Dias221467/waseela/internal/config"
	"github.com/Dias221467/waseela/internal/scheduler"
	"github.com/Dias221467/waseela/internal/tui"
	"github.com/Dias221467/waseela/pkg/logger"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	logFile string

	rootCmd = &cobra.Command{
		Use:   "waseela",
		Short: "Personal SMART goal tracker with milestones, resources and achievements",
		Long: `Waseela keeps SMART goals and their milestones in memory, serves them
over an HTTP/JSON API or a terminal UI, and unlocks achievement badges as
you make progress.`,
		SilenceUsage: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the websocket event stream and the notification jobs",
		RunE:  runServe,
	}

	tuiCmd = &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal UI",
		RunE:  runTUI,
	}
)

func init() {
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of discarding them")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Hub.Close()

	jobs, err := scheduler.NewNotificationScheduler(a.Notifications, cfg.DueSoonSchedule, cfg.CleanupSchedule)
	if err != nil {
		return err
	}
	jobs.Start()
	defer jobs.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the UI; logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger.SetOutput(out)

	cfg := config.LoadConfig()
	logger.InitLogger(cfg.LogLevel)
	logger.SetOutput(out)

	a, err := app.New(cfg)
	if err != nil {
		return err
	}

	return tui.Run(tui.New(cmd.Context(), a.Goals, a.Resources, a.Achievements))
}
