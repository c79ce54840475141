package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/tui"
)

// UI is the front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the user quits or the process receives SIGINT/SIGTERM.
// Quitting from the UI is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}
