package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/campusdesk/college-helpdesk/internal/infra/config"
)

// Poller is a long-running adapter that consumes messages until the context
// is canceled. The Telegram bot implements it.
type Poller interface {
	Run(ctx context.Context) error
}

// App encapsulates the HTTP server and optional bot lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
	bot    Poller
}

// NewApp is used by Wire to build the runnable app. The bot may be nil when
// no Telegram token is configured.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, bot Poller) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, bot: bot}
}

// Run starts the HTTP server and the bot, then blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	if a.bot != nil {
		go func() {
			a.logger.Info("telegram bot starting")
			if err := a.bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("telegram bot stopped", "error", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
