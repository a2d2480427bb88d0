// Package cutoffbackend собирает приложение: хранилище, сервисы, HTTP-сервер
// и ежедневный планировщик рассылки.
package cutoffbackend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/cutoffnow/cutoff-backend/internal/config"
	"github.com/cutoffnow/cutoff-backend/internal/lib/sl"
	"github.com/cutoffnow/cutoff-backend/internal/lib/smtp"
	"github.com/cutoffnow/cutoff-backend/internal/scheduler"
	notifyservice "github.com/cutoffnow/cutoff-backend/internal/services/notify"
	"github.com/cutoffnow/cutoff-backend/internal/services/reminder"
	senderservice "github.com/cutoffnow/cutoff-backend/internal/services/sender"
	subservice "github.com/cutoffnow/cutoff-backend/internal/services/subscription"
	"github.com/cutoffnow/cutoff-backend/internal/sheets"
)

// App приложение целиком: HTTP-сервер и планировщик.
type App struct {
	server    *http.Server
	scheduler *scheduler.Scheduler
	logger    *slog.Logger
}

// New собирает приложение.
//
// Клиент Google Sheets инициализируется в фоне: сервер начинает принимать
// запросы сразу, а до завершения инициализации все обращения к хранилищу
// завершаются ошибкой "storage not ready".
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	holder := sheets.NewHolder()
	go func() {
		client, err := sheets.NewClient(ctx, cfg.Sheets)
		if err != nil {
			logger.Error("failed to initialize sheets client", sl.Err(err))
			return
		}
		holder.Set(client)
		logger.Info("sheets client ready")
	}()

	transport := smtp.NewTransport(cfg.SMTP, logger)

	subscriptionService := subservice.New(holder, logger)
	senderService := senderservice.New(transport, logger)
	notifyService := notifyservice.New(
		subscriptionService,
		reminder.New(cfg.Reminder.Windows),
		senderService,
		logger,
	)

	router := chi.NewRouter()
	RegisterRoutes(router, cfg, logger, subscriptionService, notifyService, senderService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	sched, err := scheduler.New(cfg.Reminder, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		server:    srv,
		scheduler: sched,
		logger:    logger,
	}, nil
}

// Run запускает сервер и планировщик и ждет завершения контекста.
func (a *App) Run(ctx context.Context) error {
	a.scheduler.Start()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.scheduler.Stop()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		a.scheduler.Stop()
		return a.server.Shutdown(timeoutCtx)
	}
}
