// Package send реализует HTTP-обработчик запуска пакетной рассылки напоминаний.
//
// Маршрут дергается ежедневным планировщиком, но открыт и для ручного вызова.
// Исторически у API было два конфликтующих варианта этого маршрута с разными
// наборами окон; здесь оставлен один, набор окон задаётся конфигом.
package send

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/cutoffnow/cutoff-backend/internal/http/response"
	"github.com/cutoffnow/cutoff-backend/internal/lib/sl"
	"github.com/cutoffnow/cutoff-backend/internal/sheets"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает один прогон рассылки.
type Service interface {
	Run(ctx context.Context) (int, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminders.send"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sent, err := h.service.Run(r.Context())
	if err != nil {
		log.Error("reminder run failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		if errors.Is(err, sheets.ErrNotReady) {
			render.JSON(w, r, response.Error("storage not ready"))
			return
		}
		render.JSON(w, r, response.Error("Failed to send reminders"))
		return
	}

	log.Info("reminder run finished", slog.Int("sent", sent))
	render.JSON(w, r, response.Status("reminders sent"))
}
