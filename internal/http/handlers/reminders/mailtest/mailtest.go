// Package mailtest реализует HTTP-обработчик проверки SMTP-настроек:
// отправляет письмо на адрес отправителя и отвечает простым текстом.
package mailtest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cutoffnow/cutoff-backend/internal/lib/sl"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	SendTest() error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminders.mailtest"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := h.service.SendTest(); err != nil {
		log.Error("test email failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Email failed"))
		return
	}

	log.Info("test email sent")
	_, _ = w.Write([]byte("Email sent!"))
}
