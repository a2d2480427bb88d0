// Package create реализует HTTP-обработчик добавления записи о подписке.
//
// Обработчик принимает JSON со всеми семью полями записи (пустые строки
// допустимы, но каждое поле обязано присутствовать), передает запись
// сервису и отвечает {"status":"success"}.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/cutoffnow/cutoff-backend/internal/http/response"
	"github.com/cutoffnow/cutoff-backend/internal/lib/sl"
	"github.com/cutoffnow/cutoff-backend/internal/models"
	"github.com/cutoffnow/cutoff-backend/internal/sheets"
)

// Handler управляет HTTP-запросами на добавление записей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления записи.
type Service interface {
	Add(ctx context.Context, req models.DummyRecord) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRecord
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.Add(r.Context(), req); err != nil {
		log.Error("failed to add subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		if errors.Is(err, sheets.ErrNotReady) {
			render.JSON(w, r, response.Error("storage not ready"))
			return
		}
		render.JSON(w, r, response.Error("Error adding subscription"))
		return
	}

	log.Info("subscription added")
	render.JSON(w, r, response.Status("success"))
}
