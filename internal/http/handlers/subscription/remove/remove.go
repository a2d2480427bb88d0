// Package remove реализует HTTP-обработчик удаления записи по позиции строки.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
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

type Service interface {
	Remove(ctx context.Context, rowPos int) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rowPos, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		log.Error("invalid row format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid row"))
		return
	}

	if err = h.service.Remove(r.Context(), rowPos); err != nil {
		log.Error("failed to delete subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		if errors.Is(err, sheets.ErrNotReady) {
			render.JSON(w, r, response.Error("storage not ready"))
			return
		}
		render.JSON(w, r, response.Error("Delete failed"))
		return
	}

	log.Info("subscription deleted", slog.Int("row", rowPos))
	render.JSON(w, r, response.Status("deleted"))
}
