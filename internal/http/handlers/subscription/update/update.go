// Package update реализует HTTP-обработчик обновления записи по позиции строки.
//
// Позиция из пути валидна только в пределах одной последовательности
// list-затем-update: конкурирующее удаление выше по листу сдвигает строки,
// и обновление попадёт не в ту запись.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/cutoffnow/cutoff-backend/internal/http/response"
	"github.com/cutoffnow/cutoff-backend/internal/lib/sl"
	"github.com/cutoffnow/cutoff-backend/internal/models"
	"github.com/cutoffnow/cutoff-backend/internal/sheets"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

type Service interface {
	Update(ctx context.Context, rowPos int, req models.UpdateRecord) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.update"

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

	var req models.UpdateRecord
	if err = render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Int("row", rowPos))

	if err = h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err = h.service.Update(r.Context(), rowPos, req); err != nil {
		log.Error("failed to update subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		if errors.Is(err, sheets.ErrNotReady) {
			render.JSON(w, r, response.Error("storage not ready"))
			return
		}
		render.JSON(w, r, response.Error("Update failed"))
		return
	}

	log.Info("subscription updated", slog.Int("row", rowPos))
	render.JSON(w, r, response.Status("updated"))
}
