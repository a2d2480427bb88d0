// Package list реализует HTTP-обработчик выборки записей владельца.
//
// Ответ — массив записей с вычисленным полем row. userEmail берётся из
// query-параметра и никак не проверяется: это заявленная клиентом,
// неподтверждённая личность.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/cutoffnow/cutoff-backend/internal/http/response"
	"github.com/cutoffnow/cutoff-backend/internal/lib/sl"
	"github.com/cutoffnow/cutoff-backend/internal/models"
	"github.com/cutoffnow/cutoff-backend/internal/sheets"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	List(ctx context.Context, ownerEmail string) ([]models.Record, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ownerEmail := r.URL.Query().Get("userEmail")

	records, err := h.service.List(r.Context(), ownerEmail)
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		if errors.Is(err, sheets.ErrNotReady) {
			render.JSON(w, r, response.Error("storage not ready"))
			return
		}
		render.JSON(w, r, response.Error("Error retrieving subscriptions"))
		return
	}

	log.Info("subscriptions listed", slog.Int("count", len(records)))
	render.JSON(w, r, records)
}
