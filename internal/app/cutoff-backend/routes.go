package cutoffbackend

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cutoffnow/cutoff-backend/internal/config"
	"github.com/cutoffnow/cutoff-backend/internal/http/handlers/reminders/mailtest"
	"github.com/cutoffnow/cutoff-backend/internal/http/handlers/reminders/send"
	"github.com/cutoffnow/cutoff-backend/internal/http/handlers/root"
	"github.com/cutoffnow/cutoff-backend/internal/http/handlers/subscription/create"
	"github.com/cutoffnow/cutoff-backend/internal/http/handlers/subscription/list"
	"github.com/cutoffnow/cutoff-backend/internal/http/handlers/subscription/remove"
	"github.com/cutoffnow/cutoff-backend/internal/http/handlers/subscription/update"
	"github.com/cutoffnow/cutoff-backend/internal/http/middlewarectx"
	notifyservice "github.com/cutoffnow/cutoff-backend/internal/services/notify"
	senderservice "github.com/cutoffnow/cutoff-backend/internal/services/sender"
	subservice "github.com/cutoffnow/cutoff-backend/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Пути и формы ответов повторяют исходный API, на который завязан фронтенд.
// Идентификация не выполняется: userEmail в запросах — неподтверждённая
// заявка клиента, доступ она не ограничивает.
func RegisterRoutes(r chi.Router, cfg *config.Config, logger *slog.Logger,
	subscriptionService *subservice.Service,
	notifyService *notifyservice.Service,
	senderService *senderservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(middlewarectx.RateLimitMiddleware(cfg.RateLimit, logger))

	r.Get("/", root.New(logger).ServeHTTP)
	r.Get("/sendReminders", send.New(logger, notifyService).ServeHTTP)
	r.Post("/addSubscription", create.New(logger, subscriptionService).ServeHTTP)
	r.Get("/getSubscriptions", list.New(logger, subscriptionService).ServeHTTP)
	r.Put("/updateSubscription/{row}", update.New(logger, subscriptionService).ServeHTTP)
	r.Delete("/deleteSubscription/{row}", remove.New(logger, subscriptionService).ServeHTTP)
	r.Get("/testEmail", mailtest.New(logger, senderService).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
}
