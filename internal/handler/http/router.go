package http

import (
	"log/slog"
	"os"

	"github.com/flosclinic/attendance-bot/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	channelSecret string,
	env string,
	healthHandler HealthHandler,
	webhookHandler WebhookHandler,
	bookingHandler BookingHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "flos-attendance-bot"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	// The booking confirmation endpoint is called from the dashboard's
	// browser, so it needs CORS.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", healthHandler.Status)

	r.Group(func(r chi.Router) {
		r.Use(middleware.LineSignature(channelSecret))
		r.Post("/webhook", webhookHandler.Receive)
	})

	r.Post("/booking-confirmation", bookingHandler.SendConfirmation)

	return r
}
