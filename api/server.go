/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. Logging:    Structured request logging via zerolog
  4. Metrics:    Prometheus request counters/latency
  5. CORS:       Cross-origin requests for frontends

ROUTE GROUPS:
  /api/rooms/*     Room catalog
  /api/guests/*    Guest directory and loyalty
  /api/bookings/*  Booking lifecycle, invoicing, services, payments
  /api/feedback    Guest feedback
  /metrics         Prometheus scrape endpoint

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(metricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", h.SearchRooms)
			r.Get("/{id}", h.GetRoom)
		})

		r.Route("/guests", func(r chi.Router) {
			r.Post("/", h.RegisterGuest)
			r.Get("/{id}", h.GetGuest)
			r.Post("/{id}/loyalty", h.EnrollLoyalty)
			r.Post("/{id}/loyalty/points", h.AddPoints)
			r.Post("/{id}/loyalty/redeem", h.RedeemPoints)
			r.Post("/{id}/loyalty/free-night", h.EarnFreeNight)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.CreateBooking)
			r.Get("/{id}", h.GetBooking)
			r.Delete("/{id}", h.CancelBooking)
			r.Post("/{id}/invoice", h.GenerateInvoice)
			r.Post("/{id}/services", h.RequestService)
			r.Post("/{id}/payments", h.RequestPayment)
			r.Get("/{id}/payments", h.ListPayments)
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Post("/", h.SubmitFeedback)
			r.Get("/", h.ListFeedback)
		})
	})

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", metricsHandler(newRegistry()))

	return r
}

// requestLogger logs one structured line per request.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
