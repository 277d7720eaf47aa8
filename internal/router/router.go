package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"vibecheck-backend/internal/handlers"
	"vibecheck-backend/internal/middleware"
)

func New(
	pollHandler *handlers.PollHandler,
	quizHandler *handlers.QuizHandler,
	rateLimitPerMin int,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Generation endpoints share one limiter
	generateLimiter := middleware.NewRateLimiter(rateLimitPerMin, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session)

		r.Get("/topics", pollHandler.Topics)

		r.Route("/polls", func(r chi.Router) {
			r.Use(generateLimiter.Middleware)
			r.Post("/generate", pollHandler.Generate)
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(generateLimiter.Middleware)
				r.Get("/today", quizHandler.Today)
			})
			r.Post("/submit", quizHandler.Submit)
			r.Get("/history", quizHandler.History)
		})
	})

	return r
}
