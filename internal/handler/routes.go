package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kmdeck/userdir/internal/service"
)

// NewRouter wires all HTTP routes and middleware.
func NewRouter(
	profiles *service.ProfileService,
	sessions *service.SessionService,
	csrf *service.CSRFService,
	limiter *service.RateLimiter,
	cookieSecure bool,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(SecurityHeaders)

	r.Get("/healthz", HandleHealthz)

	h := NewProfileHandler(profiles, csrf)

	r.Group(func(r chi.Router) {
		r.Use(WithSession(sessions, cookieSecure))

		r.Get("/", h.HandleList)
		r.Get("/register", h.HandleRegisterForm)
		r.Get("/profile/{id}", h.HandleProfile)
		r.Get("/update/{id}", h.HandleUpdateForm)

		// State-mutating routes sit behind the per-IP rate limit.
		r.Group(func(r chi.Router) {
			r.Use(RateLimit(limiter))

			r.Post("/register", h.HandleRegister)
			r.Post("/update/{id}", h.HandleUpdate)
			r.Post("/delete/{id}", h.HandleDelete)
		})
	})

	return r
}
