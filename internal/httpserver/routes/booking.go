package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/CourageAllien/revshare/internal/httpserver/deps"
	"github.com/CourageAllien/revshare/internal/httpserver/handlers"
	"github.com/CourageAllien/revshare/internal/httpserver/mw"
)

func init() { Register(registerBooking) }

func registerBooking(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		TrustProxy:        d.TrustProxy,
	})).Post("/api/book", handlers.CreateBooking(d))
	r.Get("/api/book", handlers.ListBookings(d))
}
