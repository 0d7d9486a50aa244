package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/CourageAllien/revshare/internal/httpserver/deps"
	"github.com/CourageAllien/revshare/internal/httpserver/handlers"
	"github.com/CourageAllien/revshare/internal/httpserver/mw"
)

func init() { Register(registerLeadMagnet) }

func registerLeadMagnet(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		TrustProxy:        d.TrustProxy,
	})).Post("/api/lead-magnet", handlers.SendLeadMagnet(d))
	r.Get("/api/todays-topic", handlers.TodaysTopic(d))
}
