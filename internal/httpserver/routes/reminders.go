package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/CourageAllien/revshare/internal/httpserver/deps"
	"github.com/CourageAllien/revshare/internal/httpserver/handlers"
	"github.com/CourageAllien/revshare/internal/httpserver/mw"
)

func init() { Register(registerReminders) }

func registerReminders(r chi.Router, d deps.Deps) {
	r.With(mw.RequireBearer(d.CronSecret, d.Logger)).
		Get("/api/cron/send-reminders", handlers.RunReminders(d))
	r.Post("/api/send-reminders", handlers.SendReminder(d))
}
