package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/CourageAllien/revshare/internal/domain"
	"github.com/CourageAllien/revshare/internal/httpserver/deps"
	"github.com/CourageAllien/revshare/internal/logger"
	"github.com/CourageAllien/revshare/internal/scheduler"
)

type runRemindersResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Results   scheduler.Summary `json:"results"`
	Timestamp time.Time         `json:"timestamp"`
}

// RunReminders triggers one reminder sweep. Meant for an external cron; the
// bearer check lives in middleware.
func RunReminders(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		if d.TimeNow != nil {
			now = d.TimeNow()
		}

		summary, err := d.Reminders.Run(r.Context(), now)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to process reminders")
			return
		}

		writeJSON(w, http.StatusOK, runRemindersResponse{
			Success:   true,
			Message:   "Reminder check complete",
			Results:   summary,
			Timestamp: now.UTC(),
		})
	}
}

type sendReminderRequest struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// SendReminder sends one reminder immediately, bypassing window checks.
// Operator tooling; booking flags stay untouched.
func SendReminder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Type == "" || req.Name == "" || req.Email == "" || req.Date == "" || req.Time == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		kind, err := domain.ParseReminderKind(req.Type)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid reminder type")
			return
		}

		if err := d.Reminders.SendAdhoc(r.Context(), kind, req.Name, req.Email, req.Date, req.Time); err != nil {
			d.Logger.Error("manual reminder failed",
				logger.String("type", req.Type),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to send reminder")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true, "type": req.Type})
	}
}
