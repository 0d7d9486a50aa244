package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CourageAllien/revshare/internal/httpserver/deps"
	"github.com/CourageAllien/revshare/internal/leadmagnet"
	"github.com/CourageAllien/revshare/internal/logger"
)

type leadMagnetRequest struct {
	Email string `json:"email"`
}

type leadMagnetResponse struct {
	Success     bool   `json:"success"`
	CompanyName string `json:"companyName"`
	TopicTitle  string `json:"topicTitle"`
}

// SendLeadMagnet generates today's guide for the visitor's company and
// emails it to them.
func SendLeadMagnet(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leadMagnetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Email is required")
			return
		}

		result, err := d.LeadMagnet.Deliver(r.Context(), req.Email)
		switch {
		case errors.Is(err, leadmagnet.ErrEmailRequired):
			writeError(w, http.StatusBadRequest, "Email is required")
			return
		case errors.Is(err, leadmagnet.ErrPersonalEmail):
			writeError(w, http.StatusBadRequest, "Please use your company email address to receive personalized insights.")
			return
		case err != nil:
			d.Logger.Error("lead magnet delivery failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to generate and send your guide. Please try again.")
			return
		}

		writeJSON(w, http.StatusOK, leadMagnetResponse{
			Success:     true,
			CompanyName: result.CompanyName,
			TopicTitle:  result.TopicTitle,
		})
	}
}

// TodaysTopic exposes the current guide topic so the site can advertise it.
func TodaysTopic(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.LeadMagnet.TodaysTopic())
	}
}
