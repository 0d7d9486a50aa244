package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CourageAllien/revshare/internal/booking"
	"github.com/CourageAllien/revshare/internal/domain"
	"github.com/CourageAllien/revshare/internal/httpserver/deps"
	"github.com/CourageAllien/revshare/internal/logger"
)

type bookingSummary struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	CompanyName string `json:"companyName,omitempty"`
}

type createBookingResponse struct {
	Success bool           `json:"success"`
	Booking bookingSummary `json:"booking"`
}

// CreateBooking handles new strategy call submissions.
func CreateBooking(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req booking.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		result, err := d.Bookings.Create(r.Context(), req)
		if err != nil {
			if errors.Is(err, booking.ErrValidation) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			d.Logger.Error("booking creation failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to create booking")
			return
		}

		writeJSON(w, http.StatusOK, createBookingResponse{
			Success: true,
			Booking: bookingSummary{
				ID:          result.ID,
				Date:        result.Date,
				Time:        result.Time,
				CompanyName: result.CompanyName,
			},
		})
	}
}

// ListBookings returns every stored booking, admin use only.
func ListBookings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := d.Bookings.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list bookings", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to list bookings")
			return
		}
		if bookings == nil {
			bookings = []domain.Booking{}
		}
		writeJSON(w, http.StatusOK, map[string][]domain.Booking{"bookings": bookings})
	}
}
