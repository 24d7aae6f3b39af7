package http

import (
	"net/http"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/utils"
	"github.com/MKhiriev/go-stay/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) error {
	userID, err := identityUserID(r)
	if err != nil {
		return err
	}

	var req models.BookingRequest
	if err = decodeBody(r, &req); err != nil {
		return err
	}

	booking, err := req.Booking()
	if err != nil {
		return err
	}

	created, err := h.services.BookingService.CreateBooking(r.Context(), userID, booking)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().
		Str("booking_id", created.BookingID).
		Str("place_id", created.PlaceID).
		Msg("booking created")

	_, err = utils.WriteJSON(w, "Ok", http.StatusOK)
	return err
}

func (h *Handler) listUserBookings(w http.ResponseWriter, r *http.Request) error {
	userID, err := identityUserID(r)
	if err != nil {
		return err
	}

	bookings, err := h.services.BookingService.ListUserBookings(r.Context(), userID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, nonNil(bookings), http.StatusOK)
	return err
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) error {
	userID, err := identityUserID(r)
	if err != nil {
		return err
	}

	if err = h.services.BookingService.DeleteBooking(r.Context(), userID, chi.URLParam(r, "bookingId")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
