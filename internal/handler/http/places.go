package http

import (
	"net/http"

	"github.com/MKhiriev/go-stay/internal/utils"
	"github.com/MKhiriev/go-stay/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createPlace(w http.ResponseWriter, r *http.Request) error {
	userID, err := identityUserID(r)
	if err != nil {
		return err
	}

	var place models.Place
	if err = decodeBody(r, &place); err != nil {
		return err
	}

	created, err := h.services.PlaceService.CreatePlace(r.Context(), userID, place)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, created, http.StatusOK)
	return err
}

func (h *Handler) listOwnerPlaces(w http.ResponseWriter, r *http.Request) error {
	userID, err := identityUserID(r)
	if err != nil {
		return err
	}

	places, err := h.services.PlaceService.ListOwnerPlaces(r.Context(), userID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, nonNil(places), http.StatusOK)
	return err
}

func (h *Handler) getPlace(w http.ResponseWriter, r *http.Request) error {
	place, err := h.services.PlaceService.GetPlace(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, place, http.StatusOK)
	return err
}

// updatePlace replaces the listing identified by the "id" field of the body.
func (h *Handler) updatePlace(w http.ResponseWriter, r *http.Request) error {
	userID, err := identityUserID(r)
	if err != nil {
		return err
	}

	var place models.Place
	if err = decodeBody(r, &place); err != nil {
		return err
	}

	if err = h.services.PlaceService.UpdatePlace(r.Context(), userID, place); err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, "ok", http.StatusOK)
	return err
}

func (h *Handler) deletePlace(w http.ResponseWriter, r *http.Request) error {
	userID, err := identityUserID(r)
	if err != nil {
		return err
	}

	if err = h.services.PlaceService.DeletePlace(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}

func (h *Handler) listAllPlaces(w http.ResponseWriter, r *http.Request) error {
	places, err := h.services.PlaceService.ListAllPlaces(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, nonNil(places), http.StatusOK)
	return err
}

// nonNil makes empty collections encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
