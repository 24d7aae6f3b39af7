package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/utils"
	"github.com/MKhiriev/go-stay/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	var user models.User
	if err := decodeBody(r, &user); err != nil {
		return err
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, registeredUser.Public(), http.StatusOK)
	return err
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeBody(r, &user); err != nil {
		return err
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		return err
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		return err
	}

	log.Debug().Str("id", foundUser.UserID).Msg("user successfully logged in")

	http.SetCookie(w, h.sessionCookie(token.String()))
	_, err = utils.WriteJSON(w, foundUser.Public(), http.StatusOK)
	return err
}

// profile answers null for anonymous callers.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) error {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		_, err := utils.WriteJSON(w, nil, http.StatusOK)
		return err
	}

	user, err := h.services.AuthService.Profile(r.Context(), userID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user.Public(), http.StatusOK)
	return err
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) error {
	cookie := h.sessionCookie("")
	cookie.MaxAge = -1

	http.SetCookie(w, cookie)
	_, err := utils.WriteJSON(w, true, http.StatusOK)
	return err
}

// sessionCookie builds the "token" cookie. No Max-Age is set, so the browser
// keeps it for the session.
func (h *Handler) sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.settings.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// decodeBody decodes the JSON request body into dst, reporting malformed
// input as [ErrInvalidJSON].
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrEmptyBody):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}
