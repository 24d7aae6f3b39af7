package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/utils"
)

const sessionCookieName = "token"

// requireIdentity is an HTTP middleware that enforces session-based
// authentication.
//
// It reads the "token" cookie, validates it via
// [service.AuthService.ParseToken] and, on success, stores the caller's
// [models.Identity] in the request context before delegating to the next
// handler. A missing cookie or an invalid token is answered with 401.
func (h *Handler) requireIdentity(next http.Handler) http.Handler {
	return h.resolveIdentity(next, true)
}

// optionalIdentity behaves like requireIdentity but lets requests without a
// cookie through anonymously. A cookie carrying an invalid token is still
// rejected with 401.
func (h *Handler) optionalIdentity(next http.Handler) http.Handler {
	return h.resolveIdentity(next, false)
}

func (h *Handler) resolveIdentity(next http.Handler, required bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromCookie(r)
		if err != nil {
			if required {
				h.respondError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.respondError(w, r, err)
			return
		}

		ctx = utils.WithIdentity(ctx, token.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromCookie returns the session token, or [ErrUnauthenticated] when
// the cookie is absent or empty.
func tokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrUnauthenticated
		}
		return "", err
	}

	if cookie.Value == "" {
		return "", ErrUnauthenticated
	}

	return cookie.Value, nil
}

// identityUserID returns the caller resolved by requireIdentity.
func identityUserID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrUnauthenticated
	}
	return userID, nil
}
