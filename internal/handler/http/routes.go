package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const uploadsPrefix = "/uploads/"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.settings.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}))
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}
	router.Use(middleware.Compress(5))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.handle(h.register))
		r.Post("/login", h.handle(h.login))
		r.Post("/logout", h.handle(h.logout))

		r.Post("/upload-by-link", h.handle(h.uploadByLink))
		r.Post("/upload", h.handle(h.uploadFiles))

		r.Get("/places/{id}", h.handle(h.getPlace))
		r.Get("/main", h.handle(h.listAllPlaces))

		r.Get("/version", h.getServerVersion)
		if h.settings.UploadDir != "" {
			r.Get(uploadsPrefix+"*", uploadsFileServer(h.settings.UploadDir))
		}
	})

	// anonymous callers allowed, a bad token is still rejected
	router.Group(func(r chi.Router) {
		r.Use(h.optionalIdentity)
		r.Get("/profile", h.handle(h.profile))
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireIdentity)

		r.Post("/places", h.handle(h.createPlace))
		r.Get("/places", h.handle(h.listOwnerPlaces))
		r.Put("/places", h.handle(h.updatePlace))
		r.Delete("/places/{id}", h.handle(h.deletePlace))

		r.Post("/booking", h.handle(h.createBooking))
		r.Get("/booking", h.handle(h.listUserBookings))
		r.Delete("/booking/{bookingId}", h.handle(h.deleteBooking))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// uploadsFileServer serves stored photos read-only. Directory listings and
// hidden entries, such as the staging dir of in-progress uploads, are not
// exposed.
func uploadsFileServer(dir string) http.HandlerFunc {
	fs := http.StripPrefix(uploadsPrefix, http.FileServer(http.Dir(dir)))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") || hasHiddenSegment(r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	}
}

func hasHiddenSegment(p string) bool {
	for _, segment := range strings.Split(p, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
