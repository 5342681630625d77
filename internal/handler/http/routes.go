package http

import (
	"net/http"

	"github.com/MKhiriev/agency-portal/internal/adapter"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}
	router.Use(h.withSession)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)

			r.Get("/graphql", h.graphql)
			r.Post("/graphql", h.graphql)

			// routes requiring a session
			r.Group(func(r chi.Router) {
				r.Use(h.requireSession)
				r.Post("/upload", h.upload)
				r.Post("/upload-avatar", h.uploadAvatar)
				r.Get("/dadata/{kind}", h.suggest)
				r.Post("/dadata/{kind}", h.suggest)
			})
		})
	})

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/"+adapter.UploadsDir+"/*", h.uploadedFiles())

	router.Group(func(r chi.Router) {
		r.Use(h.guardPages)
		r.Get("/*", h.static())
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// static serves the front-end from the public dir.
func (h *Handler) static() http.HandlerFunc {
	if h.settings.PublicDir == "" {
		return func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, errNotFound)
		}
	}
	files := http.FileServer(http.Dir(h.settings.PublicDir))
	return files.ServeHTTP
}

// uploadedFiles serves user uploads. Only raster images are shown inline;
// everything else is sent as an attachment under a sandbox policy.
func (h *Handler) uploadedFiles() http.HandlerFunc {
	serve := h.static()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
		if !models.IsInlineImagePath(r.URL.Path) {
			w.Header().Set("Content-Disposition", "attachment")
		}
		serve(w, r)
	}
}
