package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(compressionLevel))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// JSON API
	router.Group(func(r chi.Router) {
		r.Post("/convert", h.convert)
		r.Post("/publish", h.publish)
		r.Post("/preview", h.preview)
		r.Get("/version", h.getServerVersion)
	})

	// web form
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Post("/ui/convert", h.uiConvert)
		r.Post("/ui/publish", h.uiPublish)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
