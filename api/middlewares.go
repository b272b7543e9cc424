package api

import (
	"net/http"

	"github.com/go-chi/cors"
)

type middleware func(http.Handler) http.Handler

func inlineMiddleware(middleware func(rw http.ResponseWriter, r *http.Request, next http.Handler)) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			middleware(rw, r, next)
		})
	}
}

func (h *apiHandler) cors() middleware {
	origins := h.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{datasetIDHeader},
		MaxAge:         300,
	})
}

// serverHeaders tags responses with the server name and the id of the
// dataset they were computed from.
func (h *apiHandler) serverHeaders() middleware {
	return inlineMiddleware(func(rw http.ResponseWriter, r *http.Request, next http.Handler) {
		if h.opts.ServerName != "" {
			rw.Header().Set("Server", h.opts.ServerName)
		}
		rw.Header().Set(datasetIDHeader, h.data.ID().String())
		next.ServeHTTP(rw, r)
	})
}
