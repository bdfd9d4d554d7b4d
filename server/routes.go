// Package server exposes title fetching and segmentation over HTTP.
package server

import (
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gaurav-prasanna/headlink/config"
	"github.com/gaurav-prasanna/headlink/core"
	"github.com/gaurav-prasanna/headlink/internal"
)

var log = internal.GetLogger()

const ReadHeaderTimeout = 5 * time.Second

// Create builds the HTTP server for the given titles source.
func Create(cfg config.ServerConfig, src core.TitleSource) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(src),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

// NewRouter wires the routes and middleware.
func NewRouter(src core.TitleSource) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Get("/fetch-title", FetchTitleHandler(src))
	router.Post("/segment", SegmentHandler())
	router.Post("/generate", GenerateHandler())

	return router
}
