package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/jacklucas/notes-api/internal/config"
	"github.com/jacklucas/notes-api/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, log *logger.Logger) *httpServer {
	if cfg.RequestTimeout > 0 {
		router = http.TimeoutHandler(router, cfg.RequestTimeout, "request timed out")
	}

	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: router,
		},
		logger: log,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
