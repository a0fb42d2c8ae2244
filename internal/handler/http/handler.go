package http

import (
	"github.com/jacklucas/notes-api/internal/config"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/service"
)

type Handler struct {
	services *service.Services

	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
