package http

import (
	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/service"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
)

// Handler carries the dependencies shared by every HTTP route: the service
// layer, the storage aggregate (rate limiter and the MongoDB handle used by
// the health endpoint), and the application configuration that drives CORS,
// rate limiting, and the optional integrity check.
type Handler struct {
	services *service.Services

	storages *store.Storages

	cfg config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		storages: storages,
		cfg:      cfg,
		logger:   logger,
	}
}
