package handler

import (
	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/handler/http"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/service"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
)

// Handlers aggregates the transport handlers of the application. Only HTTP is
// served; the field layout leaves room for additional transports.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, storages, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
