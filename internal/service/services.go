package service

import (
	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
	"github.com/mkarpekin/go-notes-keeper/internal/validators"
	"github.com/mkarpekin/go-notes-keeper/models"
)

// Services bundles the business-logic layer handed to the HTTP handlers.
type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of the storages. A single request
// validator is shared by the auth service and the note validation decorator.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	noteService := NewNoteValidationService(validator).
		Wrap(NewNoteService(storages.NoteRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		NoteService:    noteService,
		AppInfoService: appInfoService,
	}, nil
}
