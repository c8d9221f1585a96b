package service

import (
	"context"

	"github.com/mkarpekin/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers the account lifecycle: registration, credential
// verification, profile lookup and the JWT token pair of operations used by
// the authentication middleware.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterUserRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginUserRequest) (models.User, error)
	Profile(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService covers the note CRUD operations. Every call is scoped to the
// authenticated user identified by userID.
type NoteService interface {
	CreateNote(ctx context.Context, userID string, req models.NoteCreateRequest) (models.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	ListNotes(ctx context.Context, userID string, filter models.NoteListFilter) ([]models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID string, req models.NoteUpdateRequest) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string, version int64) error
}

// AppInfoService exposes build metadata for the version endpoint.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
