// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Karpekin

// Package adapter provides a Go client for the go-notes-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples consumers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mkarpekin/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-notes-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. Register and Login call it automatically on
	// success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the created user record.
	Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error)

	// Login exchanges credentials for a token. On success it stores the
	// bearer token via SetToken and returns the authenticated user record.
	// Returns [ErrUnauthorized] (wrapped) when the credentials are rejected.
	Login(ctx context.Context, req models.LoginUserRequest) (models.User, error)

	// Me fetches the profile of the authenticated user. Requires a valid
	// bearer token.
	Me(ctx context.Context) (models.User, error)

	// CreateNote stores a new note and returns it with the server-assigned
	// ID, version and timestamps. Requires a valid bearer token.
	CreateNote(ctx context.Context, req models.NoteCreateRequest) (models.Note, error)

	// GetNote fetches a single note by its hex ObjectID. Returns
	// [ErrNotFound] (wrapped) when the note does not exist or belongs to
	// another user. Requires a valid bearer token.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// ListNotes fetches the notes matching filter, newest first. Requires a
	// valid bearer token.
	ListNotes(ctx context.Context, filter models.NoteListFilter) ([]models.Note, error)

	// UpdateNote applies a partial update to a note and returns the new
	// state. Returns [ErrConflict] (wrapped) when req.Version is stale.
	// Requires a valid bearer token.
	UpdateNote(ctx context.Context, noteID string, req models.NoteUpdateRequest) (models.Note, error)

	// DeleteNote soft-deletes a note. version must match the note's current
	// version; a stale value yields [ErrConflict] (wrapped). Requires a
	// valid bearer token.
	DeleteNote(ctx context.Context, noteID string, version int64) error

	// Version returns the server build version string.
	Version(ctx context.Context) (string, error)
}
