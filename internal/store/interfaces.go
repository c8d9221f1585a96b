package store

import (
	"context"
	"time"

	"github.com/mkarpekin/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new user document and returns it with the
	// server-assigned ID. Returns [ErrEmailAlreadyExists] when the email is
	// already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given (lowercased) email.
	// Returns [ErrNoUserWasFound] when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given hex ObjectID.
	// Returns [ErrNoUserWasFound] when the ID is malformed or unknown.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// NoteRepository persists and retrieves user-owned notes.
// Every method scopes its queries to the owning user; a note ID belonging to
// a different user behaves exactly like a missing note.
type NoteRepository interface {
	// CreateNote inserts a new note at version 1 and returns it with the
	// server-assigned ID and timestamps.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNote returns a single alive note. Returns [ErrNoteNotFound] when the
	// note is missing, soft-deleted, or owned by someone else.
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)

	// ListNotes returns the user's alive notes matching filter,
	// newest first.
	ListNotes(ctx context.Context, userID string, filter models.NoteListFilter) ([]models.Note, error)

	// UpdateNote applies a partial update guarded by the version in update
	// and returns the updated note. Returns [ErrVersionConflict] when the
	// version is stale and [ErrNoteNotFound] when the note does not exist.
	UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdateRequest) (models.Note, error)

	// DeleteNote soft-deletes a note guarded by the given version.
	// Error semantics match [NoteRepository.UpdateNote].
	DeleteNote(ctx context.Context, userID, noteID string, version int64) error

	// PurgeDeletedNotes permanently removes notes soft-deleted before
	// olderThan and reports how many documents were removed.
	PurgeDeletedNotes(ctx context.Context, olderThan time.Time) (int64, error)
}

// RateDecision is the outcome of a single rate-limit check.
type RateDecision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool

	// Count is the number of requests observed in the current window,
	// including this one.
	Count int

	// WindowEnd is when the current window expires and the counter resets.
	WindowEnd time.Time
}

// RateLimiter counts requests per key over a fixed window.
//
// Implementations fail open: when the backing store is unavailable the
// request is allowed, since rejecting all traffic on a limiter outage is
// worse than briefly not limiting it.
type RateLimiter interface {
	// Allow records one request for key and reports whether it fits within
	// limit requests per window.
	Allow(key string, limit int, window time.Duration) RateDecision

	// Close releases any resources held by the limiter.
	Close() error
}
