package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user document produces an empty result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotSaved is returned when an insert completes without a driver
	// error but the server did not acknowledge a new document, indicating that
	// no data was actually persisted.
	ErrNoteNotSaved = errors.New("note was not saved")

	// ErrNoteNotFound is returned when a query or update targets a note
	// (identified by note id and user id) that does not exist, is soft-deleted,
	// or belongs to another user.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client does not match the current version
	// stored in the database, meaning another request has modified the note
	// since the client last read it.
	ErrVersionConflict = errors.New("note version conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrExecutingQuery is returned when executing a find, insert, update, or
	// delete against MongoDB fails at the driver level.
	ErrExecutingQuery = errors.New("error executing mongo query")

	// ErrDecodingDocument is returned when decoding a single BSON document
	// into a destination struct fails.
	ErrDecodingDocument = errors.New("failed to decode document")

	// ErrCursorIteration is returned when draining a result cursor fails,
	// typically mid-result-set.
	ErrCursorIteration = errors.New("failed to iterate result cursor")
)
