package models

// RegisterUserRequest is the payload for creating a new account.
type RegisterUserRequest struct {
	// Email is the unique account identifier.
	// Required; normalized to lowercase before storage.
	Email string `json:"email" validate:"required,email,max=254"`

	// Password is the plaintext password supplied at registration.
	// Required; only its bcrypt hash is ever persisted.
	// The 72-byte cap mirrors the bcrypt input limit.
	Password string `json:"password" validate:"required,min=8,max=72"`

	// Name is an optional display name.
	Name string `json:"name,omitempty" validate:"max=100"`
}

// LoginUserRequest is the payload for exchanging credentials for a token.
type LoginUserRequest struct {
	// Email of an existing account. Required.
	Email string `json:"email" validate:"required,email"`

	// Password in plaintext. Required.
	Password string `json:"password" validate:"required"`
}

// NoteCreateRequest is the payload for creating a note.
type NoteCreateRequest struct {
	// Title is the note heading. Required.
	Title string `json:"title" validate:"required,max=200"`

	// Body is the note content. May be empty.
	Body string `json:"body" validate:"max=100000"`

	// Tags is an optional list of labels.
	Tags []string `json:"tags,omitempty" validate:"max=32,dive,min=1,max=64"`

	// Archived creates the note directly in the archive when true.
	Archived bool `json:"archived"`
}

// NoteUpdateRequest is the payload for partially updating a note.
// Only non-nil fields are applied (partial update support).
type NoteUpdateRequest struct {
	// Title replaces the note heading when non-nil.
	Title *string `json:"title,omitempty" validate:"omitempty,max=200"`

	// Body replaces the note content when non-nil.
	Body *string `json:"body,omitempty" validate:"omitempty,max=100000"`

	// Tags replaces the full tag list when non-nil.
	// An empty non-nil slice clears all tags.
	Tags *[]string `json:"tags,omitempty" validate:"omitempty,max=32,dive,min=1,max=64"`

	// Archived moves the note in or out of the archive when non-nil.
	Archived *bool `json:"archived,omitempty"`

	// Version is the note version the client last saw.
	// Required; a stale value is rejected with a conflict.
	Version int64 `json:"version" validate:"required,gt=0"`
}

// NoteListFilter represents search criteria for listing notes.
// Only the owner's notes are ever considered regardless of filter contents.
type NoteListFilter struct {
	// Tag restricts the listing to notes carrying the given tag.
	// Empty means no tag filtering.
	Tag string `json:"tag,omitempty" validate:"max=64"`

	// Archived selects archived (true) or active (false) notes.
	// If nil, only active notes are returned.
	Archived *bool `json:"archived,omitempty"`

	// Limit caps the number of returned notes. Zero means the server default.
	Limit int `json:"limit,omitempty" validate:"gte=0,lte=100"`

	// Offset skips the given number of notes for pagination.
	Offset int `json:"offset,omitempty" validate:"gte=0"`
}
