package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Note represents a single user-owned note document.
//
// Every note belongs to exactly one user and is never visible to anyone else;
// all persistence-layer queries must filter by UserID. Concurrent
// modifications are guarded by the Version field: updates and deletes carry
// the version the client last saw, and a mismatch is reported as a conflict
// instead of silently overwriting newer data.
type Note struct {
	// ID is the unique identifier of the note.
	// Stored as the `_id` field of the notes collection.
	ID bson.ObjectID `json:"id" bson:"_id,omitempty"`

	// UserID is the owner of the note.
	// Required for data isolation; never exposed via JSON because the owner
	// is implied by the authenticated request.
	UserID bson.ObjectID `json:"-" bson:"user_id"`

	// Title is the short human-readable heading of the note.
	Title string `json:"title" bson:"title"`

	// Body is the free-form text content of the note.
	Body string `json:"body" bson:"body"`

	// Tags is an optional list of labels used for filtering.
	Tags []string `json:"tags,omitempty" bson:"tags,omitempty"`

	// Archived marks the note as hidden from default listings.
	// Archived notes remain fully readable and editable.
	Archived bool `json:"archived" bson:"archived"`

	// Version is the optimistic-locking counter.
	// Starts at 1 on creation and increments on every successful update or
	// delete. A stale version in a write request yields a conflict.
	Version int64 `json:"version" bson:"version"`

	// Deleted marks the note as soft-deleted.
	// Soft-deleted notes are invisible to all read paths and are removed
	// permanently by the purge worker after the retention period.
	Deleted bool `json:"-" bson:"deleted"`

	// DeletedAt is the timestamp of the soft delete.
	// Nil while the note is alive.
	DeletedAt *time.Time `json:"-" bson:"deleted_at,omitempty"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// UpdatedAt is the timestamp of the last successful modification.
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the Note model.
func (n Note) CollectionName() string {
	return "notes"
}
