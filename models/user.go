package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// Stored as the `_id` field of the users collection.
	ID bson.ObjectID `json:"id" bson:"_id,omitempty"`

	// Email is the unique user identifier used during authentication.
	// Always stored lowercased; uniqueness is enforced by an index.
	Email string `json:"email" bson:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-" bson:"password_hash"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name,omitempty" bson:"name,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}
