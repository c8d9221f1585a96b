package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/models"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	users  *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *Mongo, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  db.Collection(models.User{}.CollectionName()),
		logger: logger,
	}
}

// CreateUser persists a new user document and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The caller is expected to pass Email already lowercased and PasswordHash
// already computed; the repository stores documents verbatim.
//
// Error handling:
//   - Unique index violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	result, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn().
				Str("func", "userRepository.CreateUser").
				Str("email", user.Email).
				Msg("email is already registered")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// server-assigned ObjectID of the inserted document
	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = oid
	}

	return user, nil
}

// FindUserByEmail retrieves the user registered under the given email.
// Emails are stored lowercased, so the caller must normalize before lookup.
//
// Error handling:
//   - No matching document → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.users.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "userRepository.FindUserByEmail").
			Msg("failed to query user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the user with the given hex-encoded ObjectID.
//
// Error handling:
//   - Malformed hex ID → [ErrNoUserWasFound] (it can never match a document).
//   - No matching document → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrNoUserWasFound
	}

	var foundUser models.User
	err = r.users.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "userRepository.FindUserByID").
			Msg("failed to query user by id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}
