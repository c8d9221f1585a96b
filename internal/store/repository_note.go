// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Karpekin

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/models"
)

// noteRepository is the MongoDB-backed implementation of [NoteRepository].
//
// Writes use optimistic locking: every update and delete carries the version
// the client last saw, and the filter only matches when the stored version is
// the same. A filter miss is then classified into "stale version" or "no such
// note" with a follow-up existence probe.
type noteRepository struct {
	logger *logger.Logger
	notes  *mongo.Collection
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *Mongo, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		notes:  db.Collection(models.Note{}.CollectionName()),
		logger: logger,
	}
}

// CreateNote persists a new note and returns it with the server-assigned
// ObjectID, version 1 and both timestamps set to the insertion time.
//
// Error handling:
//   - Malformed owner ID → [ErrNoteNotSaved].
//   - Driver-level insert error → wrapped with [ErrExecutingQuery].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	note.ID = bson.ObjectID{}
	note.Version = 1
	note.Deleted = false
	note.DeletedAt = nil
	note.CreatedAt = now
	note.UpdatedAt = now

	if note.UserID.IsZero() {
		log.Error().
			Str("func", "noteRepository.CreateNote").
			Msg("refusing to save note without an owner")
		return models.Note{}, ErrNoteNotSaved
	}

	result, err := r.notes.InsertOne(ctx, note)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		log.Error().
			Str("func", "noteRepository.CreateNote").
			Msg("inserted note has no object id")
		return models.Note{}, ErrNoteNotSaved
	}
	note.ID = oid

	return note, nil
}

// GetNote retrieves a single alive note owned by the given user.
//
// Error handling:
//   - Malformed IDs or no matching document → [ErrNoteNotFound].
//   - Driver-level query error → wrapped with [ErrExecutingQuery].
//   - Decoding error → wrapped with [ErrDecodingDocument].
func (r *noteRepository) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	userOID, noteOID, err := parseNoteIDs(userID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	result := r.notes.FindOne(ctx, buildNoteAliveFilter(userOID, noteOID))
	if err = result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("note_id", noteID).
			Msg("failed to query note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var foundNote models.Note
	if err = result.Decode(&foundNote); err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("note_id", noteID).
			Msg("failed to decode note document")
		return models.Note{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return foundNote, nil
}

// ListNotes returns the user's alive notes matching filter, ordered by
// updated_at descending. When filter.Limit is zero a default page size is
// applied, so the endpoint never streams an unbounded result set.
//
// Error handling:
//   - Malformed owner ID → empty result (a bad ID owns nothing).
//   - Driver-level query error → wrapped with [ErrExecutingQuery].
//   - Cursor iteration error → wrapped with [ErrCursorIteration].
func (r *noteRepository) ListNotes(ctx context.Context, userID string, filter models.NoteListFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	userOID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return []models.Note{}, nil
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(filter.Offset))

	cur, err := r.notes.Find(ctx, buildNoteListFilter(userOID, filter), opts)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Str("user_id", userID).
			Msg("failed to query notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	foundNotes := make([]models.Note, 0, limit)
	if err = cur.All(ctx, &foundNotes); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Str("user_id", userID).
			Msg("failed to iterate notes cursor")
		return nil, fmt.Errorf("%w: %w", ErrCursorIteration, err)
	}

	return foundNotes, nil
}

// UpdateNote applies a partial update to a single note under optimistic
// locking and returns the note as stored after the update.
//
// The update document only touches fields the client actually provided, so
// concurrent editors of different fields still conflict only through the
// version counter, never by silently overwriting each other's values.
//
// Error handling:
//   - Malformed IDs → [ErrNoteNotFound].
//   - Versioned filter miss on an existing note → [ErrVersionConflict].
//   - Versioned filter miss on a missing note → [ErrNoteNotFound].
//   - Driver-level errors → wrapped with [ErrExecutingQuery] or
//     [ErrDecodingDocument].
func (r *noteRepository) UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdateRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	userOID, noteOID, err := parseNoteIDs(userID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	result := r.notes.FindOneAndUpdate(
		ctx,
		buildNoteVersionedFilter(userOID, noteOID, update.Version),
		buildNoteUpdate(update, time.Now().UTC()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err = result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Note{}, r.classifyVersionMiss(ctx, userOID, noteOID, noteID, update.Version)
		}

		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", noteID).
			Msg("failed to execute update")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var updatedNote models.Note
	if err = result.Decode(&updatedNote); err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", noteID).
			Msg("failed to decode updated note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	log.Info().
		Str("func", "noteRepository.UpdateNote").
		Str("note_id", noteID).
		Int64("version", updatedNote.Version).
		Msg("successfully updated note")

	return updatedNote, nil
}

// DeleteNote soft-deletes a single note under optimistic locking. The
// document stays in the collection, flagged deleted and stamped with the
// deletion time, until the purge worker removes it for good.
//
// Error handling mirrors [noteRepository.UpdateNote].
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID string, version int64) error {
	log := logger.FromContext(ctx)

	userOID, noteOID, err := parseNoteIDs(userID, noteID)
	if err != nil {
		return err
	}

	result, err := r.notes.UpdateOne(
		ctx,
		buildNoteVersionedFilter(userOID, noteOID, version),
		buildNoteSoftDelete(time.Now().UTC()),
	)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("failed to execute soft delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if result.MatchedCount == 0 {
		return r.classifyVersionMiss(ctx, userOID, noteOID, noteID, version)
	}

	log.Info().
		Str("func", "noteRepository.DeleteNote").
		Str("note_id", noteID).
		Msg("successfully soft-deleted note")

	return nil
}

// PurgeDeletedNotes permanently removes notes that were soft-deleted before
// olderThan and reports how many documents were removed. Invoked by the
// background purge worker, never by request handlers.
func (r *noteRepository) PurgeDeletedNotes(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.notes.DeleteMany(ctx, buildPurgeFilter(olderThan))
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.PurgeDeletedNotes").
			Time("older_than", olderThan).
			Msg("failed to purge deleted notes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.DeletedCount, nil
}

// classifyVersionMiss decides why a versioned write filter matched nothing:
//   - the note is alive under a different version → [ErrVersionConflict];
//   - the note is missing, soft-deleted or foreign → [ErrNoteNotFound].
//
// The probe runs outside any transaction, so a note deleted between the
// write and the probe reports "not found" instead of "conflict". Both
// outcomes are correct for the client: its copy is outdated either way.
func (r *noteRepository) classifyVersionMiss(ctx context.Context, userOID, noteOID bson.ObjectID, noteID string, providedVersion int64) error {
	log := logger.FromContext(ctx)

	count, err := r.notes.CountDocuments(ctx, buildNoteAliveFilter(userOID, noteOID))
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.classifyVersionMiss").
			Str("note_id", noteID).
			Msg("failed to probe note existence")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// note found, but the versioned write didn't match - version mismatch
	if count > 0 {
		log.Warn().
			Str("func", "noteRepository.classifyVersionMiss").
			Str("note_id", noteID).
			Int64("provided_version", providedVersion).
			Msg("optimistic lock failed: version mismatch")
		return fmt.Errorf("failed to modify note: %w", ErrVersionConflict)
	}

	log.Warn().
		Str("func", "noteRepository.classifyVersionMiss").
		Str("note_id", noteID).
		Msg("note not found")
	return ErrNoteNotFound
}

// parseNoteIDs converts the hex owner and note IDs into ObjectIDs. Malformed
// hex maps to [ErrNoteNotFound] since such an ID can never match a document.
func parseNoteIDs(userID, noteID string) (bson.ObjectID, bson.ObjectID, error) {
	userOID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, ErrNoteNotFound
	}

	noteOID, err := bson.ObjectIDFromHex(noteID)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, ErrNoteNotFound
	}

	return userOID, noteOID, nil
}
