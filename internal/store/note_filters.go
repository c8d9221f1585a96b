// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Karpekin

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mkarpekin/go-notes-keeper/models"
)

// defaultListLimit caps note listings when the caller does not ask for a
// specific page size.
const defaultListLimit = 50

// buildNoteListFilter returns the filter for listing a user's alive notes,
// narrowed by the optional tag and archived criteria.
func buildNoteListFilter(userID bson.ObjectID, filter models.NoteListFilter) bson.D {
	query := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "deleted", Value: false},
	}

	if filter.Tag != "" {
		query = append(query, bson.E{Key: "tags", Value: filter.Tag})
	}

	// nil means "active only"; an explicit value filters by it.
	if filter.Archived != nil {
		query = append(query, bson.E{Key: "archived", Value: *filter.Archived})
	} else {
		query = append(query, bson.E{Key: "archived", Value: false})
	}

	return query
}

// buildNoteAliveFilter matches a single note that exists, is not soft-deleted
// and belongs to the given user.
func buildNoteAliveFilter(userID, noteID bson.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: noteID},
		{Key: "user_id", Value: userID},
		{Key: "deleted", Value: false},
	}
}

// buildNoteVersionedFilter is buildNoteAliveFilter additionally guarded by the
// expected version. A miss on this filter together with a hit on the alive
// filter means the caller's version is stale.
func buildNoteVersionedFilter(userID, noteID bson.ObjectID, version int64) bson.D {
	return bson.D{
		{Key: "_id", Value: noteID},
		{Key: "user_id", Value: userID},
		{Key: "version", Value: version},
		{Key: "deleted", Value: false},
	}
}

// buildNoteUpdate translates a partial update into a $set of the provided
// fields plus a bumped updated_at, and a $inc of the version counter.
func buildNoteUpdate(update models.NoteUpdateRequest, now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}

	if update.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *update.Title})
	}
	if update.Body != nil {
		set = append(set, bson.E{Key: "body", Value: *update.Body})
	}
	if update.Tags != nil {
		set = append(set, bson.E{Key: "tags", Value: *update.Tags})
	}
	if update.Archived != nil {
		set = append(set, bson.E{Key: "archived", Value: *update.Archived})
	}

	return bson.D{
		{Key: "$set", Value: set},
		{Key: "$inc", Value: bson.D{{Key: "version", Value: int64(1)}}},
	}
}

// buildNoteSoftDelete marks a note deleted, stamps deleted_at and bumps the
// version so a concurrent update with the old version loses.
func buildNoteSoftDelete(now time.Time) bson.D {
	return bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "deleted", Value: true},
			{Key: "deleted_at", Value: now},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$inc", Value: bson.D{{Key: "version", Value: int64(1)}}},
	}
}

// buildPurgeFilter matches soft-deleted notes whose deleted_at is older than
// the retention cutoff.
func buildPurgeFilter(olderThan time.Time) bson.D {
	return bson.D{
		{Key: "deleted", Value: true},
		{Key: "deleted_at", Value: bson.D{{Key: "$lt", Value: olderThan}}},
	}
}
