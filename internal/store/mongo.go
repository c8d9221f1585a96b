// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Karpekin

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/models"
)

// Mongo wraps a MongoDB client together with the handle of the application
// database. Repositories take a *Mongo and derive their collections from it.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to MongoDB using the given configs, verifies the
// connection with a ping and ensures the indexes the repositories rely on.
//
// The ping and index creation are bounded by cfg.ConnectTimeout so a wrong
// URI fails fast at startup instead of hanging the first request.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*Mongo, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts = opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	// establish connection
	client, err := mongo.Connect(opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during mongodb connection")
		return nil, fmt.Errorf("error occurred during mongodb connection: %w", err)
	}

	setupCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		setupCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	// ping database
	if err = client.Ping(setupCtx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongodb (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to mongodb successfully")

	// construct a Mongo struct
	db := &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
		logger: log,
	}

	if err = db.ensureIndexes(setupCtx); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating mongodb indexes")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}

	return db, nil
}

// ensureIndexes creates the indexes the repositories depend on. Index
// creation is idempotent, so calling it on every startup is safe.
//
// Indexes:
//   - users: unique index on email, backing the duplicate-registration check;
//   - notes: (user_id, updated_at desc) for listing, (user_id, deleted) for
//     ownership checks and (deleted, deleted_at) for the purge worker.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	users := m.db.Collection(models.User{}.CollectionName())
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: creating user indexes: %w", ErrExecutingQuery, err)
	}

	notes := m.db.Collection(models.Note{}.CollectionName())
	_, err = notes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "updated_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "deleted", Value: 1}}},
		{Keys: bson.D{{Key: "deleted", Value: 1}, {Key: "deleted_at", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("%w: creating note indexes: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Collection returns a handle to the named collection in the application
// database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping verifies the server is still reachable. Used by the health endpoint.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
