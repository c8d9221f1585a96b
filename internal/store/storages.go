package store

import (
	"context"
	"errors"

	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
)

// Storages bundles every persistence dependency of the application: the
// MongoDB connection, the repositories built on top of it and the rate
// limiter used by the authentication endpoints.
type Storages struct {
	Mongo          *Mongo
	UserRepository UserRepository
	NoteRepository NoteRepository
	RateLimiter    RateLimiter
}

// NewStorages connects to MongoDB, constructs the repositories and selects a
// rate limiter implementation.
//
// When cfg.Redis.Address is set the limiter is Redis-backed and shared
// between replicas; otherwise a process-local in-memory limiter is used. A
// configured but unreachable Redis is a startup error rather than a silent
// downgrade.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectMongo(ctx, cfg.Mongo, log)
	if err != nil {
		return nil, err
	}

	var limiter RateLimiter
	if cfg.Redis.Address != "" {
		limiter, err = NewRedisRateLimiter(cfg.Redis, log)
		if err != nil {
			_ = db.Close(context.WithoutCancel(ctx))
			return nil, err
		}
	} else {
		limiter = NewMemoryRateLimiter()
	}

	return &Storages{
		Mongo:          db,
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		RateLimiter:    limiter,
	}, nil
}

// Close releases the rate limiter and disconnects from MongoDB.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.Mongo != nil {
		if err := s.Mongo.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
