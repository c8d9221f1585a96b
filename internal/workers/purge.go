// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Karpekin

package workers

import (
	"context"
	"time"

	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
)

// purgeRunTimeout bounds a single purge sweep.
const purgeRunTimeout = time.Minute

// notesPurgeWorker permanently removes notes whose soft delete happened
// longer than the retention window ago. Handlers never see purged notes
// anyway, so the worker only reclaims storage.
type notesPurgeWorker struct {
	notes     store.NoteRepository
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newNotesPurgeWorker(notes store.NoteRepository, cfg config.Workers, logger *logger.Logger) *notesPurgeWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &notesPurgeWorker{
		notes:     notes,
		interval:  cfg.PurgeInterval,
		retention: cfg.PurgeRetention,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Run starts the purge loop and returns immediately.
func (w *notesPurgeWorker) Run() {
	w.logger.Info().
		Dur("interval", w.interval).
		Dur("retention", w.retention).
		Msg("starting notes purge worker")

	go w.loop()
}

func (w *notesPurgeWorker) loop() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.purge()
		}
	}
}

// purge removes notes soft-deleted before the retention cutoff.
func (w *notesPurgeWorker) purge() {
	ctx, cancel := context.WithTimeout(w.ctx, purgeRunTimeout)
	defer cancel()
	ctx = w.logger.WithContext(ctx)

	cutoff := time.Now().Add(-w.retention)

	purged, err := w.notes.PurgeDeletedNotes(ctx, cutoff)
	if err != nil {
		w.logger.Error().Err(err).Msg("notes purge failed")
		return
	}

	if purged > 0 {
		w.logger.Info().
			Int64("purged", purged).
			Time("older_than", cutoff).
			Msg("purged soft-deleted notes")
	}
}

// Stop cancels the loop and waits for the current sweep to finish. Stop must
// only be called after Run.
func (w *notesPurgeWorker) Stop() {
	w.cancel()
	<-w.done
}
