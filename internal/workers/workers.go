package workers

import (
	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
)

// Workers aggregates the application's background workers.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. A zero PurgeInterval disables
// the notes purge worker.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")
	ws := new(Workers)

	if cfg.PurgeInterval > 0 {
		ws.workers = append(ws.workers, newNotesPurgeWorker(storages.NoteRepository, cfg, logger))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop halts all workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
