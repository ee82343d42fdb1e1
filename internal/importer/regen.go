package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type RegenJob struct {
	ImportID uuid.UUID
	UserID   string
}

// RegenWorker drains regeneration jobs in the background and notifies the
// downstream action regenerator. Regeneration is best-effort enrichment: a
// job that exhausts its retries is logged and dropped, never surfaced to the
// import that produced it.
type RegenWorker struct {
	log         *slog.Logger
	jobs        chan RegenJob
	regenerator ActionRegenerator
	retries     int
	retryDelay  time.Duration
}

func NewRegenWorker(
	log *slog.Logger,
	regenerator ActionRegenerator,
	buffer int,
	retries int,
	retryDelay time.Duration,
) *RegenWorker {
	return &RegenWorker{
		log:         log,
		jobs:        make(chan RegenJob, buffer),
		regenerator: regenerator,
		retries:     retries,
		retryDelay:  retryDelay,
	}
}

// Enqueue hands a job to the worker without blocking. A full queue drops the
// job; the import has already committed, so losing a regeneration is
// acceptable.
func (w *RegenWorker) Enqueue(job RegenJob) bool {
	select {
	case w.jobs <- job:
		return true
	default:
		w.log.Warn("regen queue full, dropping job",
			slog.String("import_id", job.ImportID.String()),
		)
		return false
	}
}

func (w *RegenWorker) Run(ctx context.Context) error {
	for {
		select {
		case job, ok := <-w.jobs:
			if !ok {
				return nil
			}

			w.process(ctx, job)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *RegenWorker) process(ctx context.Context, job RegenJob) {
	log := w.log.With(slog.String("import_id", job.ImportID.String()))

	for attempt := 0; ; attempt++ {
		err := w.regenerator.GenerateForImport(ctx, job.ImportID, job.UserID)
		if err == nil {
			log.DebugContext(ctx, "regenerated downstream actions")
			return
		}

		if attempt >= w.retries {
			log.ErrorContext(ctx, "failed to regenerate actions, giving up",
				slog.Int("attempts", attempt+1),
				slog.String("err", err.Error()),
			)
			return
		}

		log.DebugContext(ctx, "regeneration attempt failed, retrying",
			slog.Int("attempt", attempt+1),
			slog.String("err", err.Error()),
		)

		select {
		case <-time.After(w.retryDelay):
		case <-ctx.Done():
			return
		}
	}
}
