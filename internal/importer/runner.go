package importer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kosolapovrs/deal_importer/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Runner executes the selected stages concurrently and joins on all of their
// outcomes. No stage's failure may prevent a sibling from completing or
// reporting its own result; each stage runs behind its own recover boundary.
type Runner struct {
	log      *slog.Logger
	registry *Registry
}

func NewRunner(log *slog.Logger, registry *Registry) *Runner {
	return &Runner{
		log:      log,
		registry: registry,
	}
}

// Run fans the content out to every named stage and collects a result per
// stage. The only returned error is a resolution fault for an unknown stage
// name; stage-level failures are captured as data in the result map.
func (r *Runner) Run(
	ctx context.Context,
	stages []domain.Stage,
	content *domain.Content,
	opts StageOptions,
) (map[domain.Stage]*domain.StageResult, error) {
	resolved, err := r.registry.Resolve(stages)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve stages: %w", err)
	}

	var (
		mu      sync.Mutex
		results = make(map[domain.Stage]*domain.StageResult, len(resolved))
	)

	var erg errgroup.Group
	for _, stage := range resolved {
		erg.Go(func() error {
			result := r.runStage(ctx, stage, content, opts)

			mu.Lock()
			results[stage.name] = result
			mu.Unlock()

			return nil
		})
	}

	// Stage goroutines never return errors; Wait is a settle-all join.
	_ = erg.Wait()

	return results, nil
}

func (r *Runner) runStage(
	ctx context.Context,
	stage resolvedStage,
	content *domain.Content,
	opts StageOptions,
) (result *domain.StageResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.ErrorContext(ctx, "stage panicked",
				slog.String("stage", string(stage.name)),
				slog.Any("panic", rec),
			)

			result = &domain.StageResult{
				Stage:   stage.name,
				Success: false,
				Error:   fmt.Sprintf("stage panicked: %v", rec),
			}
		}
	}()

	r.log.DebugContext(ctx, "running stage", slog.String("stage", string(stage.name)))

	return stage.fn(ctx, content, opts)
}
