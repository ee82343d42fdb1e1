package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kosolapovrs/deal_importer/internal/domain"
)

// Options control a single import invocation.
type Options struct {
	// DealID associates the import with a deal, enabling health scoring and
	// downstream action regeneration. Empty means no deal.
	DealID    string
	ContactID string
	// Pipelines overrides the category-default stage set when non-empty.
	Pipelines []domain.Stage
	// DryRun executes stages for preview but persists nothing and triggers
	// no downstream side effects.
	DryRun bool
	// Force bypasses the duplicate check and starts a fresh processing cycle
	// over any prior record for the same tuple.
	Force bool
}

// FileInfo is the descriptive metadata returned for the imported file.
type FileInfo struct {
	FileID         string          `json:"file_id"`
	FileName       string          `json:"file_name"`
	Provider       string          `json:"provider"`
	Category       domain.Category `json:"category"`
	CharacterCount int             `json:"character_count"`
	WebURL         string          `json:"web_url,omitempty"`
}

type ImportOutcome struct {
	File         FileInfo                             `json:"file"`
	PipelinesRun []domain.Stage                       `json:"pipelines_run"`
	Results      map[domain.Stage]*domain.StageResult `json:"results"`
	Record       *domain.ImportRecord                 `json:"record,omitempty"`
}

// Orchestrator coordinates one storage-file import end to end: duplicate
// check, content extraction, record creation, concurrent stage execution,
// insight aggregation, commit, and the best-effort downstream trigger.
type Orchestrator struct {
	log        *slog.Logger
	providers  AdapterResolver
	duplicates DuplicateChecker
	records    RecordStore
	runner     *Runner
	regen      RegenQueue
}

func NewOrchestrator(
	log *slog.Logger,
	providers AdapterResolver,
	duplicates DuplicateChecker,
	records RecordStore,
	analyzer TextAnalyzer,
	scorer HealthScorer,
	regen RegenQueue,
) *Orchestrator {
	registry := NewRegistry(newStages(log, analyzer, scorer))

	return &Orchestrator{
		log:        log,
		providers:  providers,
		duplicates: duplicates,
		records:    records,
		runner:     NewRunner(log, registry),
		regen:      regen,
	}
}

// ProcessStorageFile imports one file for one user. The duplicate check runs
// before any content is downloaded so a rejected duplicate costs nothing.
func (o *Orchestrator) ProcessStorageFile(
	ctx context.Context,
	userID, providerID, fileID string,
	opts Options,
) (*ImportOutcome, error) {
	log := o.log.With(
		slog.String("user_id", userID),
		slog.String("provider", providerID),
		slog.String("file_id", fileID),
	)

	if !opts.DryRun && !opts.Force {
		existing, err := o.duplicates.FindProcessed(ctx, userID, providerID, fileID, opts.DealID)
		if err != nil {
			return nil, fmt.Errorf("failed to check for duplicate import: %w", err)
		}

		if existing != nil {
			log.InfoContext(ctx, "rejecting duplicate import",
				slog.String("existing_id", existing.ID.String()),
			)
			return nil, &DuplicateImportError{Record: existing}
		}
	}

	adapter, err := o.providers.Resolve(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider: %w", err)
	}

	content, err := adapter.ExtractFileContent(ctx, userID, fileID)
	if err != nil {
		return nil, &ExtractionError{Provider: providerID, FileID: fileID, Err: err}
	}

	stages := opts.Pipelines
	if len(stages) == 0 {
		stages = DefaultStages(content.Category)
	}

	log.InfoContext(ctx, "extracted content, starting pipelines",
		slog.String("filename", content.FileName),
		slog.String("category", string(content.Category)),
		slog.Int("characters", content.CharacterCount),
		slog.Any("stages", stages),
	)

	var record *domain.ImportRecord
	if !opts.DryRun {
		record, err = o.records.Create(ctx, &domain.ImportRecord{
			UserID:      userID,
			Provider:    providerID,
			FileID:      fileID,
			DealID:      opts.DealID,
			ContactID:   opts.ContactID,
			SourceLabel: content.SourceLabel(),
			WebURL:      content.FileRef.WebURL,
			Status:      domain.StatusCreated,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create import record: %w", err)
		}
	}

	results, err := o.runner.Run(ctx, stages, content, StageOptions{
		UserID:    userID,
		DealID:    opts.DealID,
		ContactID: opts.ContactID,
	})
	if err != nil {
		if record != nil {
			if markErr := o.records.MarkFailed(ctx, record.ID, err.Error()); markErr != nil {
				log.ErrorContext(ctx, "failed to mark import as failed",
					slog.String("err", markErr.Error()),
				)
			}
		}

		return nil, fmt.Errorf("pipeline run failed: %w", err)
	}

	if record != nil {
		insights := Aggregate(results)

		if err := o.records.MarkProcessed(ctx, record.ID, insights); err != nil {
			return nil, fmt.Errorf("failed to commit import record: %w", err)
		}

		record.Status = domain.StatusProcessed
		record.Insights = insights

		if opts.DealID != "" {
			o.regen.Enqueue(RegenJob{ImportID: record.ID, UserID: userID})
		}
	}

	log.InfoContext(ctx, "import completed", slog.Bool("dry_run", opts.DryRun))

	return &ImportOutcome{
		File: FileInfo{
			FileID:         content.FileID,
			FileName:       content.FileName,
			Provider:       content.Provider,
			Category:       content.Category,
			CharacterCount: content.CharacterCount,
			WebURL:         content.FileRef.WebURL,
		},
		PipelinesRun: stages,
		Results:      results,
		Record:       record,
	}, nil
}
