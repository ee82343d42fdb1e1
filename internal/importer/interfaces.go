package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/kosolapovrs/deal_importer/internal/domain"
	"github.com/kosolapovrs/deal_importer/internal/provider"
)

type AdapterResolver interface {
	Resolve(providerID string) (provider.Adapter, error)
}

// DuplicateChecker reports a prior successful import of the same
// (user, provider, file, deal) tuple, or nil when there is none.
type DuplicateChecker interface {
	FindProcessed(ctx context.Context, userID, providerID, fileID, dealID string) (*domain.ImportRecord, error)
}

// RecordStore owns the persisted import lifecycle. Create starts a fresh
// processing cycle, discarding any prior terminal state for the tuple.
type RecordStore interface {
	Create(ctx context.Context, record *domain.ImportRecord) (*domain.ImportRecord, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, insights *domain.Insights) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
}

type TextAnalyzer interface {
	Analyze(ctx context.Context, text string, meta domain.AnalysisMetadata) (*domain.AnalysisPayload, error)
}

type HealthScorer interface {
	ApplySignals(ctx context.Context, dealID, text, sourceType, userID string) (*domain.SignalBatch, error)
	DetectCompetitors(ctx context.Context, dealID, userID, text string) ([]domain.Competitor, error)
	ScoreDeal(ctx context.Context, dealID, userID string) (*domain.DealScore, error)
}

type ActionRegenerator interface {
	GenerateForImport(ctx context.Context, importID uuid.UUID, userID string) error
}

// RegenQueue accepts regeneration jobs without blocking. Enqueue reports
// whether the job was accepted.
type RegenQueue interface {
	Enqueue(job RegenJob) bool
}
