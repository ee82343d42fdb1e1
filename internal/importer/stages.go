package importer

import (
	"context"
	"log/slog"

	"github.com/kosolapovrs/deal_importer/internal/domain"
)

func newStages(log *slog.Logger, analyzer TextAnalyzer, scorer HealthScorer) map[domain.Stage]StageFunc {
	analysis := &analysisStage{log: log, analyzer: analyzer}
	healthScoring := &healthScoringStage{log: log, scorer: scorer}

	return map[domain.Stage]StageFunc{
		domain.StageAnalysis:      analysis.run,
		domain.StageHealthScoring: healthScoring.run,
	}
}

type analysisStage struct {
	log      *slog.Logger
	analyzer TextAnalyzer
}

func (s *analysisStage) run(ctx context.Context, content *domain.Content, opts StageOptions) *domain.StageResult {
	payload, err := s.analyzer.Analyze(ctx, content.RawText, domain.AnalysisMetadata{
		FileName: content.FileName,
		Category: content.Category,
	})
	if err != nil {
		return &domain.StageResult{
			Stage:   domain.StageAnalysis,
			Success: false,
			Error:   err.Error(),
		}
	}

	return &domain.StageResult{
		Stage:   domain.StageAnalysis,
		Success: true,
		Payload: payload,
	}
}

type healthScoringStage struct {
	log    *slog.Logger
	scorer HealthScorer
}

// run executes the causally-dependent scoring sequence: apply signals, then
// detect competitors, then recompute the score. The sequence must not be
// parallelized.
func (s *healthScoringStage) run(ctx context.Context, content *domain.Content, opts StageOptions) *domain.StageResult {
	if opts.DealID == "" {
		return &domain.StageResult{
			Stage:      domain.StageHealthScoring,
			Success:    false,
			Skipped:    true,
			SkipReason: "no deal associated with import",
		}
	}

	signals, err := s.scorer.ApplySignals(ctx, opts.DealID, content.RawText, sourceType(content.Category), opts.UserID)
	if err != nil {
		return s.failed(err)
	}

	competitors, err := s.scorer.DetectCompetitors(ctx, opts.DealID, opts.UserID, content.RawText)
	if err != nil {
		return s.failed(err)
	}

	score, err := s.scorer.ScoreDeal(ctx, opts.DealID, opts.UserID)
	if err != nil {
		return s.failed(err)
	}

	s.log.DebugContext(ctx, "health scoring completed",
		slog.String("deal_id", opts.DealID),
		slog.Int("score", score.Score),
		slog.String("health", score.Health),
	)

	return &domain.StageResult{
		Stage:   domain.StageHealthScoring,
		Success: true,
		Payload: &domain.HealthScoringPayload{
			SignalCount:     signals.Applied,
			CompetitorCount: len(competitors),
			Score:           score.Score,
			Health:          score.Health,
		},
	}
}

func (s *healthScoringStage) failed(err error) *domain.StageResult {
	return &domain.StageResult{
		Stage:   domain.StageHealthScoring,
		Success: false,
		Error:   err.Error(),
	}
}

func sourceType(category domain.Category) string {
	switch category {
	case domain.CategoryTranscript:
		return "call_transcript"
	case domain.CategoryEmail:
		return "email_thread"
	default:
		return "document"
	}
}
