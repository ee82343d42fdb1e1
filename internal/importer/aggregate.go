package importer

import "github.com/kosolapovrs/deal_importer/internal/domain"

// Aggregate reduces per-stage results into the flat insights payload that is
// persisted on the record. Stages that did not run, were skipped, or did not
// succeed contribute nothing; their fields stay absent rather than zero.
func Aggregate(results map[domain.Stage]*domain.StageResult) *domain.Insights {
	insights := &domain.Insights{}

	if result, ok := results[domain.StageAnalysis]; ok && result.Success {
		if payload, ok := result.Payload.(*domain.AnalysisPayload); ok {
			insights.AISummary = payload.Summary
			insights.ActionItems = payload.ActionItems
			insights.Sentiment = payload.Sentiment
			insights.AnalysisType = payload.AnalysisType
		}
	}

	if result, ok := results[domain.StageHealthScoring]; ok && result.Success {
		if payload, ok := result.Payload.(*domain.HealthScoringPayload); ok {
			score := payload.Score
			signals := payload.SignalCount
			competitors := payload.CompetitorCount

			insights.HealthScoreAfter = &score
			insights.HealthStatus = payload.Health
			insights.SignalCount = &signals
			insights.CompetitorCount = &competitors
		}
	}

	return insights
}
