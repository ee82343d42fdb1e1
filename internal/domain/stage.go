package domain

type Stage string

const (
	StageAnalysis      Stage = "analysis"
	StageHealthScoring Stage = "health-scoring"
)

// StageResult is the outcome of one independently-failing analysis stage.
// Only the aggregated insights are persisted; individual results are
// returned to the caller for inspection.
type StageResult struct {
	Stage      Stage  `json:"stage"`
	Success    bool   `json:"success"`
	Payload    any    `json:"payload,omitempty"`
	Error      string `json:"error,omitempty"`
	Skipped    bool   `json:"skipped,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`
}

type AnalysisPayload struct {
	Summary      string   `json:"summary"`
	ActionItems  []string `json:"action_items"`
	Sentiment    string   `json:"sentiment"`
	AnalysisType string   `json:"analysis_type"`
}

type HealthScoringPayload struct {
	SignalCount     int    `json:"signal_count"`
	CompetitorCount int    `json:"competitor_count"`
	Score           int    `json:"score"`
	Health          string `json:"health"`
}

// AnalysisMetadata accompanies raw text into the analyzer.
type AnalysisMetadata struct {
	FileName string
	Category Category
}
