package domain

// Insights is the flat, category-independent payload persisted on a
// successfully processed import. Pointer fields distinguish "stage did not
// run or did not succeed" from a legitimate zero value.
type Insights struct {
	AISummary        string   `json:"ai_summary,omitempty"`
	ActionItems      []string `json:"action_items,omitempty"`
	Sentiment        string   `json:"sentiment,omitempty"`
	AnalysisType     string   `json:"analysis_type,omitempty"`
	HealthScoreAfter *int     `json:"health_score_after,omitempty"`
	HealthStatus     string   `json:"health_status,omitempty"`
	SignalCount      *int     `json:"signal_count,omitempty"`
	CompetitorCount  *int     `json:"competitor_count,omitempty"`
}
