package domain

// SignalBatch is the result of applying deal signals extracted from text.
type SignalBatch struct {
	Applied int      `json:"applied"`
	Signals []string `json:"signals"`
}

type Competitor struct {
	Name string `json:"name"`
}

type DealScore struct {
	Score  int    `json:"score"`
	Health string `json:"health"`
}
