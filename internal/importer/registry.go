package importer

import (
	"context"
	"fmt"

	"github.com/kosolapovrs/deal_importer/internal/domain"
)

// StageOptions carries the per-import context every stage receives.
type StageOptions struct {
	UserID    string
	DealID    string
	ContactID string
}

// StageFunc is one independently-failing unit of analysis. Implementations
// report failure through the result, never through a panic or a shared error.
type StageFunc func(ctx context.Context, content *domain.Content, opts StageOptions) *domain.StageResult

// Registry is the closed mapping from stage name to its implementation,
// assembled once at construction.
type Registry struct {
	stages map[domain.Stage]StageFunc
}

func NewRegistry(stages map[domain.Stage]StageFunc) *Registry {
	return &Registry{stages: stages}
}

type resolvedStage struct {
	name domain.Stage
	fn   StageFunc
}

// Resolve maps stage names to implementations. An unknown name is a
// configuration fault and fails the whole resolution.
func (r *Registry) Resolve(names []domain.Stage) ([]resolvedStage, error) {
	resolved := make([]resolvedStage, 0, len(names))
	for _, name := range names {
		fn, ok := r.stages[name]
		if !ok {
			return nil, fmt.Errorf("unknown pipeline stage %q", name)
		}

		resolved = append(resolved, resolvedStage{name: name, fn: fn})
	}

	return resolved, nil
}

var defaultStages = map[domain.Category][]domain.Stage{
	domain.CategoryTranscript: {domain.StageAnalysis, domain.StageHealthScoring},
	domain.CategoryDocument:   {domain.StageAnalysis, domain.StageHealthScoring},
	domain.CategoryEmail:      {domain.StageAnalysis},
}

// DefaultStages returns the stage set run for a content category when the
// caller does not override. Unknown categories get the document set.
func DefaultStages(category domain.Category) []domain.Stage {
	stages, ok := defaultStages[category]
	if !ok {
		return defaultStages[domain.CategoryDocument]
	}

	return stages
}
