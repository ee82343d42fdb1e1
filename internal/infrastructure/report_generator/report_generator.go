package report_generator

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kosolapovrs/deal_importer/internal/domain"
)

type ReportGenerator struct{}

func New() *ReportGenerator {
	return &ReportGenerator{}
}

// Generate renders one import record and its insights as a PDF document.
func (g *ReportGenerator) Generate(record *domain.ImportRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()

	m := maroto.New(cfg)

	rows := []core.Row{
		text.NewRow(12, record.SourceLabel, props.Text{Size: 16, Style: fontstyle.Bold}),
		text.NewRow(6, fmt.Sprintf("Status: %s", record.Status), props.Text{Size: 10}),
		text.NewRow(6, fmt.Sprintf("Imported: %s", record.CreatedAt.Format("2006-01-02 15:04")), props.Text{Size: 10}),
	}

	if record.ErrorMessage != "" {
		rows = append(rows,
			text.NewRow(8, fmt.Sprintf("Error: %s", record.ErrorMessage), props.Text{Size: 10}),
		)
	}

	if record.Insights != nil {
		rows = append(rows, insightRows(record.Insights)...)
	}

	m.AddRows(rows...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func insightRows(insights *domain.Insights) []core.Row {
	var rows []core.Row

	heading := func(s string) core.Row {
		return text.NewRow(10, s, props.Text{Size: 12, Style: fontstyle.Bold, Top: 3})
	}
	line := func(s string) core.Row {
		return text.NewRow(6, s, props.Text{Size: 10})
	}

	if insights.AISummary != "" {
		rows = append(rows, heading("Summary"), line(insights.AISummary))
	}

	if insights.Sentiment != "" {
		rows = append(rows, line(fmt.Sprintf("Sentiment: %s", insights.Sentiment)))
	}

	if len(insights.ActionItems) > 0 {
		rows = append(rows, heading("Action items"))
		for _, item := range insights.ActionItems {
			rows = append(rows, line("- "+item))
		}
	}

	if insights.HealthScoreAfter != nil {
		rows = append(rows, heading("Deal health"))

		health := fmt.Sprintf("Score: %d", *insights.HealthScoreAfter)
		if insights.HealthStatus != "" {
			health += fmt.Sprintf(" (%s)", strings.ToLower(insights.HealthStatus))
		}
		rows = append(rows, line(health))

		if insights.SignalCount != nil {
			rows = append(rows, line(fmt.Sprintf("Signals applied: %d", *insights.SignalCount)))
		}
		if insights.CompetitorCount != nil {
			rows = append(rows, line(fmt.Sprintf("Competitors detected: %d", *insights.CompetitorCount)))
		}
	}

	return rows
}
