package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kosolapovrs/deal_importer/internal/config"
	"github.com/kosolapovrs/deal_importer/internal/domain"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const defaultMaxChars = 60_000

// Analyzer summarizes extracted document text with an OpenAI-compatible
// chat model. The model is injected so tests can substitute a fake.
type Analyzer struct {
	log      *slog.Logger
	model    llms.Model
	maxChars int
}

func New(log *slog.Logger, model llms.Model, maxChars int) *Analyzer {
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}

	return &Analyzer{
		log:      log,
		model:    model,
		maxChars: maxChars,
	}
}

// NewOpenAI builds an Analyzer backed by an OpenAI-compatible endpoint.
func NewOpenAI(log *slog.Logger, cfg config.Analyzer) (*Analyzer, error) {
	model, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	return New(log, model, cfg.MaxChars), nil
}

// analysisResponse matches the JSON structure requested from the model.
type analysisResponse struct {
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
	Sentiment   string   `json:"sentiment"`
}

// Analyze runs the text through the model and returns a structured summary.
// Malformed model output degrades to an empty payload rather than an error;
// only transport-level failures are returned as errors.
func (a *Analyzer) Analyze(ctx context.Context, text string, meta domain.AnalysisMetadata) (*domain.AnalysisPayload, error) {
	if len(text) > a.maxChars {
		a.log.DebugContext(ctx, "truncating text for analysis",
			slog.Int("original_len", len(text)),
			slog.Int("max_chars", a.maxChars),
		)
		text = text[:a.maxChars]
	}

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt(meta.Category))},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(text)},
		},
	}

	response, err := a.model.GenerateContent(ctx, content,
		llms.WithTemperature(0.0),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}

	payload := &domain.AnalysisPayload{
		AnalysisType: analysisType(meta.Category),
	}

	if len(response.Choices) < 1 {
		a.log.DebugContext(ctx, "no choices returned from model", slog.String("filename", meta.FileName))
		return payload, nil
	}

	var parsed analysisResponse
	if err := json.Unmarshal([]byte(stripFences(response.Choices[0].Content)), &parsed); err != nil {
		a.log.ErrorContext(ctx, "model returned malformed json, degrading to empty analysis",
			slog.String("filename", meta.FileName),
			slog.String("err", err.Error()),
		)
		return payload, nil
	}

	payload.Summary = parsed.Summary
	payload.ActionItems = parsed.ActionItems
	payload.Sentiment = parsed.Sentiment

	return payload, nil
}

// stripFences removes markdown code fences some models wrap around JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}

func analysisType(category domain.Category) string {
	switch category {
	case domain.CategoryTranscript:
		return "call_transcript"
	case domain.CategoryEmail:
		return "email_thread"
	default:
		return "document"
	}
}

func systemPrompt(category domain.Category) string {
	var subject string
	switch category {
	case domain.CategoryTranscript:
		subject = "a sales call transcript"
	case domain.CategoryEmail:
		subject = "an email thread between a sales rep and a prospect"
	default:
		subject = "a sales-related document"
	}

	return fmt.Sprintf(`You are analyzing %s.
Respond with a single JSON object and nothing else, using this shape:
{
  "summary": "2-4 sentence summary of the content",
  "action_items": ["concrete follow-up actions, empty array if none"],
  "sentiment": "positive" | "neutral" | "negative"
}`, subject)
}
