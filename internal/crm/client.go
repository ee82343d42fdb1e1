package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/kosolapovrs/deal_importer/internal/domain"
)

// Client talks to the CRM core service: the deal-health scoring engine and
// the next-action regenerator.
type Client struct {
	log     *slog.Logger
	client  *http.Client
	baseURL string
}

func NewClient(log *slog.Logger, client *http.Client, baseURL string) *Client {
	return &Client{
		log:     log,
		client:  client,
		baseURL: baseURL,
	}
}

type applySignalsRequest struct {
	Text       string `json:"text"`
	SourceType string `json:"source_type"`
	UserID     string `json:"user_id"`
}

func (c *Client) ApplySignals(ctx context.Context, dealID, text, sourceType, userID string) (*domain.SignalBatch, error) {
	var batch domain.SignalBatch

	err := c.post(ctx,
		fmt.Sprintf("/api/v1/deals/%s/signals", url.PathEscape(dealID)),
		applySignalsRequest{Text: text, SourceType: sourceType, UserID: userID},
		&batch,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to apply signals: %w", err)
	}

	return &batch, nil
}

type detectCompetitorsRequest struct {
	Text   string `json:"text"`
	UserID string `json:"user_id"`
}

type detectCompetitorsResponse struct {
	Competitors []domain.Competitor `json:"competitors"`
}

func (c *Client) DetectCompetitors(ctx context.Context, dealID, userID, text string) ([]domain.Competitor, error) {
	var resp detectCompetitorsResponse

	err := c.post(ctx,
		fmt.Sprintf("/api/v1/deals/%s/competitors/detect", url.PathEscape(dealID)),
		detectCompetitorsRequest{Text: text, UserID: userID},
		&resp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to detect competitors: %w", err)
	}

	return resp.Competitors, nil
}

type scoreDealRequest struct {
	UserID string `json:"user_id"`
}

func (c *Client) ScoreDeal(ctx context.Context, dealID, userID string) (*domain.DealScore, error) {
	var score domain.DealScore

	err := c.post(ctx,
		fmt.Sprintf("/api/v1/deals/%s/score", url.PathEscape(dealID)),
		scoreDealRequest{UserID: userID},
		&score,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to score deal: %w", err)
	}

	return &score, nil
}

type generateForImportRequest struct {
	UserID string `json:"user_id"`
}

// GenerateForImport asks the CRM to regenerate recommended next actions from
// a committed import. Best-effort from the importer's point of view; the
// caller decides whether to retry.
func (c *Client) GenerateForImport(ctx context.Context, importID uuid.UUID, userID string) error {
	err := c.post(ctx,
		fmt.Sprintf("/api/v1/imports/%s/actions/regenerate", importID),
		generateForImportRequest{UserID: userID},
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to regenerate actions: %w", err)
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("crm returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
