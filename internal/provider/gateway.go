package provider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/kosolapovrs/deal_importer/internal/domain"
	"github.com/kosolapovrs/deal_importer/internal/extract"
)

// Gateway fetches file content through the storage gateway service, which
// proxies the concrete provider APIs and normalizes their responses. One
// Gateway instance serves one provider.
type Gateway struct {
	log         *slog.Logger
	client      *http.Client
	baseURL     string
	providerID  string
	displayName string
	extractor   *extract.Extractor
}

func NewGateway(
	log *slog.Logger,
	client *http.Client,
	baseURL string,
	providerID string,
	extractor *extract.Extractor,
) *Gateway {
	displayName, ok := DisplayNames[providerID]
	if !ok {
		displayName = providerID
	}

	return &Gateway{
		log:         log,
		client:      client,
		baseURL:     baseURL,
		providerID:  providerID,
		displayName: displayName,
		extractor:   extractor,
	}
}

type fileResponse struct {
	Name    string `json:"name"`
	WebURL  string `json:"web_url"`
	Content string `json:"content"` // base64
}

func (g *Gateway) ExtractFileContent(ctx context.Context, userID, fileID string) (*domain.Content, error) {
	file, err := g.fetchFile(ctx, userID, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to download file %q: %w", fileID, err)
	}

	data, err := base64.StdEncoding.DecodeString(file.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file content: %w", err)
	}

	category, text, err := g.extractor.Extract(file.Name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %q: %w", file.Name, err)
	}

	g.log.DebugContext(ctx, "extracted file content",
		slog.String("provider", g.providerID),
		slog.String("filename", file.Name),
		slog.String("category", string(category)),
		slog.Int("characters", utf8.RuneCountInString(text)),
	)

	return &domain.Content{
		FileID:         fileID,
		FileName:       file.Name,
		Category:       category,
		RawText:        text,
		CharacterCount: utf8.RuneCountInString(text),
		Provider:       g.providerID,
		FileRef: domain.FileRef{
			Provider:     g.providerID,
			ProviderName: g.displayName,
			FileID:       fileID,
			Name:         file.Name,
			WebURL:       file.WebURL,
		},
	}, nil
}

func (g *Gateway) fetchFile(ctx context.Context, userID, fileID string) (*fileResponse, error) {
	endpoint := fmt.Sprintf("%s/providers/%s/files/%s",
		g.baseURL, url.PathEscape(g.providerID), url.PathEscape(fileID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-User-ID", userID)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var file fileResponse
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &file, nil
}
