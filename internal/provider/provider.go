package provider

import (
	"context"
	"fmt"

	"github.com/kosolapovrs/deal_importer/internal/domain"
)

// Adapter downloads and extracts one storage file into a Content descriptor.
type Adapter interface {
	ExtractFileContent(ctx context.Context, userID, fileID string) (*domain.Content, error)
}

// DisplayNames maps provider identifiers to the human-readable names used in
// source labels.
var DisplayNames = map[string]string{
	"onedrive": "OneDrive",
	"gdrive":   "Google Drive",
	"dropbox":  "Dropbox",
}

// Registry resolves a provider identifier to its adapter. The set of
// providers is fixed at startup.
type Registry struct {
	adapters map[string]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

func (r *Registry) Register(providerID string, adapter Adapter) {
	r.adapters[providerID] = adapter
}

func (r *Registry) Resolve(providerID string) (Adapter, error) {
	adapter, ok := r.adapters[providerID]
	if !ok {
		return nil, fmt.Errorf("unknown storage provider %q", providerID)
	}

	return adapter, nil
}
