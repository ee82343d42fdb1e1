package domain

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusCreated Status = "created"
	// StatusProcessing is implicit while stages run and is never persisted;
	// callers infer it from the absence of a terminal status.
	StatusProcessing Status = "processing"
	StatusProcessed  Status = "processed"
	StatusFailed     Status = "failed"
)

// ImportRecord tracks one file's processing lifecycle for one target deal.
// It transitions created -> processed | failed and never reverts from a
// terminal state except via a forced re-import, which starts a fresh cycle.
type ImportRecord struct {
	ID           uuid.UUID `db:"id"            json:"id"`
	UserID       string    `db:"user_id"       json:"user_id"`
	Provider     string    `db:"provider"      json:"provider"`
	FileID       string    `db:"file_id"       json:"file_id"`
	DealID       string    `db:"deal_id"       json:"deal_id,omitempty"`
	ContactID    string    `db:"contact_id"    json:"contact_id,omitempty"`
	SourceLabel  string    `db:"source_label"  json:"source_label"`
	WebURL       string    `db:"web_url"       json:"web_url,omitempty"`
	Status       Status    `db:"status"        json:"status"`
	Insights     *Insights `db:"insights"      json:"insights,omitempty"`
	ErrorMessage string    `db:"error_message" json:"error_message,omitempty"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}
