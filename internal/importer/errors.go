package importer

import (
	"fmt"

	"github.com/kosolapovrs/deal_importer/internal/domain"
)

// DuplicateImportError is returned when the same file was already imported
// against the same deal. It carries the prior record so the caller can offer
// a forced re-import.
type DuplicateImportError struct {
	Record *domain.ImportRecord
}

func (e *DuplicateImportError) Error() string {
	return fmt.Sprintf("file already imported as %q", e.Record.SourceLabel)
}

// ExtractionError wraps a download or parse failure. No import record exists
// when it is returned.
type ExtractionError struct {
	Provider string
	FileID   string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s file %q: %v", e.Provider, e.FileID, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
