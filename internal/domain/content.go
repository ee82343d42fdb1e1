package domain

import "fmt"

type Category string

const (
	CategoryTranscript Category = "transcript"
	CategoryDocument   Category = "document"
	CategoryEmail      Category = "email"
	CategoryOther      Category = "other"
)

// FileRef is the opaque provider handle for a storage file.
type FileRef struct {
	Provider     string `json:"provider"`
	ProviderName string `json:"provider_name"`
	FileID       string `json:"file_id"`
	Name         string `json:"name"`
	WebURL       string `json:"web_url"`
}

// Content is the extracted plain text of one storage file. It lives only for
// the duration of a single import. Category is determined once during
// extraction and drives default stage selection.
type Content struct {
	FileID         string
	FileName       string
	Category       Category
	RawText        string
	CharacterCount int
	Provider       string
	FileRef        FileRef
}

// SourceLabel is the human-readable provenance tag used wherever this import
// is referenced by downstream records, e.g. "OneDrive: Q3 Proposal.docx".
func (c *Content) SourceLabel() string {
	return fmt.Sprintf("%s: %s", c.FileRef.ProviderName, c.FileName)
}
