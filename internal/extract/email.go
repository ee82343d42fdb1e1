package extract

import (
	"fmt"
	"strings"
)

// extractEmail converts an HTML email body to markdown-formatted plain text.
// Markdown keeps quoting and list structure that flat text extraction loses.
func (e *Extractor) extractEmail(data []byte) (string, error) {
	text, err := e.converter.ConvertString(string(data))
	if err != nil {
		return "", fmt.Errorf("failed to convert html: %w", err)
	}

	return strings.TrimSpace(text), nil
}
