package extract

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/kosolapovrs/deal_importer/internal/domain"
)

// Extractor turns raw file bytes into plain text and classifies the file
// into a content category. The category drives default stage selection and
// is immutable once determined.
type Extractor struct {
	log       *slog.Logger
	converter *md.Converter
}

func New(log *slog.Logger) *Extractor {
	return &Extractor{
		log:       log,
		converter: md.NewConverter("", true, nil),
	}
}

func (e *Extractor) Extract(fileName string, data []byte) (domain.Category, string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	switch ext {
	case ".tsv", ".csv":
		text, err := e.extractTranscript(ext, data)
		if err != nil {
			return "", "", fmt.Errorf("failed to extract transcript: %w", err)
		}
		return domain.CategoryTranscript, text, nil

	case ".html", ".htm", ".eml":
		text, err := e.extractEmail(data)
		if err != nil {
			return "", "", fmt.Errorf("failed to extract email body: %w", err)
		}
		return domain.CategoryEmail, text, nil

	case ".txt", ".md":
		text, err := plainText(data)
		if err != nil {
			return "", "", err
		}
		return domain.CategoryDocument, text, nil

	default:
		e.log.Debug("unknown file extension, treating as plain text",
			slog.String("filename", fileName),
			slog.String("ext", ext),
		)

		text, err := plainText(data)
		if err != nil {
			return "", "", err
		}
		return domain.CategoryOther, text, nil
	}
}

func plainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file content is not valid UTF-8 text")
	}

	return strings.TrimSpace(string(data)), nil
}
