package extract

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jszwec/csvutil"
)

// transcriptRow is one utterance in a call-transcript export. Call recording
// tools export transcripts as TSV/CSV with one row per utterance.
type transcriptRow struct {
	Timestamp string `csv:"timestamp"`
	Speaker   string `csv:"speaker"`
	Text      string `csv:"text"`
}

func (e *Extractor) extractTranscript(ext string, data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	if ext == ".tsv" {
		reader.Comma = '\t'
	}

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		return "", fmt.Errorf("failed to create decoder: %w", err)
	}

	var b strings.Builder
	rows := 0
	for {
		var row transcriptRow

		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", fmt.Errorf("failed to decode transcript row #%d: %w", rows+1, err)
		}

		if row.Text == "" {
			continue
		}

		if row.Speaker != "" {
			b.WriteString(row.Speaker)
			b.WriteString(": ")
		}
		b.WriteString(row.Text)
		b.WriteByte('\n')
		rows++
	}

	e.log.Debug("extracted transcript", slog.Int("utterances", rows))

	return strings.TrimSpace(b.String()), nil
}
