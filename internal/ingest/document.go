// Package ingest extracts plain text from candidate documents before they
// are handed to the model provider.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// textReader is stubbed in tests to avoid depending on real document
// converters.
var textReader = func(path string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}

// Text returns the plain-text content of a resume document. PDF and office
// formats go through the document converter; .txt and .md files are read
// directly.
func Text(path string) (string, error) {
	var text string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading resume file: %w", err)
		}
		text = string(content)
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		converted, err := textReader(path)
		if err != nil {
			return "", fmt.Errorf("converting resume document: %w", err)
		}
		text = converted
	default:
		return "", fmt.Errorf("unsupported resume format %q", filepath.Ext(path))
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no extractable text in %s", filepath.Base(path))
	}

	return text, nil
}
