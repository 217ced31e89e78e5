package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TextFile reads first-page text from a plain text dump of the document.
// Dumps with form feed page breaks (pdftotext) are cut at the first one.
type TextFile struct {
	Path string
}

// FirstPageText returns the text of the first page
func (f TextFile) FirstPageText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read first page text: %w", err)
	}
	page, _, _ := strings.Cut(string(data), "\f")
	return page, nil
}
