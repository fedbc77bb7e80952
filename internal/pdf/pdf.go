// Package pdf extracts plain text from the CV PDF.
package pdf

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText extracts the plain text of every page, joined by
// newlines. Pages that fail to extract contribute an empty string;
// CV parsing is best-effort and a bad page must not abort the scan.
func ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			builder.WriteString("\n")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			builder.WriteString("\n")
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
