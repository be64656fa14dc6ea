package document

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// loadPDF extracts one segment per readable page, locator = page number.
// Pages whose text cannot be extracted are skipped with a warning so the
// degraded citation is visible instead of silently imprecise.
func loadPDF(path string) ([]Segment, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var segments []Segment
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("pdf page unreadable, skipping", "path", path, "page", i, "error", err)
			continue
		}
		if strings.TrimSpace(content) == "" {
			continue
		}
		segments = append(segments, Segment{Text: content, Locator: PageLocator(i)})
	}
	return segments, nil
}
