package retrieval

import (
	"fmt"
	"sort"
	"strings"

	"docsage/internal/document"
)

// NoSourcesMessage is returned when nothing was retrieved.
const NoSourcesMessage = "📚 Sources: Aucune source spécifique trouvée."

const excerptLen = 200

// FormatSources renders ranked chunks as a numbered citation list, one entry
// per source document. Documents appear in order of their best-ranked chunk;
// within a document the distinct locators are deduplicated and sorted, and
// the excerpt comes from the document's top-ranked chunk.
func FormatSources(ranked []document.ChunkRecord) string {
	if len(ranked) == 0 {
		return NoSourcesMessage
	}

	var order []string
	groups := make(map[string][]document.ChunkRecord)
	for _, rec := range ranked {
		if _, seen := groups[rec.SourceName]; !seen {
			order = append(order, rec.SourceName)
		}
		groups[rec.SourceName] = append(groups[rec.SourceName], rec)
	}

	var b strings.Builder
	b.WriteString("📚 Sources:\n\n")
	for i, name := range order {
		docs := groups[name]
		first := docs[0]
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, name, first.Category)

		seen := make(map[string]bool)
		var locations []string
		for _, rec := range docs {
			loc := rec.Locator.Display(rec.SourceType)
			if loc != "" && !seen[loc] {
				seen[loc] = true
				locations = append(locations, loc)
			}
		}
		sort.Strings(locations)
		if len(locations) > 0 {
			fmt.Fprintf(&b, "   - Localisation: %s\n", strings.Join(locations, ", "))
		}

		fmt.Fprintf(&b, "   - Extrait: \"%s\"\n\n", excerpt(first.Text))
	}
	return strings.TrimRight(b.String(), "\n")
}

func excerpt(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= excerptLen {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:excerptLen])) + "..."
}
