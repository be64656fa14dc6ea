package document

import "fmt"

// SourceType tags a ChunkRecord with the file format it came from and
// determines which Locator field is meaningful.
type SourceType string

const (
	SourcePDF         SourceType = "PDF"
	SourceSpreadsheet SourceType = "Excel"
	SourceWord        SourceType = "Word"
)

// PageUnknown marks a PDF chunk whose page number could not be determined.
const PageUnknown = 0

// Locator points to where a chunk came from within its source file.
// Exactly one field is populated, matching the record's SourceType.
type Locator struct {
	Page    int    // PDF: 1-based page number, PageUnknown if unreported
	Sheet   string // Excel: sheet name
	Section string // Word: synthesized section label ("Partie N")
}

func PageLocator(page int) Locator { return Locator{Page: page} }

func SheetLocator(sheet string) Locator { return Locator{Sheet: sheet} }

func SectionLocator(label string) Locator { return Locator{Section: label} }

// Display renders the locator for citations: "Page N", "Feuille: name",
// or the section label.
func (l Locator) Display(t SourceType) string {
	switch t {
	case SourcePDF:
		if l.Page == PageUnknown {
			return "Page Unknown"
		}
		return fmt.Sprintf("Page %d", l.Page)
	case SourceSpreadsheet:
		return "Feuille: " + l.Sheet
	default:
		return l.Section
	}
}

// ChunkRecord is the unit persisted in the vector collection and returned
// from retrieval. Records are built once during ingestion and never mutated.
type ChunkRecord struct {
	Text       string
	SourceName string // original file name, the citation key
	SourceType SourceType
	Category   string
	Locator    Locator
	ChunkIndex int // 0-based position within the enclosing page/sheet/document
	FilePath   string
}

// Segment is one adapter output unit: the raw text extracted from a page,
// sheet, or whole document, with its structural locator. Word segments carry
// a zero Locator; their section labels are assigned after splitting.
type Segment struct {
	Text    string
	Locator Locator
}
