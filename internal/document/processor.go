package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docsage/internal/text"
)

// supportedExtensions maps file extensions to the adapter that handles them.
// Lowercase keys; matching is case-insensitive on the extension.
var supportedExtensions = map[string]SourceType{
	".pdf":  SourcePDF,
	".xlsx": SourceSpreadsheet,
	".xls":  SourceSpreadsheet,
	".docx": SourceWord,
	".doc":  SourceWord,
}

// Processor turns source files into ChunkRecords: adapter dispatch by
// extension, chunk splitting, and metadata assembly.
type Processor struct {
	splitter   *text.Splitter
	categories []Category
}

func NewProcessor(splitter *text.Splitter, categories []Category) *Processor {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return &Processor{splitter: splitter, categories: categories}
}

// DetectSourceType resolves the adapter for a path, or ErrUnsupportedFormat.
func DetectSourceType(path string) (SourceType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if st, ok := supportedExtensions[ext]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Normalize loads one file and returns its ordered chunk records. Any
// adapter or splitter failure is wrapped with the originating filename.
func (p *Processor) Normalize(path string) ([]ChunkRecord, error) {
	sourceType, err := DetectSourceType(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	name := filepath.Base(path)

	var segments []Segment
	switch sourceType {
	case SourcePDF:
		segments, err = loadPDF(path)
	case SourceSpreadsheet:
		segments, err = loadExcel(path)
	case SourceWord:
		segments, err = loadWord(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	category := ResolveCategory(name, p.categories)

	var records []ChunkRecord
	for _, seg := range segments {
		for i, chunk := range p.splitter.Split(seg.Text) {
			if strings.TrimSpace(chunk) == "" {
				continue
			}
			rec := ChunkRecord{
				Text:       chunk,
				SourceName: name,
				SourceType: sourceType,
				Category:   category,
				Locator:    seg.Locator,
				ChunkIndex: i,
				FilePath:   absPath,
			}
			if sourceType == SourceWord {
				// The whole document is one segment; sections are
				// synthesized from chunk position.
				rec.Locator = SectionLocator(fmt.Sprintf("Partie %d", i+1))
			}
			records = append(records, rec)
		}
	}
	return records, nil
}
