package document

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// loadExcel extracts one segment per sheet, rendered as a header line and
// one line per non-empty row, locator = sheet name.
func loadExcel(path string) ([]Segment, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var segments []Segment
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		segments = append(segments, Segment{
			Text:    renderSheet(sheet, rows),
			Locator: SheetLocator(sheet),
		})
	}
	return segments, nil
}

// renderSheet produces the text representation of a sheet:
//
//	Feuille: <name>
//	Colonnes: col1, col2, ...
//	Ligne <n>: col1: val1 | col2: val2 | ...
//
// The first row is the header; row numbers are spreadsheet row numbers
// (header is row 1). Empty cells are omitted, all-empty rows produce no line.
func renderSheet(name string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Feuille: %s\n\n", name)

	header := rows[0]
	b.WriteString("Colonnes: " + strings.Join(header, ", ") + "\n\n")

	for i, row := range rows[1:] {
		var cells []string
		for j, val := range row {
			if strings.TrimSpace(val) == "" {
				continue
			}
			col := fmt.Sprintf("Colonne %d", j+1)
			if j < len(header) && strings.TrimSpace(header[j]) != "" {
				col = header[j]
			}
			cells = append(cells, col+": "+val)
		}
		if len(cells) == 0 {
			continue
		}
		fmt.Fprintf(&b, "Ligne %d: %s\n", i+2, strings.Join(cells, " | "))
	}
	return b.String()
}
