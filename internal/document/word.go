package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// loadWord extracts a single segment for the whole document: all non-empty
// paragraphs in order, then all table rows (cells joined with " | ", empty
// cells skipped), each on its own line. The locator is assigned after
// splitting because the natural unit is the whole document.
//
// Only the OOXML container (.docx) is readable; legacy binary .doc files
// fail at the zip layer and surface as a per-file error.
func loadWord(path string) ([]Segment, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("open docx: missing word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer rc.Close()

	paragraphs, rows, err := parseDocumentXML(rc)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	content := strings.Join(append(paragraphs, rows...), "\n")
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	return []Segment{{Text: content}}, nil
}

// parseDocumentXML walks word/document.xml collecting top-level paragraph
// text and table rows. Paragraphs inside table cells belong to the cell,
// not the paragraph list.
func parseDocumentXML(r io.Reader) (paragraphs, rows []string, err error) {
	dec := xml.NewDecoder(r)

	var (
		tableDepth int
		inText     bool
		inPara     bool
		para       strings.Builder
		cell       strings.Builder
		cells      []string
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tbl":
				tableDepth++
			case "tr":
				if tableDepth > 0 {
					cells = nil
				}
			case "tc":
				cell.Reset()
			case "p":
				if tableDepth == 0 {
					para.Reset()
					inPara = true
				}
			case "t":
				inText = true
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if tableDepth > 0 {
				cell.Write(el)
			} else if inPara {
				para.Write(el)
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if tableDepth == 0 && inPara {
					if s := strings.TrimSpace(para.String()); s != "" {
						paragraphs = append(paragraphs, s)
					}
					inPara = false
				}
			case "tc":
				if s := strings.TrimSpace(cell.String()); s != "" {
					cells = append(cells, s)
				}
			case "tr":
				if tableDepth > 0 && len(cells) > 0 {
					rows = append(rows, strings.Join(cells, " | "))
				}
			case "tbl":
				tableDepth--
			}
		}
	}
	return paragraphs, rows, nil
}
