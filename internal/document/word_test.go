package document

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWord(t *testing.T) {
	t.Run("Paragraphs Then Table Rows", func(t *testing.T) {
		body := docxParagraph("First paragraph.") +
			docxParagraph("   ") +
			docxParagraph("Second paragraph.") +
			`<w:tbl><w:tr>` +
			`<w:tc>` + docxParagraph("Cell A") + `</w:tc>` +
			`<w:tc>` + docxParagraph("Cell B") + `</w:tc>` +
			`<w:tc>` + docxParagraph("") + `</w:tc>` +
			`</w:tr></w:tbl>`

		path := writeDocx(t, t.TempDir(), "note.docx", body)
		segments, err := loadWord(path)
		require.NoError(t, err)
		require.Len(t, segments, 1)

		lines := strings.Split(segments[0].Text, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "First paragraph.", lines[0])
		assert.Equal(t, "Second paragraph.", lines[1])
		assert.Equal(t, "Cell A | Cell B", lines[2])

		// Locator is assigned post-splitting, not here.
		assert.Equal(t, Locator{}, segments[0].Locator)
	})

	t.Run("Split Runs In One Paragraph", func(t *testing.T) {
		body := `<w:p><w:r><w:t>Hel</w:t></w:r><w:r><w:t>lo</w:t></w:r></w:p>`
		path := writeDocx(t, t.TempDir(), "runs.docx", body)
		segments, err := loadWord(path)
		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.Equal(t, "Hello", segments[0].Text)
	})

	t.Run("Empty Document", func(t *testing.T) {
		path := writeDocx(t, t.TempDir(), "empty.docx", docxParagraph("  "))
		segments, err := loadWord(path)
		require.NoError(t, err)
		assert.Empty(t, segments)
	})

	t.Run("Legacy Binary Doc Fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "old.doc")
		require.NoError(t, writeFile(path, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1}))

		_, err := loadWord(path)
		assert.Error(t, err)
	})

	t.Run("Zip Without Document XML", func(t *testing.T) {
		path := writeZip(t, t.TempDir(), "other.docx", "readme.txt", "not a word container")

		_, err := loadWord(path)
		assert.Error(t, err)
	})
}
