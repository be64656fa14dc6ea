// Package text implements the separator-priority chunk splitter used by the
// document normalizer. Splitting is a pure function of its inputs: the same
// text and configuration always yield the same chunk sequence.
package text

import "strings"

// defaultSeparators in priority order: paragraph break, line break,
// sentence end, word break, and finally individual characters.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

func NewSplitter(chunkSize, chunkOverlap int) *Splitter {
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   defaultSeparators,
	}
}

// Split breaks text into chunks of at most chunkSize bytes, preferring the
// highest-priority separator present, re-splitting oversized pieces with the
// next separator down. Adjacent undersized pieces are joined back together,
// carrying chunkOverlap bytes of trailing context into the next chunk.
// Every character of the input is covered by at least one chunk (modulo
// leading/trailing whitespace trimmed off chunk edges).
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	// Pick the first separator that actually occurs in the text.
	separator := separators[len(separators)-1]
	var rest []string
	for i, sep := range separators {
		if sep == "" {
			separator = ""
			rest = nil
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			rest = separators[i+1:]
			break
		}
	}

	var chunks []string
	var fitting []string
	for _, piece := range splitAfter(text, separator) {
		if len(piece) < s.chunkSize {
			fitting = append(fitting, piece)
			continue
		}
		if len(fitting) > 0 {
			chunks = append(chunks, s.merge(fitting)...)
			fitting = nil
		}
		if len(rest) == 0 {
			// No finer separator left: the piece is atomic, keep it whole.
			chunks = append(chunks, piece)
		} else {
			chunks = append(chunks, s.split(piece, rest)...)
		}
	}
	if len(fitting) > 0 {
		chunks = append(chunks, s.merge(fitting)...)
	}
	return chunks
}

// merge joins adjacent pieces until adding the next one would exceed
// chunkSize, then starts the next chunk from the retained overlap tail.
func (s *Splitter) merge(pieces []string) []string {
	var chunks []string
	var current []string
	total := 0

	for _, piece := range pieces {
		if total+len(piece) > s.chunkSize && len(current) > 0 {
			if c := strings.TrimSpace(strings.Join(current, "")); c != "" {
				chunks = append(chunks, c)
			}
			// Drop leading pieces until the tail fits within the overlap
			// and leaves room for the incoming piece.
			for total > s.chunkOverlap || (total+len(piece) > s.chunkSize && total > 0) {
				total -= len(current[0])
				current = current[1:]
			}
		}
		current = append(current, piece)
		total += len(piece)
	}

	if c := strings.TrimSpace(strings.Join(current, "")); c != "" {
		chunks = append(chunks, c)
	}
	return chunks
}

// splitAfter splits text on separator, keeping each separator attached to
// the end of the preceding piece so that concatenating the pieces
// reconstructs the input exactly. An empty separator splits into runes.
func splitAfter(text, separator string) []string {
	if separator == "" {
		parts := make([]string, 0, len(text))
		for _, r := range text {
			parts = append(parts, string(r))
		}
		return parts
	}

	var parts []string
	for {
		i := strings.Index(text, separator)
		if i < 0 {
			if text != "" {
				parts = append(parts, text)
			}
			return parts
		}
		parts = append(parts, text[:i+len(separator)])
		text = text[i+len(separator):]
	}
}
