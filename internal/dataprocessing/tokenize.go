package dataprocessing

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const fieldDelimiter = ','

// NormalizeText prepares a raw export body for tokenizing. Excel "Unicode
// Text" saves arrive as UTF-16 with a BOM and Windows exports carry CRLF
// line endings, so both are canonicalized to plain UTF-8 with LF breaks.
func NormalizeText(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}), bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if decoded, _, err := transform.Bytes(decoder, raw); err == nil {
			raw = decoded
		}
	case bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}):
		raw = raw[3:]
	}

	text := string(raw)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// SplitLines splits a text body into logical lines. A line break inside an
// open double-quoted field does not terminate the line, so free-text cells
// with embedded newlines stay intact. Lines are trimmed and empty lines are
// dropped.
func SplitLines(text string) []string {
	var lines []string
	var current strings.Builder
	inQuotes := false

	for _, r := range text {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == '\n' && !inQuotes:
			if line := strings.TrimSpace(current.String()); line != "" {
				lines = append(lines, line)
			}
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if line := strings.TrimSpace(current.String()); line != "" {
		lines = append(lines, line)
	}
	return lines
}

// SplitCells splits one logical line into cells. Delimiters inside quotes do
// not split; a doubled quote inside a quoted field unescapes to a single
// quote. An unterminated quote is tolerated: the rest of the line, delimiters
// included, becomes literal cell text. Cells are trimmed, so a cell of pure
// whitespace normalizes to the empty string.
func SplitCells(line string) []string {
	var cells []string
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case r == fieldDelimiter && !inQuotes:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	cells = append(cells, strings.TrimSpace(current.String()))
	return cells
}
