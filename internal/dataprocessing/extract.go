package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Extraction method tags, recorded per tab for diagnostics.
const (
	MethodStructuredArray = "structured-array"
	MethodDelimitedText   = "delimited-text"
	MethodRowObject       = "row-object"
)

// delimitedTextRatio is the threshold above which the delimited-text
// rendering is preferred over the structured array. Empirically tuned;
// kept as a literal rather than re-derived.
const delimitedTextRatio = 8

// TabData is the outcome of extracting one worksheet. An empty Rows slice
// means every strategy came up empty and the tab contributes nothing; that
// is a skip, not an error.
type TabData struct {
	Sheet  string
	Method string
	Rows   [][]string
}

// strategyResult is one extraction attempt. A failed strategy carries its
// reason and is skipped by the selector; it never aborts the tab.
type strategyResult struct {
	rows [][]string
	ok   bool
	why  string
}

func okResult(rows [][]string) strategyResult { return strategyResult{rows: rows, ok: true} }
func skipResult(err error) strategyResult     { return strategyResult{ok: false, why: err.Error()} }

// ExtractSheet pulls row data out of one worksheet by running three
// independent strategies and picking the most plausible result. Human-made
// workbooks defeat any single strategy often enough that competing
// extractions are worth the redundancy.
func ExtractSheet(f *excelize.File, sheet string, logger *slog.Logger) TabData {
	if logger == nil {
		logger = slog.Default()
	}

	structured := extractStructuredArray(f, sheet)
	rendered, renderErr := renderDelimitedText(f, sheet)
	objects := extractRowObjects(f, sheet)

	tab := TabData{Sheet: sheet}

	switch {
	case renderErr == nil && rendered != "":
		ratio := len(rendered) / max(len(structured.rows), 1)
		if ratio > delimitedTextRatio &&
			strings.ContainsRune(rendered, fieldDelimiter) && strings.ContainsRune(rendered, '\n') {
			tab.Method = MethodDelimitedText
			tab.Rows = reparseDelimited(rendered)
			break
		}
		fallthrough
	default:
		if objects.ok && len(objects.rows) > len(structured.rows) && len(objects.rows) > 0 && len(objects.rows[0]) > 0 {
			tab.Method = MethodRowObject
			tab.Rows = objects.rows
			break
		}
		tab.Method = MethodStructuredArray
		tab.Rows = structured.rows
		if !structured.ok {
			logger.Debug("structured extraction unavailable",
				slog.String("sheet", sheet),
				slog.String("reason", structured.why))
		}
	}

	tab.Rows = dropEmptyRows(tab.Rows)
	logger.Debug("sheet extracted",
		slog.String("sheet", sheet),
		slog.String("method", tab.Method),
		slog.Int("rows", len(tab.Rows)))
	return tab
}

// extractStructuredArray renders the sheet as a 2-D array of formatted cell
// text, header row included, blank cells as empty strings.
func extractStructuredArray(f *excelize.File, sheet string) strategyResult {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return skipResult(fmt.Errorf("get rows: %w", err))
	}
	return okResult(rows)
}

// renderDelimitedText renders the sheet to one comma/newline blob from raw
// cell values, quoting cells that embed a delimiter, quote or line break.
func renderDelimitedText(f *excelize.File, sheet string) (string, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", fmt.Errorf("render rows: %w", err)
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteRune(fieldDelimiter)
			}
			b.WriteString(quoteCell(cell))
		}
	}
	return b.String(), nil
}

func quoteCell(cell string) string {
	if strings.ContainsAny(cell, ",\"\n") {
		return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}

// reparseDelimited turns the rendered blob back into rows, stripping the one
// layer of quoting the renderer added.
func reparseDelimited(text string) [][]string {
	lines := SplitLines(text)
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, SplitCells(line))
	}
	return rows
}

// extractRowObjects renders the sheet as header-keyed row objects, then
// converts them back to a header row plus value rows preserving the key
// order of the first object.
func extractRowObjects(f *excelize.File, sheet string) strategyResult {
	raw, err := f.GetRows(sheet)
	if err != nil {
		return skipResult(fmt.Errorf("get rows: %w", err))
	}
	if len(raw) < 2 {
		return skipResult(fmt.Errorf("no data rows under header"))
	}

	var keys []string
	for _, h := range raw[0] {
		if h = strings.TrimSpace(h); h != "" {
			keys = append(keys, h)
		}
	}
	if len(keys) == 0 {
		return skipResult(fmt.Errorf("header row has no usable keys"))
	}

	rows := make([][]string, 0, len(raw))
	rows = append(rows, keys)
	for _, row := range raw[1:] {
		object := make(map[string]string, len(keys))
		for j, cell := range row {
			if j < len(raw[0]) {
				if key := strings.TrimSpace(raw[0][j]); key != "" {
					object[key] = cell
				}
			}
		}
		values := make([]string, len(keys))
		for k, key := range keys {
			values[k] = object[key]
		}
		rows = append(rows, values)
	}
	return okResult(rows)
}

// dropEmptyRows filters out rows in which no cell holds meaningful text.
// Spreadsheet libraries leak literal "null"/"undefined" strings into cells;
// those do not count as content.
func dropEmptyRows(rows [][]string) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		for _, cell := range row {
			text := strings.TrimSpace(cell)
			if text != "" && text != "null" && text != "undefined" {
				kept = append(kept, row)
				break
			}
		}
	}
	return kept
}
