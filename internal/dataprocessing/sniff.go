package dataprocessing

import "strings"

// Workbook exports are ZIP containers; the local-file-header signature is
// enough to spot one no matter what media type the uploader declared.
var workbookMarkers = []string{"PK\x03\x04", "xl/", "workbook.xml", "worksheets/", "drawings/"}

// LooksLikeWorkbook reports whether raw bytes are spreadsheet-container
// content, regardless of the declared content type.
func LooksLikeWorkbook(content []byte) bool {
	return len(content) >= 2 && content[0] == 0x50 && content[1] == 0x4B
}

// TextLooksLikeWorkbook reports whether a string that was supposed to be
// delimited text is actually workbook content. Upstream systems regularly
// hand xlsx exports over labeled as CSV; spotting the container markers lets
// the pipeline self-correct before choosing an extraction path.
func TextLooksLikeWorkbook(text string) bool {
	for _, marker := range workbookMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
