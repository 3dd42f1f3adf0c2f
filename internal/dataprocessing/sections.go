package dataprocessing

import "strings"

// Section is one logically delimited block of rows from a flat delimited
// document, introduced by a banner line. Sections keep document order so
// last-write-wins merging stays deterministic, and keep the exact banner
// text so diagnostics show what the export actually said.
type Section struct {
	Name string
	Rows [][]string
}

// InferredProductSection names the section synthesized when a document has
// no banners but opens with a product table header.
const InferredProductSection = "Product Performance"

// Banner keywords, lowercased. A line is a banner only when it mentions one
// of these AND carries no delimiter; the second condition separates a bare
// title line from a data row that happens to mention a keyword.
var sectionKeywords = []string{
	"profit & loss", "profit and loss", "p&l", "financial summary",
	"per-product performance", "product performance", "product data", "asin performance",
	"payouts", "payout", "earnings", "revenue",
	"amazon performance", "platform performance", "marketplace performance",
}

// SplitSections partitions tokenized lines into named sections. Rows that
// appear before the first banner belong to no section and are dropped. If
// the document has no banners at all, a lone product table is inferred from
// the header row vocabulary, because some exports ship one flat product
// table with no banner.
func SplitSections(lines []string) []Section {
	var sections []Section
	var currentName string
	var buffer [][]string

	flush := func() {
		if currentName != "" && len(buffer) > 0 {
			sections = append(sections, Section{Name: currentName, Rows: buffer})
		}
		buffer = nil
	}

	for _, line := range lines {
		if isSectionBanner(line) {
			flush()
			currentName = line
			continue
		}
		buffer = append(buffer, SplitCells(line))
	}
	flush()

	if len(sections) == 0 && len(lines) > 0 {
		if looksLikeProductHeader(SplitCells(lines[0])) {
			rows := make([][]string, 0, len(lines))
			for _, line := range lines {
				rows = append(rows, SplitCells(line))
			}
			sections = append(sections, Section{Name: InferredProductSection, Rows: rows})
		}
	}

	return sections
}

func isSectionBanner(line string) bool {
	if strings.ContainsRune(line, fieldDelimiter) {
		return false
	}
	lower := strings.ToLower(line)
	for _, keyword := range sectionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func looksLikeProductHeader(cells []string) bool {
	var hasASIN, hasTitle, hasSales bool
	for _, cell := range cells {
		lower := strings.ToLower(cell)
		if strings.Contains(lower, "asin") {
			hasASIN = true
		}
		if strings.Contains(lower, "title") {
			hasTitle = true
		}
		if strings.Contains(lower, "sales") {
			hasSales = true
		}
		if strings.Contains(lower, "product") {
			return true
		}
	}
	return hasASIN || hasTitle || (hasASIN && hasTitle && hasSales)
}
