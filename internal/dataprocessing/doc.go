// Package dataprocessing normalizes heterogeneous client spreadsheet exports
// into the canonical report model. It handles multi-tab xlsx workbooks,
// Google Sheets exports and loosely structured CSV dumps, tolerating wide
// variation in section names, metric synonyms, column orders and
// spreadsheet-library quirks.
//
// # Architecture
//
// The pipeline runs leaves-first:
//
//  1. Content sniffer: decides whether a blob is really a workbook container
//     regardless of its declared type.
//  2. Tokenizer: splits delimited text into logical lines and cells,
//     honoring quoting, escaped quotes and embedded newlines.
//  3. Section splitter: partitions a flat document into named sections on
//     banner lines.
//  4. Worksheet extractor: runs three competing extraction strategies per
//     tab and selects the most plausible result.
//  5. Classifier: routes a tab or section to one of the four canonical
//     groups by name, or by header vocabulary when the name says nothing.
//  6. Metric normalizer: maps label and column synonyms onto canonical
//     fields with last-write-wins semantics.
//  7. Aggregator: owns the ParsedReport and isolates per-tab failures so one
//     bad tab never aborts the parse.
//
// # Usage
//
//	parser := dataprocessing.NewParser(logger)
//	report, err := parser.ParseReport(uploadBytes)
//	if err != nil {
//	    // the whole input was unusable; no partial report exists
//	}
//
// # Error Handling
//
// Only whole-input failures (unopenable container, zero worksheets, empty
// buffer) surface as errors. A tab, section or row that cannot be used is
// logged and skipped; the affected canonical fields simply keep their
// defaults, and the report shape is always complete.
package dataprocessing
