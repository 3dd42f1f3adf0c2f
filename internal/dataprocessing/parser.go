package dataprocessing

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"sellerpulse/pkg/contracts/domain"
)

// Parser normalizes heterogeneous spreadsheet exports into the canonical
// ParsedReport. It holds no state between calls; each parse allocates its
// own report and discards all intermediates on return.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser. A nil logger falls back to slog.Default.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// ParseReport routes raw upload bytes to the right entry point. Upstream
// systems regularly mislabel xlsx exports as CSV, so the content itself
// decides: ZIP-container bytes go down the workbook path, everything else is
// treated as delimited text.
func (p *Parser) ParseReport(content []byte) (*domain.ParsedReport, error) {
	if len(content) == 0 {
		return nil, ErrEmptyInput
	}
	if LooksLikeWorkbook(content) {
		return p.ParseWorkbook(content)
	}
	text := NormalizeText(content)
	if TextLooksLikeWorkbook(text) {
		if report, err := p.ParseWorkbook(content); err == nil {
			return report, nil
		}
	}
	return p.ParseDelimitedText(text)
}

// ParseWorkbook parses a multi-tab workbook into a canonical report. It
// fails only when the buffer cannot be opened as a workbook at all or
// contains zero worksheets; a bad individual tab is logged and skipped so
// the remaining tabs still contribute.
func (p *Parser) ParseWorkbook(content []byte) (*domain.ParsedReport, error) {
	if len(content) == 0 {
		return nil, ErrEmptyInput
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheets
	}

	agg := newAggregator(p.logger)
	for _, sheet := range sheets {
		tab := ExtractSheet(f, sheet, p.logger)
		if len(tab.Rows) == 0 {
			p.logger.Debug("skipping tab with no usable rows", slog.String("sheet", sheet))
			continue
		}
		group := Classify(sheet, tab.Rows)
		if group == GroupNone {
			p.logger.Debug("skipping unclassified tab", slog.String("sheet", sheet))
			continue
		}
		p.logger.Debug("applying tab",
			slog.String("sheet", sheet),
			slog.String("group", group.String()),
			slog.String("method", tab.Method),
			slog.Int("rows", len(tab.Rows)))
		agg.Apply(group, tab.Rows)
	}
	return agg.report, nil
}

// ParseDelimitedText parses a flat delimited document into a canonical
// report. An empty or whitespace-only document yields a fully defaulted
// report rather than an error.
func (p *Parser) ParseDelimitedText(text string) (*domain.ParsedReport, error) {
	agg := newAggregator(p.logger)
	if strings.TrimSpace(text) == "" {
		return agg.report, nil
	}

	lines := SplitLines(text)
	for _, section := range SplitSections(lines) {
		group := Classify(section.Name, section.Rows)
		if group == GroupNone {
			p.logger.Debug("skipping unclassified section", slog.String("section", section.Name))
			continue
		}
		p.logger.Debug("applying section",
			slog.String("section", section.Name),
			slog.String("group", group.String()),
			slog.Int("rows", len(section.Rows)))
		agg.Apply(group, section.Rows)
	}
	return agg.report, nil
}

// aggregator owns the report under construction and routes classified rows
// to the normalizer for their group. Merge order is document order, which is
// what makes last-write-wins deterministic.
type aggregator struct {
	report *domain.ParsedReport
	logger *slog.Logger
}

func newAggregator(logger *slog.Logger) *aggregator {
	return &aggregator{report: domain.NewParsedReport(), logger: logger}
}

func (a *aggregator) Apply(group ReportGroup, rows [][]string) {
	switch group {
	case GroupProfitLoss:
		applyProfitLoss(&a.report.ProfitLoss, rows, a.logger)
	case GroupProductPerformance:
		applyProductPerformance(a.report, rows, a.logger)
	case GroupPayouts:
		applyPayouts(&a.report.Payouts, rows, a.logger)
	case GroupAmazonPerformance:
		applyAmazonPerformance(&a.report.AmazonPerformance, rows, a.logger)
	}
}
