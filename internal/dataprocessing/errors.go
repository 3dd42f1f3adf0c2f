package dataprocessing

import "errors"

// Fatal parse errors. Anything below tab/section granularity is handled by
// skip-and-continue instead of an error return.
var (
	ErrEmptyInput   = errors.New("input is empty")
	ErrNotWorkbook  = errors.New("content cannot be opened as a spreadsheet workbook")
	ErrNoWorksheets = errors.New("workbook contains no worksheets")
)
