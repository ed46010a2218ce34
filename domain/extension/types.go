// Package extension implements the due-date change request pipeline: parsing
// a raw form export into typed records, classifying failures, deduplicating
// repeat submissions, and normalizing requested dates to a weekly boundary.
//
// Every function in this package is a pure transformation over its inputs.
// The package performs no I/O and holds no state between calls, so
// concurrent runs over different exports need no coordination.
package extension

import (
	"extproc/domain/core"
)

// Delimiter identifies the cell separator of an export.
type Delimiter string

const (
	// DelimiterAuto lets the parser detect the separator from the header.
	DelimiterAuto  Delimiter = ""
	DelimiterTab   Delimiter = "\t"
	DelimiterComma Delimiter = ","
)

// ColumnConfig maps the four logical fields onto the physical header text
// expected in the export. Immutable once created per run.
type ColumnConfig struct {
	Email      string
	Name       string
	Assignment string
	Date       string
}

// DefaultColumnConfig returns the exact header strings of the MS Forms
// export this tool was built for.
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		Email:      "Email",
		Name:       "Name",
		Assignment: "Which assignment due date do you want to change?",
		Date:       "What would you like to new date to be change too?",
	}
}

// TableData holds the split header and raw data rows of an export. Rows may
// be shorter than the header; downstream consumers treat missing trailing
// cells as empty.
type TableData struct {
	Header []string
	Rows   [][]string
}

// ColumnIndices holds the resolved physical position of each logical field.
type ColumnIndices struct {
	Email      int
	Name       int
	Assignment int
	Date       int
}

// ExtensionRecord is one accepted submission. AdjustedDate equals
// RequestedDate until AdjustRecords moves it to the next Sunday.
type ExtensionRecord struct {
	Email         string
	Name          string
	Assignment    string
	RequestedDate core.Date
	AdjustedDate  core.Date
	RowNumber     int // 1-based, counting from the first data row
}

// FailureReason classifies why a row was rejected. A closed enumeration so
// reporting and tests can switch exhaustively instead of comparing strings.
type FailureReason string

const (
	ReasonMissingEmail      FailureReason = "missing-email"
	ReasonMissingName       FailureReason = "missing-name"
	ReasonMissingAssignment FailureReason = "missing-assignment"
	ReasonMissingDate       FailureReason = "missing-date"
	ReasonUnparseableDate   FailureReason = "unparseable-date"
)

// ParseError is one rejected row, kept with its original cells so failure
// reports can show exactly what was submitted.
type ParseError struct {
	RowNumber int
	Reason    FailureReason
	RawRow    []string
}

// AssignmentGroup is the per-assignment aggregation result. Recomputed fresh
// from the deduplicated record set each run.
type AssignmentGroup struct {
	Assignment   string
	Records      []ExtensionRecord
	Count        int
	EarliestDate core.Date
	LatestDate   core.Date
}

// Summary is the run-level aggregation result. Issues is populated by the
// calling layer; the core performs no I/O and cannot observe I/O failures.
type Summary struct {
	RunID           string
	TotalRecords    int
	UniqueStudents  int
	Groups          []AssignmentGroup
	AdjustedCount   int
	MeanShiftDays   float64
	MedianShiftDays float64
	Issues          []string
}
