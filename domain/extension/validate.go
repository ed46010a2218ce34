package extension

import (
	"strings"

	"extproc/domain/core"
)

// ValidateRows turns raw rows into accepted records and classified
// failures. Partial success is the normal outcome: one row's failure never
// aborts processing of subsequent rows, and the order of emitted failures
// matches row order. Every data row lands in exactly one of the two result
// slices.
func ValidateRows(rows [][]string, idx ColumnIndices) ([]ExtensionRecord, []ParseError) {
	records := make([]ExtensionRecord, 0, len(rows))
	var failures []ParseError

	for i, row := range rows {
		rowNum := i + 1

		email := cellAt(row, idx.Email)
		name := cellAt(row, idx.Name)
		assignment := cellAt(row, idx.Assignment)
		dateText := cellAt(row, idx.Date)

		reason, ok := checkRequired(email, name, assignment, dateText)
		if !ok {
			failures = append(failures, ParseError{RowNumber: rowNum, Reason: reason, RawRow: row})
			continue
		}

		date, err := core.ParseDate(dateText)
		if err != nil {
			failures = append(failures, ParseError{RowNumber: rowNum, Reason: ReasonUnparseableDate, RawRow: row})
			continue
		}

		records = append(records, ExtensionRecord{
			Email:         email,
			Name:          name,
			Assignment:    assignment,
			RequestedDate: date,
			AdjustedDate:  date,
			RowNumber:     rowNum,
		})
	}

	return records, failures
}

// checkRequired reports the first missing required field, in the fixed
// order email, name, assignment, date. A row with a missing field is never
// also checked for date validity.
func checkRequired(email, name, assignment, dateText string) (FailureReason, bool) {
	switch {
	case email == "":
		return ReasonMissingEmail, false
	case name == "":
		return ReasonMissingName, false
	case assignment == "":
		return ReasonMissingAssignment, false
	case dateText == "":
		return ReasonMissingDate, false
	}
	return "", true
}

// cellAt reads a trimmed cell, treating out-of-range indices as empty so
// short rows behave as if padded with empty trailing cells.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
