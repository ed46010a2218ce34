package extension

import (
	"strings"
)

// utf8BOM is the byte-order mark some export tools prepend to the file.
const utf8BOM = "\uFEFF"

// ParseTable splits raw export text into a header and ordered data rows.
// It never fails: degenerate input yields an empty table.
//
// A byte-order mark on the first line is stripped so it cannot become part
// of the first column name. Blank lines are dropped entirely; they are not
// data rows and never show up in row numbering. When delim is DelimiterAuto
// the separator is detected from the header line, preferring tab (the
// export is nominally tab-delimited) and falling back to comma for
// comma-separated variants pasted by users. Splitting is literal; the
// source format has no quoting.
func ParseTable(raw string, delim Delimiter) TableData {
	raw = strings.TrimPrefix(raw, utf8BOM)

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return TableData{}
	}

	if delim == DelimiterAuto {
		delim = detectDelimiter(lines[0])
	}

	header := strings.Split(lines[0], string(delim))
	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, strings.Split(line, string(delim)))
	}

	return TableData{Header: header, Rows: rows}
}

// detectDelimiter inspects the header line. Tab wins whenever present;
// otherwise comma.
func detectDelimiter(header string) Delimiter {
	if strings.Count(header, "\t") > 0 {
		return DelimiterTab
	}
	return DelimiterComma
}
