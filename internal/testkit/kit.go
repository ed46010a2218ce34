// Package testkit builds synthetic form exports for tests.
package testkit

import (
	"strings"

	"extproc/domain/extension"
)

// ExportBuilder assembles a delimited export line by line. The zero value
// is not usable; construct with NewExport.
type ExportBuilder struct {
	delim string
	lines []string
}

// NewExport starts a tab-delimited export with the default MS Forms header.
func NewExport() *ExportBuilder {
	return NewExportWithColumns(extension.DefaultColumnConfig(), "\t")
}

// NewExportWithColumns starts an export with a custom header and delimiter.
func NewExportWithColumns(cfg extension.ColumnConfig, delim string) *ExportBuilder {
	b := &ExportBuilder{delim: delim}
	b.lines = append(b.lines, strings.Join([]string{cfg.Email, cfg.Name, cfg.Assignment, cfg.Date}, delim))
	return b
}

// Row appends a data row with the four logical fields in header order.
func (b *ExportBuilder) Row(email, name, assignment, date string) *ExportBuilder {
	b.lines = append(b.lines, strings.Join([]string{email, name, assignment, date}, b.delim))
	return b
}

// RawLine appends an arbitrary line, e.g. a short or malformed row.
func (b *ExportBuilder) RawLine(line string) *ExportBuilder {
	b.lines = append(b.lines, line)
	return b
}

// Blank appends an empty line.
func (b *ExportBuilder) Blank() *ExportBuilder {
	b.lines = append(b.lines, "")
	return b
}

// Build renders the export text with a trailing newline, the way export
// tools write files.
func (b *ExportBuilder) Build() string {
	return strings.Join(b.lines, "\n") + "\n"
}

// BuildWithBOM renders the export prefixed with a UTF-8 byte-order mark.
func (b *ExportBuilder) BuildWithBOM() string {
	return "\uFEFF" + b.Build()
}
