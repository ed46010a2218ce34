// Package source acquires raw export text from the places users actually
// have it: a saved file, the clipboard, or a terminal paste on stdin.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/xuri/excelize/v2"

	"extproc/internal"
	apperrors "extproc/internal/errors"
)

// Reader loads raw export text for the pipeline. All methods return the
// full export content as a single string; the core parser owns splitting.
type Reader struct {
	log *internal.Logger
}

// NewReader creates a source reader.
func NewReader(log *internal.Logger) *Reader {
	if log == nil {
		log = internal.NewDefaultLogger("Source")
	}
	return &Reader{log: log}
}

// ReadFile loads an export from disk. Plain text files (.txt, .tsv, .csv)
// are read verbatim; .xlsx files (the raw MS Forms download) are converted
// to tab-delimited text first.
func (r *Reader) ReadFile(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", apperrors.IOError(fmt.Sprintf("file not found: %s", path))
	}

	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		return r.readWorkbook(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.Wrapf(err, "failed to read %s", path)
	}
	r.log.Debug("read %d bytes from %s", len(data), path)
	return string(data), nil
}

// readWorkbook flattens the first sheet of a workbook into tab-delimited
// lines. Cells are joined with tabs so commas inside form answers cannot
// change the column count.
func (r *Reader) readWorkbook(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", apperrors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", apperrors.InvalidInput(fmt.Sprintf("workbook %s has no sheets", path))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", apperrors.Wrapf(err, "failed to read sheet %q", sheets[0])
	}
	r.log.Debug("read %d rows from sheet %q of %s", len(rows), sheets[0], path)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, "\t"))
	}
	return strings.Join(lines, "\n"), nil
}

// ReadClipboard loads the export from the system clipboard.
func (r *Reader) ReadClipboard() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", apperrors.Wrap(err, "failed to read clipboard")
	}
	if strings.TrimSpace(text) == "" {
		return "", apperrors.InvalidInput("clipboard is empty")
	}
	r.log.Debug("read %d bytes from clipboard", len(text))
	return text, nil
}

// ReadStream drains an input stream to EOF, typically stdin after the user
// pastes the export into the terminal.
func (r *Reader) ReadStream(in io.Reader) (string, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to read input stream")
	}
	return string(data), nil
}
