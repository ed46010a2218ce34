// Package report turns pipeline results into flat files: one CSV per
// assignment, a failures CSV, and a human-readable summary.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"extproc/domain/extension"
	"extproc/internal"
	apperrors "extproc/internal/errors"
)

// utf8BOM prefixes every CSV so Excel opens them as UTF-8, matching the
// form tool's own exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// FileInfo describes one written per-assignment file, for the summary.
type FileInfo struct {
	Assignment string
	Filename   string
	Students   int
	Earliest   string
	Latest     string
}

// Writer renders pipeline results into an output directory.
type Writer struct {
	outputDir string
	log       *internal.Logger
}

// NewWriter creates a report writer rooted at outputDir. The directory is
// created on first write.
func NewWriter(outputDir string, log *internal.Logger) *Writer {
	if log == nil {
		log = internal.NewDefaultLogger("Report")
	}
	return &Writer{outputDir: outputDir, log: log}
}

// SanitizeFilename converts an assignment name into a filesystem-safe
// lowercase stem: runs of non-alphanumerics collapse to a single
// underscore.
func SanitizeFilename(text string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(text), "_")
	return strings.Trim(s, "_")
}

// WriteAssignments writes one <assignment>_extensions.csv per group, rows
// sorted by email, and returns the file details for the summary. Groups
// arrive pre-sorted from the aggregator so output order is deterministic.
func (w *Writer) WriteAssignments(groups []extension.AssignmentGroup) ([]FileInfo, error) {
	if err := w.ensureOutputDir(); err != nil {
		return nil, err
	}

	infos := make([]FileInfo, 0, len(groups))
	for _, group := range groups {
		filename := SanitizeFilename(group.Assignment) + "_extensions.csv"

		records := make([]extension.ExtensionRecord, len(group.Records))
		copy(records, group.Records)
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Email < records[j].Email
		})

		rows := [][]string{{"Email", "Name", "Assignment", "DueDate"}}
		for _, rec := range records {
			rows = append(rows, []string{rec.Email, rec.Name, rec.Assignment, rec.AdjustedDate.Format()})
		}

		if err := w.writeCSV(filename, rows); err != nil {
			return infos, err
		}
		w.log.Info("wrote %s (%d students)", filename, group.Count)

		infos = append(infos, FileInfo{
			Assignment: group.Assignment,
			Filename:   filename,
			Students:   group.Count,
			Earliest:   group.EarliestDate.Format(),
			Latest:     group.LatestDate.Format(),
		})
	}
	return infos, nil
}

// WriteFailures writes failures.csv with one line per rejected row. No file
// is written when there are no failures.
func (w *Writer) WriteFailures(failures []extension.ParseError) error {
	if len(failures) == 0 {
		return nil
	}
	if err := w.ensureOutputDir(); err != nil {
		return err
	}

	rows := [][]string{{"row_number", "reason", "raw_row"}}
	for _, f := range failures {
		rows = append(rows, []string{
			strconv.Itoa(f.RowNumber),
			string(f.Reason),
			strings.Join(f.RawRow, "\t"),
		})
	}

	if err := w.writeCSV("failures.csv", rows); err != nil {
		return err
	}
	w.log.Info("wrote failures.csv (%d rejected rows)", len(failures))
	return nil
}

// WriteSummary renders SUMMARY.txt and returns the summary text so callers
// can also print it to the terminal.
func (w *Writer) WriteSummary(summary extension.Summary, files []FileInfo, failures []extension.ParseError) (string, error) {
	if err := w.ensureOutputDir(); err != nil {
		return "", err
	}

	text := w.renderSummary(summary, files, failures)
	path := filepath.Join(w.outputDir, "SUMMARY.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", apperrors.Wrapf(err, "failed to write %s", path)
	}
	w.log.Info("wrote SUMMARY.txt")
	return text, nil
}

func (w *Writer) renderSummary(summary extension.Summary, files []FileInfo, failures []extension.ParseError) string {
	rule := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 70)
	absDir, err := filepath.Abs(w.outputDir)
	if err != nil {
		absDir = w.outputDir
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "EXTENSION REQUEST PROCESSING SUMMARY\n")
	fmt.Fprintf(&b, "%s\n\n", rule)
	fmt.Fprintf(&b, "Run ID:            %s\n", summary.RunID)
	fmt.Fprintf(&b, "Total Assignments: %d\n", len(summary.Groups))
	fmt.Fprintf(&b, "Total Records:     %d\n", summary.TotalRecords)
	fmt.Fprintf(&b, "Unique Students:   %d\n", summary.UniqueStudents)
	fmt.Fprintf(&b, "Dates Adjusted:    %d (mean shift %.1f days, median %.1f)\n",
		summary.AdjustedCount, summary.MeanShiftDays, summary.MedianShiftDays)
	fmt.Fprintf(&b, "\nOutput Directory: %s\n", absDir)

	fmt.Fprintf(&b, "\n%s\n", thin)
	fmt.Fprintf(&b, "PER-ASSIGNMENT BREAKDOWN\n")
	fmt.Fprintf(&b, "%s\n", thin)
	for _, info := range files {
		fmt.Fprintf(&b, "\n%s\n", info.Assignment)
		fmt.Fprintf(&b, "  File: %s\n", info.Filename)
		fmt.Fprintf(&b, "  Students: %d\n", info.Students)
		fmt.Fprintf(&b, "  Date Range: %s to %s\n", info.Earliest, info.Latest)
	}

	fmt.Fprintf(&b, "\n%s\n", thin)
	if len(failures) > 0 {
		fmt.Fprintf(&b, "REJECTED ROWS (%d found)\n", len(failures))
		fmt.Fprintf(&b, "%s\n", thin)
		for _, f := range failures {
			fmt.Fprintf(&b, "  Row %d: %s\n", f.RowNumber, f.Reason)
		}
	} else {
		fmt.Fprintf(&b, "No rejected rows\n")
		fmt.Fprintf(&b, "%s\n", thin)
	}

	for _, issue := range summary.Issues {
		fmt.Fprintf(&b, "  Issue: %s\n", issue)
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}

func (w *Writer) ensureOutputDir() error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return apperrors.Wrapf(err, "failed to create output directory %s", w.outputDir)
	}
	return nil
}

func (w *Writer) writeCSV(filename string, rows [][]string) error {
	path := filepath.Join(w.outputDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return apperrors.Wrapf(err, "failed to write %s", path)
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		return apperrors.Wrapf(err, "failed to write %s", path)
	}
	cw.Flush()
	return cw.Error()
}
