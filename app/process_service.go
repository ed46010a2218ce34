package app

import (
	"github.com/google/uuid"

	"extproc/domain/extension"
	"extproc/internal"
)

// ProcessService orchestrates the extension request pipeline: parse,
// resolve columns, validate, adjust, deduplicate, aggregate. It owns no
// state between runs; concurrent Process calls are independent.
type ProcessService struct {
	log *internal.Logger
}

// ProcessRequest defines inputs for one pipeline run.
type ProcessRequest struct {
	Raw            string
	Delimiter      extension.Delimiter
	Columns        extension.ColumnConfig
	AdjustToSunday bool
}

// ProcessResult contains the surviving records, per-row failures and the
// run summary. Records are deduplicated and date-adjusted.
type ProcessResult struct {
	Records           []extension.ExtensionRecord
	Failures          []extension.ParseError
	Summary           extension.Summary
	DuplicatesRemoved int
}

// NewProcessService creates a process service.
func NewProcessService(log *internal.Logger) *ProcessService {
	if log == nil {
		log = internal.NewDefaultLogger("Pipeline")
	}
	return &ProcessService{log: log}
}

// Process runs the whole pipeline over one export. The only fatal error is
// the schema mismatch from column resolution; per-row problems come back
// in Failures and never abort the run.
func (s *ProcessService) Process(req ProcessRequest) (*ProcessResult, error) {
	table := extension.ParseTable(req.Raw, req.Delimiter)
	s.log.Debug("parsed table: %d columns, %d data rows", len(table.Header), len(table.Rows))

	indices, err := extension.ResolveColumns(table.Header, req.Columns)
	if err != nil {
		return nil, err
	}

	records, failures := extension.ValidateRows(table.Rows, indices)
	s.log.Info("validated %d rows: %d accepted, %d rejected", len(table.Rows), len(records), len(failures))

	records = extension.AdjustRecords(records, req.AdjustToSunday)

	before := len(records)
	records = extension.Deduplicate(records)
	removed := before - len(records)
	if removed > 0 {
		s.log.Info("removed %d superseded submission(s)", removed)
	}

	summary := extension.Aggregate(records)
	summary.RunID = uuid.NewString()
	s.log.Info("run %s: %d records across %d assignment(s), %d date(s) moved to Sunday",
		summary.RunID, summary.TotalRecords, len(summary.Groups), summary.AdjustedCount)

	return &ProcessResult{
		Records:           records,
		Failures:          failures,
		Summary:           summary,
		DuplicatesRemoved: removed,
	}, nil
}
