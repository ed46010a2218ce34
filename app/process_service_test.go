package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extproc/domain/core"
	"extproc/domain/extension"
	"extproc/internal/testkit"
)

func defaultRequest(raw string) ProcessRequest {
	return ProcessRequest{
		Raw:            raw,
		Delimiter:      extension.DelimiterAuto,
		Columns:        extension.DefaultColumnConfig(),
		AdjustToSunday: true,
	}
}

func TestProcess_EndToEnd(t *testing.T) {
	// A resubmission for the same (student, assignment) pair: the later row
	// wins and its Saturday date snaps to the following Sunday.
	raw := testkit.NewExport().
		Row("a@x.com", "Alice", "HW1", "01/15/2024"). // Monday
		Row("a@x.com", "Alice", "HW1", "01/20/2024"). // Saturday, submitted later
		Build()

	svc := NewProcessService(nil)
	res, err := svc.Process(defaultRequest(raw))
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, 1, res.DuplicatesRemoved)
	assert.Empty(t, res.Failures)

	rec := res.Records[0]
	assert.Equal(t, "a@x.com", rec.Email)
	assert.Equal(t, "01/20/2024", rec.RequestedDate.Format())
	assert.Equal(t, "01/21/2024", rec.AdjustedDate.Format())

	require.Len(t, res.Summary.Groups, 1)
	assert.Equal(t, "HW1", res.Summary.Groups[0].Assignment)
	assert.Equal(t, 1, res.Summary.TotalRecords)
	assert.Equal(t, 1, res.Summary.UniqueStudents)
	assert.NotEmpty(t, res.Summary.RunID)
}

func TestProcess_MixedValidityAndBOM(t *testing.T) {
	raw := testkit.NewExport().
		Row("a@x.com", "Alice", "HW1", "01/15/2024").
		Row("", "Bob", "HW1", "01/16/2024").
		Row("c@x.com", "Cara", "HW2", "13/01/2024").
		Blank().
		Row("d@x.com", "Dan", "HW2", "01/18/2024").
		BuildWithBOM()

	svc := NewProcessService(nil)
	res, err := svc.Process(defaultRequest(raw))
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, extension.ReasonMissingEmail, res.Failures[0].Reason)
	assert.Equal(t, extension.ReasonUnparseableDate, res.Failures[1].Reason)
	assert.Len(t, res.Summary.Groups, 2)
}

func TestProcess_MissingColumnsIsFatal(t *testing.T) {
	raw := "Email\tName\ta@x.com\n"

	svc := NewProcessService(nil)
	_, err := svc.Process(defaultRequest(raw))

	require.Error(t, err)
	assert.True(t, core.IsSchemaError(err))
}

func TestProcess_AdjustmentDisabled(t *testing.T) {
	raw := testkit.NewExport().
		Row("a@x.com", "Alice", "HW1", "01/20/2024"). // Saturday
		Build()

	req := defaultRequest(raw)
	req.AdjustToSunday = false

	res, err := NewProcessService(nil).Process(req)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "01/20/2024", res.Records[0].AdjustedDate.Format())
	assert.Zero(t, res.Summary.AdjustedCount)
}

func TestProcess_CommaDelimitedExport(t *testing.T) {
	cols := extension.ColumnConfig{Email: "Email", Name: "Name", Assignment: "Assignment", Date: "Date"}
	raw := testkit.NewExportWithColumns(cols, ",").
		Row("a@x.com", "Alice", "HW1", "01/15/2024").
		Build()

	req := defaultRequest(raw)
	req.Columns = cols

	res, err := NewProcessService(nil).Process(req)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "HW1", res.Records[0].Assignment)
}

func TestProcess_EmptyInput(t *testing.T) {
	svc := NewProcessService(nil)
	_, err := svc.Process(defaultRequest(""))

	// No header at all means the schema cannot be resolved
	require.Error(t, err)
	assert.True(t, core.IsSchemaError(err))
}
