package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "extproc/internal/errors"
)

func TestReadFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")
	content := "Email\tName\na@x.com\tAlice\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := NewReader(nil)
	got, err := r.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestReadFile_NotFound(t *testing.T) {
	r := NewReader(nil)
	_, err := r.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeIOError, apperrors.GetCode(err))
}

func TestReadFile_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"Email", "Name"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"a@x.com", "Alice, the TA"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	r := NewReader(nil)
	got, err := r.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Email\tName", lines[0])
	// Cells join with tabs, so commas inside answers stay inside one cell
	assert.Equal(t, "a@x.com\tAlice, the TA", lines[1])
}

func TestReadStream(t *testing.T) {
	r := NewReader(nil)
	got, err := r.ReadStream(strings.NewReader("pasted\texport\n"))
	require.NoError(t, err)
	assert.Equal(t, "pasted\texport\n", got)
}
