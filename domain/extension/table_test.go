package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable_TabDelimited(t *testing.T) {
	raw := "Email\tName\tAssignment\tDate\n" +
		"a@x.com\tAlice\tHW1\t01/15/2024\n" +
		"b@x.com\tBob\tHW2\t01/16/2024\n"

	table := ParseTable(raw, DelimiterAuto)

	require.Equal(t, []string{"Email", "Name", "Assignment", "Date"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"a@x.com", "Alice", "HW1", "01/15/2024"}, table.Rows[0])
}

func TestParseTable_CommaFallback(t *testing.T) {
	raw := "Email,Name\na@x.com,Alice\n"

	table := ParseTable(raw, DelimiterAuto)

	assert.Equal(t, []string{"Email", "Name"}, table.Header)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"a@x.com", "Alice"}, table.Rows[0])
}

func TestParseTable_TabWinsOverComma(t *testing.T) {
	// Header contains commas inside a question but is tab-delimited
	raw := "Email\tWhich assignment, if any?\na@x.com\tHW1\n"

	table := ParseTable(raw, DelimiterAuto)

	assert.Equal(t, []string{"Email", "Which assignment, if any?"}, table.Header)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"a@x.com", "HW1"}, table.Rows[0])
}

func TestParseTable_ExplicitDelimiterSkipsDetection(t *testing.T) {
	raw := "a,b\tc\n1,2\t3\n"

	table := ParseTable(raw, DelimiterComma)

	assert.Equal(t, []string{"a", "b\tc"}, table.Header)
	assert.Equal(t, []string{"1", "2\t3"}, table.Rows[0])
}

func TestParseTable_StripsByteOrderMark(t *testing.T) {
	raw := "\uFEFFEmail\tName\na@x.com\tAlice\n"

	table := ParseTable(raw, DelimiterAuto)

	assert.Equal(t, "Email", table.Header[0], "BOM must not become part of the first column name")
}

func TestParseTable_DegenerateInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"only newlines", "\n\n\n"},
		{"only whitespace", "   \n\t\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := ParseTable(tc.raw, DelimiterAuto)
			assert.Empty(t, table.Header)
			assert.Empty(t, table.Rows)
		})
	}
}

func TestParseTable_HeaderOnly(t *testing.T) {
	table := ParseTable("Email\tName\n", DelimiterAuto)

	assert.Equal(t, []string{"Email", "Name"}, table.Header)
	assert.Empty(t, table.Rows, "header with no data yields zero rows, not an error")
}

func TestParseTable_BlankLinesDropped(t *testing.T) {
	raw := "Email\tName\n\na@x.com\tAlice\n   \nb@x.com\tBob\n\n"

	table := ParseTable(raw, DelimiterAuto)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "a@x.com", table.Rows[0][0])
	assert.Equal(t, "b@x.com", table.Rows[1][0])
}

func TestParseTable_WindowsLineEndings(t *testing.T) {
	raw := "Email\tName\r\na@x.com\tAlice\r\n"

	table := ParseTable(raw, DelimiterAuto)

	assert.Equal(t, []string{"Email", "Name"}, table.Header)
	assert.Equal(t, []string{"a@x.com", "Alice"}, table.Rows[0])
}
