package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeXLSX(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "questions.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadQuestionSheetCSV(t *testing.T) {
	path := writeFile(t, "q.csv", "\ufeffQuestion,Answer,Score\n2+2?,4,2\n")

	cells, err := ReadQuestionSheet(path)
	require.NoError(t, err)
	require.Len(t, cells, 2)

	rows, err := ParseSheetRows(cells)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2+2?", rows[0].Question)
	assert.Equal(t, 2, rows[0].Score)
}

func TestReadQuestionSheetXLSX(t *testing.T) {
	path := writeXLSX(t, "Sheet1", [][]any{
		{"Score", "Timeout", "Question", "Answer", "OptionA", "OptionB"},
		{3, 20, "Capital of France?", "Paris", "Paris", "Rome"},
	})

	cells, err := ReadQuestionSheet(path)
	require.NoError(t, err)

	rows, err := ParseSheetRows(cells)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Score)
	assert.Equal(t, 20, rows[0].Timeout)
	assert.Equal(t, []string{"Paris", "Rome"}, rows[0].Options)
	assert.NoError(t, rows[0].Err)
}

func TestReadQuestionSheetXLSXFirstSheetFallback(t *testing.T) {
	path := writeXLSX(t, "Questions", [][]any{
		{"Question", "Answer"},
		{"1+1?", "2"},
	})

	cells, err := ReadQuestionSheet(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1+1?", "2"}, cells[1])
}

func TestReadQuestionSheetUnsupported(t *testing.T) {
	path := writeFile(t, "q.txt", "Question,Answer\n")
	_, err := ReadQuestionSheet(path)
	assert.ErrorIs(t, err, ErrUnsupportedSheet)
}

func TestParseSheetRows(t *testing.T) {
	cells := [][]string{
		{"answer", "QUESTION", "score", "timeout", "optionA", "optionB", "optionC", "optionD"},
		{"4", "2+2?", "1", "30", "3", "4", "", "5"},
		{"", "", "", ""},
		{"x", "bad score", "abc"},
		{"", "no answer"},
		{"6", "3+3?", "2.0"},
	}

	rows, err := ParseSheetRows(cells)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, []string{"3", "4", "5"}, rows[0].Options)
	assert.Equal(t, 30, rows[0].Timeout)

	assert.Equal(t, 4, rows[1].Line)
	assert.Error(t, rows[1].Err)
	assert.Equal(t, "bad score", rows[1].Question)

	assert.Error(t, rows[2].Err)

	assert.NoError(t, rows[3].Err)
	assert.Equal(t, 2, rows[3].Score)
}

func TestParseSheetRowsErrors(t *testing.T) {
	_, err := ParseSheetRows(nil)
	assert.ErrorIs(t, err, ErrEmptySheet)

	_, err = ParseSheetRows([][]string{{"Question", "Score"}})
	assert.ErrorIs(t, err, ErrMissingColumn)
}
