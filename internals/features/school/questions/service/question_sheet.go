package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"schoolquiz_backend/internals/constants"
	"schoolquiz_backend/internals/features/school/questions/dto"
)

var (
	ErrUnsupportedSheet = errors.New("unsupported sheet type, use .xlsx or .csv")
	ErrEmptySheet       = errors.New("sheet has no rows")
	ErrMissingColumn    = errors.New("sheet header must include Question and Answer")
)

var optionColumns = []string{"optiona", "optionb", "optionc", "optiond"}

// ReadQuestionSheet loads the raw cells of a question sheet. For .xlsx the
// sheet named Sheet1 is used when present, otherwise the first sheet.
func ReadQuestionSheet(filename string) ([][]string, error) {
	switch constants.DetectSheetTypeFromExt(filename) {
	case constants.SheetXLSX:
		f, err := excelize.OpenFile(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		sheet := f.GetSheetName(0)
		if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx >= 0 {
			sheet = "Sheet1"
		}
		return f.GetRows(sheet)
	case constants.SheetCSV:
		fh, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		return readCSV(fh)
	default:
		return nil, ErrUnsupportedSheet
	}
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

// ParseSheetRows maps cells to upload rows using the header line
// (Score, Timeout, Question, Answer, OptionA..OptionD; any order, any case).
// Blank lines are skipped. A row with a bad number keeps its text and carries Err.
func ParseSheetRows(cells [][]string) ([]dto.UploadRow, error) {
	if len(cells) == 0 {
		return nil, ErrEmptySheet
	}

	col := map[string]int{}
	for i, h := range cells[0] {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := col["question"]; !ok {
		return nil, ErrMissingColumn
	}
	if _, ok := col["answer"]; !ok {
		return nil, ErrMissingColumn
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	number := func(row []string, name string) (int, error) {
		raw := cell(row, name)
		if raw == "" {
			return 0, nil
		}
		if n, err := strconv.Atoi(raw); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("%s %q is not a number", name, raw)
		}
		return int(f), nil
	}

	out := make([]dto.UploadRow, 0, len(cells)-1)
	for i, row := range cells[1:] {
		if blankRow(row) {
			continue
		}
		r := dto.UploadRow{
			Line:     i + 2,
			Question: cell(row, "question"),
			Answer:   cell(row, "answer"),
		}
		var err error
		if r.Score, err = number(row, "score"); err != nil {
			r.Err = err
		}
		if r.Timeout, err = number(row, "timeout"); err != nil && r.Err == nil {
			r.Err = err
		}
		if r.Err == nil && (r.Question == "" || r.Answer == "") {
			r.Err = errors.New("question and answer are required")
		}
		for _, name := range optionColumns {
			if v := cell(row, name); v != "" {
				r.Options = append(r.Options, v)
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
