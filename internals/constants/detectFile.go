package constants

import (
	"path/filepath"
	"strings"
)

const (
	SheetUnknown = iota
	SheetXLSX
	SheetCSV
)

func DetectSheetTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".xlsx", ".xlsm":
		return SheetXLSX
	case ".csv":
		return SheetCSV
	default:
		return SheetUnknown
	}
}
