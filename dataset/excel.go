package dataset

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var ErrMissingSheet = errors.New("sheet not found")

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingSheet, sheet)
	}
	// raw values so numeric cells are not affected by display formats
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}
