package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX decodes rows from the first sheet of an XLSX workbook. The
// sheet must carry the same header layout ReadCSV expects: period,
// account, value and optionally statement. Formula cells arrive through
// their cached values, the same as a CSV export would show.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	cols := columnIndex(records[0])
	if cols.period < 0 || cols.account < 0 || cols.value < 0 {
		return nil, fmt.Errorf("sheet %q header must contain period, account and value columns", sheets[0])
	}

	var rows []Row
	for _, rec := range records[1:] {
		row, ok := rowFromRecord(rec, cols)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
