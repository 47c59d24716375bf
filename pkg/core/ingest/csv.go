package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV decodes rows from CSV with a header line. Recognized columns
// (case-insensitive): period, account, value, statement. Extra columns
// are ignored. Rows with an unparsable value are skipped rather than
// failing the whole file; upstream exports routinely contain subtotal
// and blank lines.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	cols := columnIndex(records[0])
	if cols.period < 0 || cols.account < 0 || cols.value < 0 {
		return nil, fmt.Errorf("csv header must contain period, account and value columns")
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

type columns struct {
	period, account, value, statement int
}

func columnIndex(header []string) columns {
	cols := columns{period: -1, account: -1, value: -1, statement: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "period":
			cols.period = i
		case "account", "label", "line_item", "line item":
			cols.account = i
		case "value", "amount":
			cols.value = i
		case "statement", "statement_type", "type":
			cols.statement = i
		}
	}
	return cols
}

func rowFromRecord(rec []string, cols columns) (Row, bool) {
	at := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	period := strings.TrimSpace(at(cols.period))
	account := strings.TrimSpace(at(cols.account))
	if period == "" || account == "" {
		return Row{}, false
	}
	value, err := ParseAmount(at(cols.value))
	if err != nil {
		return Row{}, false
	}

	return Row{
		Period:    period,
		Account:   account,
		Value:     value,
		Statement: strings.TrimSpace(at(cols.statement)),
	}, true
}
