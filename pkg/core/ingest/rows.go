// Package ingest decodes already-extracted financial line items from
// CSV, XLSX and JSON sources into raw rows and groups them into
// canonical-by-period maps for the metrics engine. It does not parse
// documents; upstream extraction (spreadsheet export, LLM PDF
// extraction) is expected to have produced tabular rows already.
package ingest

import (
	"strings"

	"deal_diligence/pkg/core/canon"
	"deal_diligence/pkg/core/inventory"
)

// Row is one extracted line item: a period key, a raw account label and
// its value. Statement is the upstream parser's assertion of which
// statement the row came from; it may be empty.
type Row struct {
	Period    string  `json:"period"`
	Account   string  `json:"account"`
	Value     float64 `json:"value"`
	Statement string  `json:"statement,omitempty"`
}

// GroupByPeriod normalizes rows into one partial Canon per period key.
// Rows for the same period are normalized as one batch, so duplicate
// labels follow last-occurrence-wins. Callers combining several sources
// overlay their maps per key with canon.Merge rather than replacing a
// period wholly.
func GroupByPeriod(rows []Row) map[string]canon.Canon {
	return GroupByPeriodWith(rows, nil)
}

// GroupByPeriodWith is GroupByPeriod with alias overrides.
func GroupByPeriodWith(rows []Row, overrides map[string]canon.Account) map[string]canon.Canon {
	batches := map[string][]canon.Line{}
	var order []string
	for _, r := range rows {
		p := strings.TrimSpace(r.Period)
		if p == "" {
			continue
		}
		if _, seen := batches[p]; !seen {
			order = append(order, p)
		}
		batches[p] = append(batches[p], canon.Line{Account: r.Account, Value: r.Value})
	}

	out := map[string]canon.Canon{}
	for _, p := range order {
		out[p] = canon.NormalizeLinesWith(batches[p], overrides)
	}
	return out
}

// GroupByStatement segments rows by their asserted statement kind and
// normalizes each segment per period. Rows with an unrecognized or
// empty statement tag are dropped from the segmentation (they still
// count for GroupByPeriod, which ignores the tag).
func GroupByStatement(rows []Row) map[inventory.StatementType]map[string]canon.Canon {
	byType := map[inventory.StatementType][]Row{}
	for _, r := range rows {
		kind, ok := statementType(r.Statement)
		if !ok {
			continue
		}
		byType[kind] = append(byType[kind], r)
	}

	out := map[inventory.StatementType]map[string]canon.Canon{}
	for kind, segment := range byType {
		out[kind] = GroupByPeriod(segment)
	}
	return out
}

func statementType(tag string) (inventory.StatementType, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "income_statement", "income statement", "is", "p&l", "pnl", "profit and loss":
		return inventory.IncomeStatement, true
	case "balance_sheet", "balance sheet", "bs":
		return inventory.BalanceSheet, true
	case "cash_flow", "cash flow", "cash_flow_statement", "cash flow statement", "cf":
		return inventory.CashFlow, true
	}
	return "", false
}
