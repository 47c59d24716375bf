// Package inventory reports which of the expected financial statements a
// deal supplied and how much period history each one covers.
package inventory

import (
	"deal_diligence/pkg/core/canon"
	"deal_diligence/pkg/core/period"
)

// StatementType identifies one of the expected statement kinds.
type StatementType string

const (
	IncomeStatement StatementType = "income_statement"
	BalanceSheet    StatementType = "balance_sheet"
	CashFlow        StatementType = "cash_flow"
)

// Expected is the fixed list of statement kinds every deal should carry.
var Expected = []StatementType{IncomeStatement, BalanceSheet, CashFlow}

// Coverage describes the period history one supplied statement spans.
type Coverage struct {
	Periods     int                `json:"periods"`
	Years       int                `json:"years,omitempty"`
	Periodicity period.Periodicity `json:"periodicity,omitempty"`
}

// DocumentInventory is the per-deal presence/missing report.
type DocumentInventory struct {
	DealID   string                     `json:"deal_id"`
	Expected []StatementType            `json:"expected"`
	Present  []StatementType            `json:"present"`
	Missing  []StatementType            `json:"missing"`
	Coverage map[StatementType]Coverage `json:"coverage"`
}

// Input carries per-statement-type canonical maps, already segmented by
// the caller. Which statement a row belongs to is the upstream parser's
// call; no inference happens here. PeriodicityByType is likewise the
// caller's assertion and is reported back verbatim.
type Input struct {
	DealID            string
	CanonByType       map[StatementType]map[string]canon.Canon
	PeriodicityByType map[StatementType]period.Periodicity
}

// Build produces the inventory. A statement counts as present when any
// canonical map, even an empty one, was supplied for it. For present
// kinds whose period keys include bare years, Years is the inclusive
// span from first to last year.
func Build(in Input) DocumentInventory {
	inv := DocumentInventory{
		DealID:   in.DealID,
		Expected: Expected,
		Coverage: map[StatementType]Coverage{},
	}

	for _, kind := range Expected {
		byPeriod, ok := in.CanonByType[kind]
		if !ok || byPeriod == nil {
			inv.Missing = append(inv.Missing, kind)
			continue
		}
		inv.Present = append(inv.Present, kind)

		cov := Coverage{Periods: len(byPeriod)}
		if p, ok := in.PeriodicityByType[kind]; ok {
			cov.Periodicity = p
		}
		cov.Years = yearSpan(byPeriod)
		inv.Coverage[kind] = cov
	}
	return inv
}

// yearSpan returns last_year - first_year + 1 over bare-year period
// keys, or 0 when none exist.
func yearSpan(byPeriod map[string]canon.Canon) int {
	first, last := 0, 0
	for key := range byPeriod {
		if !period.IsAnnual(key) {
			continue
		}
		y, ok := period.Year(key)
		if !ok {
			continue
		}
		if first == 0 || y < first {
			first = y
		}
		if y > last {
			last = y
		}
	}
	if first == 0 {
		return 0
	}
	return last - first + 1
}
