package inventory

import (
	"testing"

	"deal_diligence/pkg/core/canon"
	"deal_diligence/pkg/core/period"
)

func TestBuildPresentAndMissing(t *testing.T) {
	inv := Build(Input{
		DealID: "deal-1",
		CanonByType: map[StatementType]map[string]canon.Canon{
			IncomeStatement: {
				"2023": {canon.Revenue: 100},
				"2024": {canon.Revenue: 120},
			},
		},
	})

	if len(inv.Expected) != 3 {
		t.Errorf("Expected fixed 3-element expected list, got %v", inv.Expected)
	}
	if len(inv.Present) != 1 || inv.Present[0] != IncomeStatement {
		t.Errorf("Expected only income_statement present, got %v", inv.Present)
	}
	if len(inv.Missing) != 2 || inv.Missing[0] != BalanceSheet || inv.Missing[1] != CashFlow {
		t.Errorf("Expected balance_sheet and cash_flow missing, got %v", inv.Missing)
	}
}

func TestBuildCoverage(t *testing.T) {
	inv := Build(Input{
		DealID: "deal-1",
		CanonByType: map[StatementType]map[string]canon.Canon{
			IncomeStatement: {
				"2021": {},
				"2024": {},
			},
			BalanceSheet: {
				"2024-Q1": {},
				"2024-Q2": {},
				"2024-Q3": {},
			},
		},
		PeriodicityByType: map[StatementType]period.Periodicity{
			IncomeStatement: period.Annual,
			BalanceSheet:    period.Quarterly,
		},
	})

	is := inv.Coverage[IncomeStatement]
	if is.Periods != 2 {
		t.Errorf("Expected 2 income statement periods, got %d", is.Periods)
	}
	// Inclusive span over bare years: 2024 - 2021 + 1.
	if is.Years != 4 {
		t.Errorf("Expected year span 4, got %d", is.Years)
	}
	if is.Periodicity != period.Annual {
		t.Errorf("Expected caller-asserted annual periodicity, got %s", is.Periodicity)
	}

	bs := inv.Coverage[BalanceSheet]
	if bs.Periods != 3 {
		t.Errorf("Expected 3 balance sheet periods, got %d", bs.Periods)
	}
	if bs.Years != 0 {
		t.Errorf("Expected no year span without bare-year keys, got %d", bs.Years)
	}
}

func TestBuildEmptyMapStillCountsAsPresent(t *testing.T) {
	inv := Build(Input{
		DealID: "deal-1",
		CanonByType: map[StatementType]map[string]canon.Canon{
			CashFlow: {},
		},
	})
	if len(inv.Present) != 1 || inv.Present[0] != CashFlow {
		t.Errorf("Supplied empty map should count as present, got %v", inv.Present)
	}
	if inv.Coverage[CashFlow].Periods != 0 {
		t.Errorf("Expected zero period coverage, got %d", inv.Coverage[CashFlow].Periods)
	}
}

func TestBuildNothingSupplied(t *testing.T) {
	inv := Build(Input{DealID: "deal-1"})
	if len(inv.Missing) != 3 {
		t.Errorf("Expected all 3 kinds missing, got %v", inv.Missing)
	}
}
