package canon

import "testing"

func TestNormalizeLinesAliasesAndDerivedGrossProfit(t *testing.T) {
	got := NormalizeLines([]Line{
		{Account: "Sales", Value: 1000},
		{Account: "Cost of Goods Sold", Value: 600},
	})

	if v := got[Revenue]; v != 1000 {
		t.Errorf("Expected revenue 1000, got %f", v)
	}
	if v := got[COGS]; v != 600 {
		t.Errorf("Expected cogs 600, got %f", v)
	}
	// Derived fallback: gross_profit = revenue - cogs
	if v, ok := got[GrossProfit]; !ok || v != 400 {
		t.Errorf("Expected derived gross_profit 400, got %f (present=%v)", v, ok)
	}
}

func TestNormalizeLinesDoesNotOverrideSuppliedGrossProfit(t *testing.T) {
	got := NormalizeLines([]Line{
		{Account: "Revenue", Value: 1000},
		{Account: "COGS", Value: 600},
		{Account: "Gross Profit", Value: 350},
	})
	if v := got[GrossProfit]; v != 350 {
		t.Errorf("Supplied gross_profit should win, got %f", v)
	}
}

func TestNormalizeLinesCaseAndWhitespace(t *testing.T) {
	got := NormalizeLines([]Line{
		{Account: "  NET Income  ", Value: 42},
	})
	if v, ok := got[NetIncome]; !ok || v != 42 {
		t.Errorf("Expected net_income 42 after trimming/lowering, got %f (present=%v)", v, ok)
	}
}

func TestNormalizeLinesDropsUnknownLabels(t *testing.T) {
	got := NormalizeLines([]Line{
		{Account: "Mystery Adjustment", Value: 999},
		{Account: "Revenue", Value: 10},
	})
	if len(got) != 1 {
		t.Errorf("Expected only revenue to survive, got %v", got)
	}
}

func TestNormalizeLinesDuplicateLastWins(t *testing.T) {
	got := NormalizeLines([]Line{
		{Account: "Revenue", Value: 100},
		{Account: "Total Revenue", Value: 250},
	})
	if v := got[Revenue]; v != 250 {
		t.Errorf("Expected last duplicate to win (250), got %f", v)
	}
}

func TestTotalDebtFallback(t *testing.T) {
	got := NormalizeLines([]Line{
		{Account: "Short-Term Debt", Value: 75},
	})
	if v, ok := got[TotalDebt]; !ok || v != 75 {
		t.Errorf("Expected total_debt fallback 75, got %f (present=%v)", v, ok)
	}

	// Zero short-term debt must not materialize a zero total_debt.
	got = NormalizeLines([]Line{
		{Account: "Short-Term Debt", Value: 0},
	})
	if _, ok := got[TotalDebt]; ok {
		t.Errorf("Expected total_debt absent when short_term_debt is zero, got %v", got)
	}

	// Supplied total_debt wins over the fallback.
	got = NormalizeLines([]Line{
		{Account: "Short-Term Debt", Value: 75},
		{Account: "Total Debt", Value: 300},
	})
	if v := got[TotalDebt]; v != 300 {
		t.Errorf("Expected supplied total_debt 300, got %f", v)
	}
}

func TestMergeOverlaysPerKey(t *testing.T) {
	dst := Canon{Revenue: 100, COGS: 60}
	Merge(dst, Canon{Revenue: 120, NetIncome: 10})

	if dst[Revenue] != 120 {
		t.Errorf("Expected merged revenue 120, got %f", dst[Revenue])
	}
	if dst[COGS] != 60 {
		t.Errorf("Expected cogs untouched at 60, got %f", dst[COGS])
	}
	if dst[NetIncome] != 10 {
		t.Errorf("Expected net_income 10 added, got %f", dst[NetIncome])
	}
}

func TestParseAliasOverrides(t *testing.T) {
	doc := []byte(`{
		# German P&L labels for this deal
		umsatzerloese: revenue
		wareneinsatz: cogs
	}`)

	overrides, err := ParseAliasOverrides(doc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := NormalizeLinesWith([]Line{
		{Account: "Umsatzerloese", Value: 500},
		{Account: "Wareneinsatz", Value: 200},
	}, overrides)

	if got[Revenue] != 500 || got[COGS] != 200 {
		t.Errorf("Expected overrides to resolve, got %v", got)
	}
	if got[GrossProfit] != 300 {
		t.Errorf("Expected derived gross_profit 300 through overrides, got %f", got[GrossProfit])
	}
}

func TestParseAliasOverridesRejectsUnknownAccount(t *testing.T) {
	_, err := ParseAliasOverrides([]byte(`{ something: not_an_account }`))
	if err == nil {
		t.Error("Expected error for override mapping to unknown account")
	}
}
