package calc

import (
	"math"

	"deal_diligence/pkg/core/canon"
	"deal_diligence/pkg/core/period"
)

// =============================================================================
// RATIO REGISTRY
// Static, read-only. The aggregator iterates it without knowing any
// individual formula; extending the engine means appending here.
// =============================================================================

var registry = []Ratio{
	PerPeriodRatio{
		RatioID: "gross_margin", Name: "Gross Margin",
		Inputs: []canon.Account{canon.GrossProfit, canon.Revenue},
		Fn: perPeriod(func(c canon.Canon, _ *Context) *float64 {
			return safeDiv(c.Get(canon.GrossProfit), c.Get(canon.Revenue))
		}),
	},
	PerPeriodRatio{
		RatioID: "net_margin", Name: "Net Margin",
		Inputs: []canon.Account{canon.NetIncome, canon.Revenue},
		Fn: perPeriod(func(c canon.Canon, _ *Context) *float64 {
			return safeDiv(c.Get(canon.NetIncome), c.Get(canon.Revenue))
		}),
	},
	PerPeriodRatio{
		RatioID: "current_ratio", Name: "Current Ratio",
		Inputs: []canon.Account{canon.CurrentAssets, canon.CurrentLiabilities},
		Fn: perPeriod(func(c canon.Canon, _ *Context) *float64 {
			return safeDiv(c.Get(canon.CurrentAssets), c.Get(canon.CurrentLiabilities))
		}),
	},
	PerPeriodRatio{
		RatioID: "debt_to_equity", Name: "Debt to Equity",
		Inputs: []canon.Account{canon.TotalDebt, canon.ShareholdersEquity},
		Fn: perPeriod(func(c canon.Canon, _ *Context) *float64 {
			return safeDiv(c.Get(canon.TotalDebt), c.Get(canon.ShareholdersEquity))
		}),
	},
	PerPeriodRatio{
		RatioID: "quick_ratio", Name: "Quick Ratio",
		Inputs: []canon.Account{canon.Cash, canon.MarketableSecurities, canon.AccountsReceivable, canon.CurrentLiabilities},
		Fn:     perPeriod(quickRatio),
	},
	PerPeriodRatio{
		RatioID: "ar_days", Name: "AR Days (DSO)",
		Inputs: []canon.Account{canon.AccountsReceivable, canon.Revenue},
		Fn: perPeriod(func(c canon.Canon, ctx *Context) *float64 {
			return arDays(c, ctx.Periodicity.Days())
		}),
	},
	PerPeriodRatio{
		RatioID: "ap_days", Name: "AP Days (DPO)",
		Inputs: []canon.Account{canon.AccountsPayable, canon.COGS},
		Fn: perPeriod(func(c canon.Canon, ctx *Context) *float64 {
			return apDays(c, ctx.Periodicity.Days())
		}),
	},
	PerPeriodRatio{
		RatioID: "dio_days", Name: "Inventory Days (DIO)",
		Inputs: []canon.Account{canon.Inventory, canon.COGS},
		Fn: perPeriod(func(c canon.Canon, ctx *Context) *float64 {
			return dioDays(c, ctx.Periodicity.Days())
		}),
	},
	PerPeriodRatio{
		RatioID: "ccc_days", Name: "Cash Conversion Cycle",
		Inputs: []canon.Account{canon.AccountsReceivable, canon.Inventory, canon.AccountsPayable, canon.Revenue, canon.COGS},
		Fn:     perPeriod(cccDays),
	},
	DealRatio{
		RatioID: "revenue_cagr_3y", Name: "Revenue CAGR (3y)",
		Inputs: []canon.Account{canon.Revenue},
		Fn:     revenueCAGR3Y,
	},
}

// Registry returns the static ratio table.
func Registry() []Ratio { return registry }

// =============================================================================
// FORMULAS
// =============================================================================

func quickRatio(c canon.Canon, _ *Context) *float64 {
	cash := c.Get(canon.Cash)
	ar := c.Get(canon.AccountsReceivable)
	cl := c.Get(canon.CurrentLiabilities)
	if cash == nil || ar == nil || cl == nil || *cl == 0 {
		return nil
	}
	// Marketable securities default to 0 when absent.
	ms := 0.0
	if v := c.Get(canon.MarketableSecurities); v != nil {
		ms = *v
	}
	v := (*cash + ms + *ar) / *cl
	return &v
}

func arDays(c canon.Canon, days float64) *float64 {
	return scale(safeDiv(c.Get(canon.AccountsReceivable), c.Get(canon.Revenue)), days)
}

func apDays(c canon.Canon, days float64) *float64 {
	return scale(safeDiv(c.Get(canon.AccountsPayable), c.Get(canon.COGS)), days)
}

func dioDays(c canon.Canon, days float64) *float64 {
	return scale(safeDiv(c.Get(canon.Inventory), c.Get(canon.COGS)), days)
}

// cccDays composes the three day ratios for one period. All-or-nothing:
// if any sub-ratio is nil for the period, the cycle is nil for it too.
func cccDays(c canon.Canon, ctx *Context) *float64 {
	days := ctx.Periodicity.Days()
	ar := arDays(c, days)
	dio := dioDays(c, days)
	ap := apDays(c, days)
	if ar == nil || dio == nil || ap == nil {
		return nil
	}
	v := *ar + *dio - *ap
	return &v
}

// revenueCAGR3Y is deal-level: the compound annual growth rate between
// the latest period and the one three positions earlier. Bare-year keys
// are preferred when at least four exist; otherwise all periods are used
// as-is. Fewer than four usable periods, a missing revenue value or a
// non-positive base all yield nil.
func revenueCAGR3Y(ctx *Context) *float64 {
	var annual []string
	for _, k := range ctx.Periods {
		if period.IsAnnual(k) {
			annual = append(annual, k)
		}
	}
	usable := ctx.Periods
	if len(annual) >= 4 {
		usable = annual
	}
	sorted := period.SortKeys(usable)
	if len(sorted) < 4 {
		return nil
	}

	last := ctx.Canon[sorted[len(sorted)-1]].Get(canon.Revenue)
	earlier := ctx.Canon[sorted[len(sorted)-4]].Get(canon.Revenue)
	if last == nil || earlier == nil || *earlier == 0 {
		return nil
	}
	growth := *last / *earlier
	if growth <= 0 {
		// A negative base or sign flip has no real cube root; report
		// no value rather than NaN.
		return nil
	}
	v := math.Pow(growth, 1.0/3.0) - 1
	return &v
}

// =============================================================================
// HELPERS
// =============================================================================

// safeDiv divides two nullable operands, returning nil when either is
// missing or the denominator is exactly zero.
func safeDiv(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := *num / *den
	return &v
}

func scale(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	s := *v * factor
	return &s
}

// perPeriod lifts a single-period formula over every period in the context.
func perPeriod(f func(c canon.Canon, ctx *Context) *float64) func(*Context) map[string]*float64 {
	return func(ctx *Context) map[string]*float64 {
		out := make(map[string]*float64, len(ctx.Periods))
		for _, p := range ctx.Periods {
			out[p] = f(ctx.Canon[p], ctx)
		}
		return out
	}
}
