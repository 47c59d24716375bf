package canon

import "strings"

// Line is one raw extracted line item for a single implicit period:
// a human-written account label and its numeric value.
type Line struct {
	Account string  `json:"account"`
	Value   float64 `json:"value"`
}

// NormalizeLines converts raw lines into a partial Canon for one period.
// Labels are lower-cased and trimmed, then resolved through the alias
// table; unrecognized labels are silently dropped. When the same account
// appears more than once the last occurrence wins.
//
// Two derived fallbacks apply after resolution, in order:
//  1. gross_profit = revenue - cogs, when gross_profit is absent and
//     both operands are present
//  2. total_debt = short_term_debt, when total_debt is absent and
//     short_term_debt is present and non-zero
func NormalizeLines(rows []Line) Canon {
	return NormalizeLinesWith(rows, nil)
}

// NormalizeLinesWith is NormalizeLines with extra caller-supplied alias
// overrides consulted before the built-in table. Overrides let a deal
// carry company-specific label spellings without touching the static map.
func NormalizeLinesWith(rows []Line, overrides map[string]Account) Canon {
	out := Canon{}
	for _, row := range rows {
		label := strings.ToLower(strings.TrimSpace(row.Account))
		acct, ok := lookup(label, overrides)
		if !ok {
			continue
		}
		out[acct] = row.Value
	}
	applyDerived(out)
	return out
}

func lookup(label string, overrides map[string]Account) (Account, bool) {
	if overrides != nil {
		if a, ok := overrides[label]; ok && Vocabulary[a] {
			return a, true
		}
	}
	return Resolve(label)
}

func applyDerived(c Canon) {
	if !c.Has(GrossProfit) && c.Has(Revenue) && c.Has(COGS) {
		c[GrossProfit] = c[Revenue] - c[COGS]
	}
	if !c.Has(TotalDebt) {
		if std, ok := c[ShortTermDebt]; ok && std != 0 {
			c[TotalDebt] = std
		}
	}
}
