// Package calc provides the deterministic ratio registry and metrics
// aggregator that turn canonical per-period account data into a flat
// metric map. Every computation is pure; missing inputs and zero
// denominators propagate as nil values, never as panics or NaNs.
package calc

import (
	"deal_diligence/pkg/core/canon"
	"deal_diligence/pkg/core/period"
)

// Context carries everything a ratio computation may consult: the
// period keys (ascending string order), the inferred periodicity and
// the canonical data per period.
type Context struct {
	Periods     []string
	Periodicity period.Periodicity
	Canon       map[string]canon.Canon
}

// NewContext builds a Context from canonical-by-period data, sorting
// the period keys and inferring periodicity from them.
func NewContext(byPeriod map[string]canon.Canon) *Context {
	keys := make([]string, 0, len(byPeriod))
	for k := range byPeriod {
		keys = append(keys, k)
	}
	keys = period.SortKeys(keys)
	return &Context{
		Periods:     keys,
		Periodicity: period.Detect(keys),
		Canon:       byPeriod,
	}
}

// Ratio is one registry entry. Exactly two shapes implement it:
// PerPeriodRatio producing one value per period, and DealRatio
// producing a single scalar for the whole deal.
type Ratio interface {
	ID() string
	Label() string
	// Requires lists the canonical inputs the formula reads. It is
	// documentation for consumers; it is not enforced at runtime.
	Requires() []canon.Account
}

// PerPeriodRatio computes one nullable value per period key.
type PerPeriodRatio struct {
	RatioID string
	Name    string
	Inputs  []canon.Account
	Fn      func(ctx *Context) map[string]*float64
}

func (r PerPeriodRatio) ID() string                { return r.RatioID }
func (r PerPeriodRatio) Label() string             { return r.Name }
func (r PerPeriodRatio) Requires() []canon.Account { return r.Inputs }

// Compute evaluates the ratio for every period in ctx.
func (r PerPeriodRatio) Compute(ctx *Context) map[string]*float64 { return r.Fn(ctx) }

// DealRatio computes a single nullable scalar for the whole deal.
type DealRatio struct {
	RatioID string
	Name    string
	Inputs  []canon.Account
	Fn      func(ctx *Context) *float64
}

func (r DealRatio) ID() string                { return r.RatioID }
func (r DealRatio) Label() string             { return r.Name }
func (r DealRatio) Requires() []canon.Account { return r.Inputs }

// Compute evaluates the deal-level ratio.
func (r DealRatio) Compute(ctx *Context) *float64 { return r.Fn(ctx) }
