package calc

import "deal_diligence/pkg/core/period"

// ComputeAllMetrics runs every registry entry against ctx and flattens
// the results into one metric map keyed by ratio id. Per-period ratios
// contribute the value of the latest period; deal-level ratios their
// scalar. "Latest" is the lexicographically last period key, which
// matches chronological order only within a single key granularity —
// callers must not mix granularities within one computation.
//
// Missing data never aborts the run; it surfaces as nil entries.
func ComputeAllMetrics(ctx *Context) map[string]*float64 {
	out := make(map[string]*float64, len(registry))
	latest := period.Latest(ctx.Periods)

	for _, r := range registry {
		switch ratio := r.(type) {
		case PerPeriodRatio:
			byPeriod := ratio.Compute(ctx)
			out[ratio.ID()] = byPeriod[latest]
		case DealRatio:
			out[ratio.ID()] = ratio.Compute(ctx)
		}
	}
	return out
}

// ComputeMetricSeries runs one per-period registry entry by id and
// returns its full per-period series. ok is false for unknown ids and
// for deal-level ratios.
func ComputeMetricSeries(ctx *Context, id string) (map[string]*float64, bool) {
	for _, r := range registry {
		ratio, isPerPeriod := r.(PerPeriodRatio)
		if !isPerPeriod || ratio.ID() != id {
			continue
		}
		return ratio.Compute(ctx), true
	}
	return nil, false
}
