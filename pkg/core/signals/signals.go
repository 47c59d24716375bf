// Package signals classifies a fixed set of due-diligence questions into
// pass/caution/fail/na bands from canonical per-period data and the
// computed metric map.
package signals

import (
	"fmt"
	"math"

	"deal_diligence/pkg/core/calc"
	"deal_diligence/pkg/core/canon"
	"deal_diligence/pkg/core/period"
)

// Status is the band a diligence question lands in.
type Status string

const (
	Pass    Status = "pass"
	Caution Status = "caution"
	Fail    Status = "fail"
	NA      Status = "na"
)

// Signal is the evaluated answer to one diligence question.
type Signal struct {
	Status Status   `json:"status"`
	Value  *float64 `json:"value,omitempty"`
	Detail string   `json:"detail,omitempty"`
}

// DDSignals collects all evaluated signals keyed by signal name.
type DDSignals map[string]Signal

// Input carries everything the evaluator consumes. Metrics is optional:
// when nil it is computed from Canon via the ratio registry.
// ConcentrationRatio (0..1, share of revenue from the largest customer
// or product) cannot be derived from statement data and must come from
// the caller; nil yields an na concentration signal.
type Input struct {
	DealID             string
	Periods            []string
	Canon              map[string]canon.Canon
	ConcentrationRatio *float64
	Metrics            map[string]*float64
}

// Banding thresholds. Boundaries are inclusive toward the better band.
const (
	dscrPass    = 2.0
	dscrCaution = 1.25

	concentrationPass    = 0.20
	concentrationCaution = 0.30

	cccPass    = 60.0
	cccCaution = 90.0

	currentRatioPass    = 1.5
	currentRatioCaution = 1.2

	seasonalityPass    = 0.15
	seasonalityCaution = 0.25

	accrualDeltaPass    = 0.10
	accrualDeltaCaution = 0.20
)

// Compute evaluates every diligence signal. Signals whose inputs are
// absent report na; nothing here panics on missing data.
func Compute(in Input) DDSignals {
	ctx := &calc.Context{
		Periods:     period.SortKeys(in.Periods),
		Periodicity: period.Detect(in.Periods),
		Canon:       in.Canon,
	}
	metrics := in.Metrics
	if metrics == nil {
		metrics = calc.ComputeAllMetrics(ctx)
	}

	out := DDSignals{}
	out["dscr_proxy"] = dscrProxy(ctx)
	out["concentration"] = concentration(in.ConcentrationRatio)
	out["working_capital_ccc"] = lowerBetter(metrics["ccc_days"], cccPass, cccCaution, "%.0f day cash conversion cycle")
	out["current_ratio"] = higherBetter(metrics["current_ratio"], currentRatioPass, currentRatioCaution, "current ratio %.2f")
	out["seasonality"] = seasonality(ctx)
	out["accrual_vs_cash_delta"] = accrualVsCashDelta(ctx)
	out["data_sufficiency"] = dataSufficiency(ctx)
	return out
}

// dscrProxy approximates debt service coverage as latest-period EBITDA
// over latest-period interest expense. na when interest expense is
// missing or zero.
func dscrProxy(ctx *calc.Context) Signal {
	latest := ctx.Canon[period.Latest(ctx.Periods)]
	ebitda := latest.Get(canon.EBITDA)
	interest := latest.Get(canon.InterestExpense)
	if ebitda == nil || interest == nil || *interest == 0 {
		return Signal{Status: NA, Detail: "ebitda or interest expense unavailable"}
	}
	v := *ebitda / *interest
	return bandHigher(v, dscrPass, dscrCaution, fmt.Sprintf("EBITDA covers interest %.2fx", v))
}

func concentration(ratio *float64) Signal {
	if ratio == nil {
		return Signal{Status: NA, Detail: "no concentration data supplied"}
	}
	v := *ratio
	return bandLower(v, concentrationPass, concentrationCaution, fmt.Sprintf("top customer at %.0f%% of revenue", v*100))
}

// seasonality measures revenue variability as the coefficient of
// variation (population stdev / mean) over quarterly revenue. Needs at
// least four quarterly periods with revenue; na otherwise or on a zero
// mean.
func seasonality(ctx *calc.Context) Signal {
	var revs []float64
	for _, p := range ctx.Periods {
		if !period.IsQuarterly(p) {
			continue
		}
		if v := ctx.Canon[p].Get(canon.Revenue); v != nil {
			revs = append(revs, *v)
		}
	}
	if len(revs) < 4 {
		return Signal{Status: NA, Detail: "fewer than 4 quarterly revenue periods"}
	}

	mean := 0.0
	for _, v := range revs {
		mean += v
	}
	mean /= float64(len(revs))
	if mean == 0 {
		return Signal{Status: NA, Detail: "quarterly revenue mean is zero"}
	}

	variance := 0.0
	for _, v := range revs {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(revs))
	cv := math.Sqrt(variance) / math.Abs(mean)
	return bandLower(cv, seasonalityPass, seasonalityCaution, fmt.Sprintf("quarterly revenue CV %.2f", cv))
}

// accrualVsCashDelta compares reported revenue against operating cash
// flow for the latest period: |revenue - cfo| / |revenue|. A wide gap
// hints at aggressive accruals. na when either value is unavailable or
// revenue is zero.
func accrualVsCashDelta(ctx *calc.Context) Signal {
	latest := ctx.Canon[period.Latest(ctx.Periods)]
	rev := latest.Get(canon.Revenue)
	cfo := latest.Get(canon.CFO)
	if rev == nil || cfo == nil || *rev == 0 {
		return Signal{Status: NA, Detail: "revenue or operating cash flow unavailable"}
	}
	v := math.Abs(*rev-*cfo) / math.Abs(*rev)
	return bandLower(v, accrualDeltaPass, accrualDeltaCaution, fmt.Sprintf("revenue vs cash gap %.0f%%", v*100))
}

// dataSufficiency grades how much history the deal supplied: at least
// two distinct years and three periods passes, two or more periods is a
// caution, anything less fails.
func dataSufficiency(ctx *calc.Context) Signal {
	periods := len(ctx.Periods)
	years := period.DistinctYears(ctx.Periods)
	v := float64(periods)
	detail := fmt.Sprintf("%d periods across %d year(s)", periods, years)

	switch {
	case years >= 2 && periods >= 3:
		return Signal{Status: Pass, Value: &v, Detail: detail}
	case periods >= 2:
		return Signal{Status: Caution, Value: &v, Detail: detail}
	default:
		return Signal{Status: Fail, Value: &v, Detail: detail}
	}
}

// =============================================================================
// BANDING
// =============================================================================

func bandHigher(v, pass, caution float64, detail string) Signal {
	s := Signal{Value: &v, Detail: detail}
	switch {
	case v >= pass:
		s.Status = Pass
	case v >= caution:
		s.Status = Caution
	default:
		s.Status = Fail
	}
	return s
}

func bandLower(v, pass, caution float64, detail string) Signal {
	s := Signal{Value: &v, Detail: detail}
	switch {
	case v <= pass:
		s.Status = Pass
	case v <= caution:
		s.Status = Caution
	default:
		s.Status = Fail
	}
	return s
}

func higherBetter(v *float64, pass, caution float64, detailFmt string) Signal {
	if v == nil {
		return Signal{Status: NA, Detail: "metric unavailable"}
	}
	return bandHigher(*v, pass, caution, fmt.Sprintf(detailFmt, *v))
}

func lowerBetter(v *float64, pass, caution float64, detailFmt string) Signal {
	if v == nil {
		return Signal{Status: NA, Detail: "metric unavailable"}
	}
	return bandLower(*v, pass, caution, fmt.Sprintf(detailFmt, *v))
}
