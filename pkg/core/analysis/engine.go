// Package analysis orchestrates the full deal computation: normalize
// raw rows, infer periodicity, run the ratio registry, evaluate
// diligence signals, build the document inventory and attach benchmark
// positions plus the health score.
package analysis

import (
	"fmt"
	"time"

	"deal_diligence/pkg/core/benchmark"
	"deal_diligence/pkg/core/calc"
	"deal_diligence/pkg/core/canon"
	"deal_diligence/pkg/core/ingest"
	"deal_diligence/pkg/core/inventory"
	"deal_diligence/pkg/core/period"
	"deal_diligence/pkg/core/signals"

	"github.com/google/uuid"
)

// Engine runs the deterministic analysis pipeline. It holds only the
// benchmark table; every Analyze call is pure over its input, so one
// engine may serve concurrent deals without coordination.
type Engine struct {
	benchmarks *benchmark.Table
}

// NewEngine creates an engine with the built-in benchmark table.
func NewEngine() *Engine {
	return &Engine{benchmarks: benchmark.Default()}
}

// NewEngineWithBenchmarks creates an engine with a caller-supplied table.
func NewEngineWithBenchmarks(t *benchmark.Table) *Engine {
	return &Engine{benchmarks: t}
}

// Input is one deal's worth of extracted rows plus the externally
// supplied concentration ratio (nil when unknown). AliasOverrides adds
// deal-specific label spellings on top of the built-in alias table.
type Input struct {
	DealID             string
	Rows               []ingest.Row
	ConcentrationRatio *float64
	AliasOverrides     map[string]canon.Account
}

// DealAnalysis is the flat, JSON-serializable result consumed by
// storage and rendering collaborators.
type DealAnalysis struct {
	DealID      string                        `json:"deal_id"`
	AnalysisID  string                        `json:"analysis_id"`
	Periodicity period.Periodicity            `json:"periodicity"`
	Periods     []string                      `json:"periods"`
	Metrics     map[string]*float64           `json:"metrics"`
	Signals     signals.DDSignals             `json:"signals"`
	Inventory   inventory.DocumentInventory   `json:"inventory"`
	Benchmarks  map[string]benchmark.Position `json:"benchmarks"`
	HealthScore *float64                      `json:"health_score"`
	GeneratedAt time.Time                     `json:"generated_at"`
}

// Analyze runs the whole pipeline for one deal.
func (e *Engine) Analyze(in Input) (*DealAnalysis, error) {
	if in.DealID == "" {
		return nil, fmt.Errorf("deal id is required")
	}
	if len(in.Rows) == 0 {
		return nil, fmt.Errorf("deal %s has no rows to analyze", in.DealID)
	}

	byPeriod := ingest.GroupByPeriodWith(in.Rows, in.AliasOverrides)
	ctx := calc.NewContext(byPeriod)
	metrics := calc.ComputeAllMetrics(ctx)

	dd := signals.Compute(signals.Input{
		DealID:             in.DealID,
		Periods:            ctx.Periods,
		Canon:              byPeriod,
		ConcentrationRatio: in.ConcentrationRatio,
		Metrics:            metrics,
	})

	byStatement := ingest.GroupByStatement(in.Rows)
	periodicityByType := map[inventory.StatementType]period.Periodicity{}
	for kind, canonByPeriod := range byStatement {
		keys := make([]string, 0, len(canonByPeriod))
		for k := range canonByPeriod {
			keys = append(keys, k)
		}
		periodicityByType[kind] = period.Detect(keys)
	}
	inv := inventory.Build(inventory.Input{
		DealID:            in.DealID,
		CanonByType:       byStatement,
		PeriodicityByType: periodicityByType,
	})

	return &DealAnalysis{
		DealID:      in.DealID,
		AnalysisID:  uuid.New().String(),
		Periodicity: ctx.Periodicity,
		Periods:     ctx.Periods,
		Metrics:     metrics,
		Signals:     dd,
		Inventory:   inv,
		Benchmarks:  e.benchmarks.Compare(metrics),
		HealthScore: benchmark.HealthScore(dd),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
