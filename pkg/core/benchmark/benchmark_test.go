package benchmark

import (
	"testing"

	"deal_diligence/pkg/core/signals"
)

func fp(v float64) *float64 { return &v }

func TestDefaultTableLoads(t *testing.T) {
	table := Default()
	got := table.Compare(map[string]*float64{"gross_margin": fp(0.45)})
	if got["gross_margin"] != Above {
		t.Errorf("Expected gross_margin 0.45 above default band, got %s", got["gross_margin"])
	}
}

func TestComparePositions(t *testing.T) {
	table, err := Load([]byte(`
bands:
  - metric: gross_margin
    good: 0.40
    watch: 0.25
    higher_is_better: true
  - metric: ccc_days
    good: 60
    watch: 90
    higher_is_better: false
`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := table.Compare(map[string]*float64{
		"gross_margin": fp(0.30),
		"ccc_days":     fp(120),
		"net_margin":   fp(0.05), // no band
		"quick_ratio":  nil,      // nil metric
	})

	if got["gross_margin"] != Inline {
		t.Errorf("gross_margin 0.30: expected inline, got %s", got["gross_margin"])
	}
	if got["ccc_days"] != Below {
		t.Errorf("ccc_days 120: expected below, got %s", got["ccc_days"])
	}
	if _, ok := got["net_margin"]; ok {
		t.Error("Metrics without bands must be skipped")
	}
	if _, ok := got["quick_ratio"]; ok {
		t.Error("Nil metrics must be skipped")
	}
}

func TestLoadRejectsEmptyMetricID(t *testing.T) {
	_, err := Load([]byte("bands:\n  - good: 1\n    watch: 2\n"))
	if err == nil {
		t.Error("Expected error for band with empty metric id")
	}
}

func TestHealthScore(t *testing.T) {
	dd := signals.DDSignals{
		"a": {Status: signals.Pass},
		"b": {Status: signals.Caution},
		"c": {Status: signals.Fail},
		"d": {Status: signals.NA},
	}
	got := HealthScore(dd)
	if got == nil || *got != 50 {
		t.Errorf("Expected score 50 (100+50+0)/3, got %v", got)
	}
}

func TestHealthScoreAllNA(t *testing.T) {
	dd := signals.DDSignals{
		"a": {Status: signals.NA},
		"b": {Status: signals.NA},
	}
	if got := HealthScore(dd); got != nil {
		t.Errorf("Expected nil score with nothing scored, got %f", *got)
	}
}
