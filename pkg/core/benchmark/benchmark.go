// Package benchmark compares computed metrics against reference bands
// and rolls diligence signals up into a single health score.
package benchmark

import (
	_ "embed"
	"fmt"

	"deal_diligence/pkg/core/signals"

	yaml "gopkg.in/yaml.v2"
)

// Position is where a metric sits relative to its benchmark band.
type Position string

const (
	Above  Position = "above"
	Inline Position = "inline"
	Below  Position = "below"
)

// Band is the reference range for one metric. HigherIsBetter flips the
// reading for metrics where a smaller value is the good side (day
// counts, leverage).
type Band struct {
	Metric         string  `yaml:"metric"`
	Good           float64 `yaml:"good"`
	Watch          float64 `yaml:"watch"`
	HigherIsBetter bool    `yaml:"higher_is_better"`
}

// Table is a loaded set of benchmark bands keyed by metric id.
type Table struct {
	bands map[string]Band
}

//go:embed benchmarks.yaml
var defaultBands []byte

// Default returns the built-in SMB benchmark table.
func Default() *Table {
	t, err := Load(defaultBands)
	if err != nil {
		// The embedded table is part of the build; a parse failure is a
		// packaging bug, not a data-quality condition.
		panic(err)
	}
	return t
}

// Load parses a YAML band table:
//
//	bands:
//	  - metric: gross_margin
//	    good: 0.40
//	    watch: 0.25
//	    higher_is_better: true
func Load(data []byte) (*Table, error) {
	var doc struct {
		Bands []Band `yaml:"bands"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark table: %w", err)
	}

	t := &Table{bands: map[string]Band{}}
	for _, b := range doc.Bands {
		if b.Metric == "" {
			return nil, fmt.Errorf("benchmark band with empty metric id")
		}
		t.bands[b.Metric] = b
	}
	return t, nil
}

// Compare positions each non-nil metric against its band. Metrics with
// no band, and nil metrics, are skipped.
func (t *Table) Compare(metrics map[string]*float64) map[string]Position {
	out := map[string]Position{}
	for id, v := range metrics {
		if v == nil {
			continue
		}
		band, ok := t.bands[id]
		if !ok {
			continue
		}
		out[id] = band.position(*v)
	}
	return out
}

func (b Band) position(v float64) Position {
	if b.HigherIsBetter {
		switch {
		case v >= b.Good:
			return Above
		case v >= b.Watch:
			return Inline
		default:
			return Below
		}
	}
	switch {
	case v <= b.Good:
		return Above
	case v <= b.Watch:
		return Inline
	default:
		return Below
	}
}

// HealthScore averages the diligence signals into a 0-100 score:
// pass 100, caution 50, fail 0. na signals carry no information and are
// skipped; nil is returned when nothing scored.
func HealthScore(dd signals.DDSignals) *float64 {
	total, n := 0.0, 0
	for _, s := range dd {
		switch s.Status {
		case signals.Pass:
			total += 100
		case signals.Caution:
			total += 50
		case signals.Fail:
			// counts as zero
		default:
			continue
		}
		n++
	}
	if n == 0 {
		return nil
	}
	score := total / float64(n)
	return &score
}
