package period

import "testing"

func TestDetectPrecedence(t *testing.T) {
	cases := []struct {
		keys []string
		want Periodicity
	}{
		{[]string{"2024-01", "2024-Q1"}, Monthly},
		{[]string{"2024-Q1", "2024"}, Quarterly},
		{[]string{"2024"}, Annual},
		{[]string{"2022", "2023", "2024"}, Annual},
		{[]string{"2024-Q4", "2024-11"}, Monthly},
	}
	for _, c := range cases {
		if got := Detect(c.keys); got != c.want {
			t.Errorf("Detect(%v): expected %s, got %s", c.keys, c.want, got)
		}
	}
}

func TestDetectMalformedKeysFallToAnnual(t *testing.T) {
	if got := Detect([]string{"FY24", "last year", ""}); got != Annual {
		t.Errorf("Expected malformed keys to default to annual, got %s", got)
	}
}

func TestDays(t *testing.T) {
	if d := Monthly.Days(); d != 30 {
		t.Errorf("Expected 30 monthly days, got %f", d)
	}
	if d := Quarterly.Days(); d != 90 {
		t.Errorf("Expected 90 quarterly days, got %f", d)
	}
	if d := Annual.Days(); d != 365 {
		t.Errorf("Expected 365 annual days, got %f", d)
	}
}

func TestYearAndDistinctYears(t *testing.T) {
	y, ok := Year("2024-Q3")
	if !ok || y != 2024 {
		t.Errorf("Expected year 2024, got %d (ok=%v)", y, ok)
	}
	if _, ok := Year("n/a"); ok {
		t.Error("Expected no year from malformed key")
	}

	n := DistinctYears([]string{"2023-Q4", "2024-Q1", "2024-Q2", "junk"})
	if n != 2 {
		t.Errorf("Expected 2 distinct years, got %d", n)
	}
}

func TestLatestIsLexicographic(t *testing.T) {
	// Within one granularity string order is chronological order.
	if got := Latest([]string{"2023-Q4", "2024-Q1", "2023-Q1"}); got != "2024-Q1" {
		t.Errorf("Expected 2024-Q1, got %s", got)
	}
	// Across mixed granularities it is not; the string winner is kept
	// deliberately.
	if got := Latest([]string{"2024-10", "2024-Q2"}); got != "2024-Q2" {
		t.Errorf("Expected string-sort winner 2024-Q2, got %s", got)
	}
	if got := Latest(nil); got != "" {
		t.Errorf("Expected empty latest for empty set, got %q", got)
	}
}

func TestSortKeysDoesNotMutate(t *testing.T) {
	in := []string{"2024", "2022", "2023"}
	out := SortKeys(in)
	if out[0] != "2022" || out[2] != "2024" {
		t.Errorf("Expected ascending sort, got %v", out)
	}
	if in[0] != "2024" {
		t.Errorf("Expected input untouched, got %v", in)
	}
}
