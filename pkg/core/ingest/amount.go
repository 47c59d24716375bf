package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a spreadsheet-style amount string to a float.
// Handles currency symbols, thousands separators, surrounding
// whitespace and accounting-style parenthesised negatives:
//
//	"$1,234.56" -> 1234.56
//	"(500)"     -> -500
//	"1 200"     -> 1200
//
// Empty strings and bare dashes are not amounts and return an error.
func ParseAmount(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" || raw == "-" || raw == "–" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")") {
		negative = true
		raw = raw[1 : len(raw)-1]
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', ',', ' ', ' ':
			return -1
		}
		return r
	}, raw)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if negative {
		v = -v
	}
	return v, nil
}
