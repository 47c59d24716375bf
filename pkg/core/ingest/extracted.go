package ingest

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// ParseExtractedRows decodes a JSON array of rows as produced by an
// upstream extraction step. LLM-extracted output is often almost-JSON
// (trailing commas, single quotes, markdown fences), so a strict parse
// failure triggers one repair pass before giving up.
func ParseExtractedRows(data []byte) ([]Row, error) {
	var rows []Row
	if err := json.Unmarshal(data, &rows); err == nil {
		return rows, nil
	}

	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("extracted rows are not valid JSON and could not be repaired: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &rows); err != nil {
		return nil, fmt.Errorf("repaired extracted rows still failed to decode: %w", err)
	}
	return rows, nil
}
