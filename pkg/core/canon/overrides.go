package canon

import (
	"fmt"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
)

// ParseAliasOverrides parses a human-written alias override document in
// Hjson (comments, unquoted keys and optional commas are all fine):
//
//	{
//	  # deal-specific label spellings
//	  "umsatzerloese": revenue
//	  "wareneinsatz": cogs
//	}
//
// Keys are raw labels, values canonical account names. Values outside the
// canonical vocabulary are rejected so overrides can never invent accounts.
func ParseAliasOverrides(data []byte) (map[string]Account, error) {
	var raw map[string]string
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse alias overrides: %w", err)
	}

	out := make(map[string]Account, len(raw))
	for label, target := range raw {
		acct := Account(strings.ToLower(strings.TrimSpace(target)))
		if !Vocabulary[acct] {
			return nil, fmt.Errorf("alias override %q maps to unknown account %q", label, target)
		}
		out[strings.ToLower(strings.TrimSpace(label))] = acct
	}
	return out, nil
}
