package filter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadPatterns reads a pattern list from a JSONC file. The file holds a
// plain JSON array of glob strings; comments and trailing commas are
// tolerated so the list can be annotated by hand.
func LoadPatterns(path string) ([]string, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // path comes from a user flag
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(raw), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	out := patterns[:0]

	for _, p := range patterns {
		if p != "" {
			out = append(out, p)
		}
	}

	return out, nil
}
