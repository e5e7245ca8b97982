package corpus

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a bundled corpus snapshot from disk. Entries missing an id or
// text are skipped, duplicate ids keep the first occurrence. A missing or
// corrupt file is reported as an error; callers treat that the same as an
// empty corpus (the local strategy still has built-in passages).
func Load(path string) ([]Passage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var passages []Passage
	if err := json.Unmarshal(raw, &passages); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	seen := make(map[string]bool, len(passages))
	valid := make([]Passage, 0, len(passages))
	for _, p := range passages {
		if p.Id == "" || p.Text == "" {
			continue
		}
		if seen[p.Id] {
			continue
		}
		seen[p.Id] = true
		valid = append(valid, p)
	}

	return valid, nil
}
