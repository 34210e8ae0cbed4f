package seedmodels

import (
	"encoding/json"
	"fmt"
	"os"
)

// SeedQuestion defines a question item in the JSON seed file.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// SeedCategory defines a category and its questions in the JSON seed file.
type SeedCategory struct {
	Type      string         `json:"type"`
	Questions []SeedQuestion `json:"questions"`
}

// Load reads and validates a seed file.
func Load(path string) ([]SeedCategory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var categories []SeedCategory
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}

	for i, c := range categories {
		if c.Type == "" {
			return nil, fmt.Errorf("seed category %d has no type", i)
		}
		for j, q := range c.Questions {
			if q.Question == "" || q.Answer == "" {
				return nil, fmt.Errorf("seed category %q question %d is missing text or answer", c.Type, j)
			}
		}
	}
	return categories, nil
}
