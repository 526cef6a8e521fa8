package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"codestreak/models"
)

// Catalog is the static, read-only problem set. It is loaded once at startup
// and never mutated afterwards.
type Catalog struct {
	problems []models.Problem
	byID     map[string]models.Problem
}

// LoadCatalog reads the problem set from a JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem catalog: %w", err)
	}

	var problems []models.Problem
	if err := json.Unmarshal(data, &problems); err != nil {
		return nil, fmt.Errorf("failed to parse problem catalog: %w", err)
	}

	return NewCatalog(problems), nil
}

func NewCatalog(problems []models.Problem) *Catalog {
	byID := make(map[string]models.Problem, len(problems))
	for _, p := range problems {
		byID[p.ID] = p
	}
	return &Catalog{problems: problems, byID: byID}
}

// All returns every catalog entry.
func (c *Catalog) All() []models.Problem {
	return c.problems
}

// ByID looks up a single problem, reporting ErrNotFound for unknown ids.
func (c *Catalog) ByID(id string) (models.Problem, error) {
	problem, ok := c.byID[id]
	if !ok {
		return models.Problem{}, ErrNotFound
	}
	return problem, nil
}

// RandomUncompleted picks a random problem not in completed. When the user
// has completed everything it falls back to a random problem from the full
// catalog, so practice never runs dry. The second return value reports
// whether the fallback was taken.
func (c *Catalog) RandomUncompleted(completed []string) (models.Problem, bool, error) {
	if len(c.problems) == 0 {
		return models.Problem{}, false, ErrNotFound
	}

	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	available := make([]models.Problem, 0, len(c.problems))
	for _, p := range c.problems {
		if !done[p.ID] {
			available = append(available, p)
		}
	}

	if len(available) == 0 {
		return c.problems[rand.Intn(len(c.problems))], true, nil
	}
	return available[rand.Intn(len(available))], false, nil
}
