package models

// ProblemExample is a worked input/output pair shown alongside a problem.
type ProblemExample struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Problem is a static catalog entry. The catalog is read-only and loaded
// from data/questions.json at startup.
type Problem struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Difficulty  string           `json:"difficulty"` // "easy", "medium" or "hard"
	Examples    []ProblemExample `json:"examples,omitempty"`
}
