package models

// PlanEntry is one step of a generated study plan.
type PlanEntry struct {
	Day   string `json:"day"`
	Tasks string `json:"tasks"`
}

// ReportCard is the structured response expected from the model. When the
// model output cannot be parsed, Raw carries the unparsed text and the other
// fields are empty.
type ReportCard struct {
	Analysis string      `json:"analysis,omitempty"`
	Plan     []PlanEntry `json:"plan,omitempty"`
	Raw      string      `json:"raw,omitempty"`
}
