package model

import "fmt"

// Recommendation is a remediation suggestion attached to the fleet report.
// It starts out pending and is toggled by explicit approve/reject actions.
type Recommendation struct {
	Description string `json:"description"`
	Approved    bool   `json:"approved"`
}

// NewRecommendation creates a pending recommendation
func NewRecommendation(description string) *Recommendation {
	return &Recommendation{Description: description}
}

// Approve marks the recommendation as approved
func (r *Recommendation) Approve() {
	r.Approved = true
}

// Reject returns the recommendation to the pending state
func (r *Recommendation) Reject() {
	r.Approved = false
}

// String renders the recommendation with its approval state
func (r *Recommendation) String() string {
	state := "Pending"
	if r.Approved {
		state = "Approved"
	}
	return fmt.Sprintf("Recommendation: %s - %s", r.Description, state)
}
