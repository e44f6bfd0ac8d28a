package domain

import "strings"

// ContextAttributes is what the advisor has learned about the learner. An
// empty string means the attribute is unknown.
type ContextAttributes struct {
	GradeLevel     string   `json:"grade_level,omitempty"`
	CareerInterest string   `json:"career_interest,omitempty"`
	Activities     []string `json:"activities,omitempty"`
}

// Merge folds a partial extraction into the receiver. Scalars are replaced
// only by non-empty values; activities are appended in order, duplicates
// included.
func (c *ContextAttributes) Merge(partial ContextAttributes) {
	if grade := strings.TrimSpace(partial.GradeLevel); grade != "" {
		c.GradeLevel = grade
	}
	if career := strings.TrimSpace(partial.CareerInterest); career != "" {
		c.CareerInterest = career
	}
	for _, activity := range partial.Activities {
		if activity = strings.TrimSpace(activity); activity != "" {
			c.Activities = append(c.Activities, activity)
		}
	}
}

func (c ContextAttributes) IsEmpty() bool {
	return c.GradeLevel == "" && c.CareerInterest == "" && len(c.Activities) == 0
}

// Clone returns a copy that does not share the activities slice.
func (c ContextAttributes) Clone() ContextAttributes {
	clone := c
	if c.Activities != nil {
		clone.Activities = append([]string(nil), c.Activities...)
	}
	return clone
}

// Lines renders the known attributes as "Label: value" lines.
func (c ContextAttributes) Lines() []string {
	lines := make([]string, 0, 3)
	if c.GradeLevel != "" {
		lines = append(lines, "Grade level: "+c.GradeLevel)
	}
	if c.CareerInterest != "" {
		lines = append(lines, "Career interest: "+c.CareerInterest)
	}
	if len(c.Activities) > 0 {
		lines = append(lines, "Activities: "+strings.Join(c.Activities, ", "))
	}
	return lines
}
