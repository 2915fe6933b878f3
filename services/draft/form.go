package draft

import (
	"fmt"

	"planbuilder/models"
)

// SubmitProblems lists everything still blocking submission, in form
// order. An empty result means the draft is submittable.
func SubmitProblems(draft *models.PlanDraft) []string {
	var problems []string
	if !draft.TitleValid {
		problems = append(problems, "title must be 8-80 characters")
	}
	if len(draft.CategoryIDs) == 0 {
		problems = append(problems, "pick at least one category")
	}
	if len(draft.CategoryIDs) > models.MaxCategorySelection {
		problems = append(problems, fmt.Sprintf("at most %d categories allowed", models.MaxCategorySelection))
	}
	if draft.CoverImageURL == "" {
		problems = append(problems, "cover image is required")
	}
	for _, s := range draft.Sessions {
		if s.Date == "" {
			problems = append(problems, fmt.Sprintf("session %d needs a date", s.Ordinal))
		}
		if !s.ActivityValid {
			problems = append(problems, fmt.Sprintf("session %d activity must be 8-800 characters", s.Ordinal))
		}
	}
	return problems
}

// Submittable reports whether the draft passes every submission gate.
func Submittable(draft *models.PlanDraft) bool {
	return len(SubmitProblems(draft)) == 0
}
