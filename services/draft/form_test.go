package draft

import (
	"errors"
	"testing"

	"planbuilder/models"
)

func readyDraft() *models.PlanDraft {
	return &models.PlanDraft{
		DraftID:       "d1",
		OwnerID:       "o1",
		Title:         "Thirty days of sketching",
		TitleValid:    true,
		CategoryIDs:   []int{3},
		CoverImageURL: "https://cdn.example/cover.jpg",
		Sessions: []models.Session{
			{
				ID: 1, Ordinal: 1, Date: "2026-03-10",
				StartTime:     models.DefaultStartTime,
				EndTime:       models.DefaultEndTime,
				Activity:      "Sketch a still life for thirty minutes",
				ActivityValid: true,
			},
		},
		NextSessionID: 2,
	}
}

func TestSubmitProblems(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.PlanDraft)
		problems int
	}{
		{name: "complete draft", mutate: func(*models.PlanDraft) {}, problems: 0},
		{name: "invalid title", mutate: func(d *models.PlanDraft) { d.TitleValid = false }, problems: 1},
		{name: "no categories", mutate: func(d *models.PlanDraft) { d.CategoryIDs = nil }, problems: 1},
		{name: "missing cover", mutate: func(d *models.PlanDraft) { d.CoverImageURL = "" }, problems: 1},
		{name: "dateless session", mutate: func(d *models.PlanDraft) { d.Sessions[0].Date = "" }, problems: 1},
		{name: "invalid activity", mutate: func(d *models.PlanDraft) { d.Sessions[0].ActivityValid = false }, problems: 1},
		{
			name: "everything missing",
			mutate: func(d *models.PlanDraft) {
				d.TitleValid = false
				d.CategoryIDs = nil
				d.CoverImageURL = ""
				d.Sessions[0].Date = ""
				d.Sessions[0].ActivityValid = false
			},
			problems: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := readyDraft()
			tt.mutate(d)

			problems := SubmitProblems(d)

			if len(problems) != tt.problems {
				t.Fatalf("SubmitProblems = %v (%d) want %d", problems, len(problems), tt.problems)
			}
			if got := Submittable(d); got != (tt.problems == 0) {
				t.Fatalf("Submittable = %v with %d problems", got, len(problems))
			}
		})
	}
}

func TestCategorySelectionRules(t *testing.T) {
	tests := []struct {
		name    string
		ids     []int
		wantErr error
	}{
		{name: "single category", ids: []int{3}},
		{name: "pair of categories", ids: []int{1, 8}},
		{name: "empty allowed while drafting", ids: nil},
		{name: "third category rejected", ids: []int{1, 2, 3}, wantErr: ErrTooManyCategories},
		{name: "unknown id rejected", ids: []int{42}, wantErr: ErrUnknownCategory},
		{name: "duplicate id rejected", ids: []int{2, 2}, wantErr: ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCategorySelection(tt.ids)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("validateCategorySelection(%v) = %v want nil", tt.ids, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("validateCategorySelection(%v) = %v want %v", tt.ids, err, tt.wantErr)
			}
		})
	}
}
