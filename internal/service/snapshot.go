package service

import (
	"strings"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
)

// BuildQuestionSnapshots validates an ordered list of question specifications
// and freezes them into the immutable snapshot attached to a test. Pure: no
// persistence, all-or-nothing. Validation is per question, fail-fast, and
// errors name the offending question's index and the rule broken.
func BuildQuestionSnapshots(specs []dto.TestQuestionSpec) ([]model.QuestionSnapshot, error) {
	if len(specs) == 0 {
		return nil, apperr.Invalidf("a test requires at least one question")
	}

	snapshots := make([]model.QuestionSnapshot, 0, len(specs))
	for i, spec := range specs {
		if strings.TrimSpace(spec.Question) == "" {
			return nil, apperr.Invalidf("question at index %d has empty question text", i)
		}
		if spec.Options.Len() == 0 {
			return nil, apperr.Invalidf("question at index %d has no options", i)
		}
		answer := strings.TrimSpace(spec.Answer)
		if answer == "" {
			return nil, apperr.Invalidf("question at index %d has an empty answer", i)
		}
		if !spec.Options.ContainsFold(answer) {
			return nil, apperr.Invalidf("question at index %d: answer %q is not one of the option keys", i, spec.Answer)
		}

		snapshots = append(snapshots, model.QuestionSnapshot{
			QuestionID: spec.QuestionID,
			Answer:     answer,
			Options:    spec.Options.Clone(),
			Question:   spec.Question,
			Category: model.SnapshotCategory{
				ID:          spec.Category.ID,
				Name:        spec.Category.Name,
				Subcategory: spec.Category.Subcategory,
			},
			Difficulty: spec.Difficulty,
			UserID:     spec.UserID,
		})
	}
	return snapshots, nil
}
