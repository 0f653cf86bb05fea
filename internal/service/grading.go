package service

import (
	"strconv"
	"strings"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
)

// gradeOutcome is the result of scoring one submission against a frozen
// snapshot.
type gradeOutcome struct {
	// Records holds one validated entry per matched answer, in submission
	// order. Answers whose question id is not in the snapshot are dropped,
	// so len(Records) can be smaller than the submitted count.
	Records []model.AnswerRecord
	Correct int
}

// Total is the number of answers that were matched and graded. It is the
// denominator for score strings and percentages.
func (o gradeOutcome) Total() int { return len(o.Records) }

// gradeSubmission validates and scores answers against the frozen snapshot.
// Pure; persistence happens in SubmissionService.
//
// Policy, in order:
//   - the submitted answer count must exactly equal the frozen question count
//   - every selected option must be non-blank (error names 1-based position)
//   - selections are trimmed and uppercased before comparison
//   - answers for question ids absent from the snapshot are dropped silently
//   - correctness is a case-insensitive match against the frozen answer key
func gradeSubmission(snapshots []model.QuestionSnapshot, answers []dto.SubmittedAnswer) (gradeOutcome, error) {
	if len(answers) != len(snapshots) {
		return gradeOutcome{}, apperr.Invalidf("Expected %d answers, received %d", len(snapshots), len(answers))
	}
	for i, answer := range answers {
		if strings.TrimSpace(answer.Selected) == "" {
			return gradeOutcome{}, apperr.Invalidf("Answer %d has an empty selection", i+1)
		}
	}

	// Key the lookup by the string form of the id so numeric and string
	// client ids both resolve.
	byID := make(map[string]model.QuestionSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		byID[strconv.FormatUint(uint64(snapshot.QuestionID), 10)] = snapshot
	}

	outcome := gradeOutcome{Records: make([]model.AnswerRecord, 0, len(answers))}
	for _, answer := range answers {
		questionID := answer.QuestionID.String()
		snapshot, ok := byID[questionID]
		if !ok {
			continue
		}

		selected := strings.ToUpper(strings.TrimSpace(answer.Selected))
		correct := strings.ToUpper(snapshot.Answer)
		isCorrect := selected == correct
		if isCorrect {
			outcome.Correct++
		}
		outcome.Records = append(outcome.Records, model.AnswerRecord{
			QuestionID: questionID,
			Selected:   selected,
			Correct:    correct,
			IsCorrect:  isCorrect,
		})
	}
	return outcome, nil
}
