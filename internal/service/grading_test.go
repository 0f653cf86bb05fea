package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
)

func snapshot(id uint, answer string) model.QuestionSnapshot {
	return model.QuestionSnapshot{
		QuestionID: id,
		Answer:     answer,
		Options:    options("a", "first", "b", "second"),
		Question:   "placeholder",
		Category:   model.SnapshotCategory{ID: 1, Name: "General"},
		Difficulty: "Medium",
	}
}

func TestGradeSubmissionScoring(t *testing.T) {
	snapshots := []model.QuestionSnapshot{snapshot(1, "a"), snapshot(2, "b")}

	tests := []struct {
		name        string
		answers     []dto.SubmittedAnswer
		wantCorrect int
		wantTotal   int
	}{
		{
			name: "one right one wrong",
			answers: []dto.SubmittedAnswer{
				{QuestionID: "1", Selected: "a"},
				{QuestionID: "2", Selected: "a"},
			},
			wantCorrect: 1,
			wantTotal:   2,
		},
		{
			name: "all wrong",
			answers: []dto.SubmittedAnswer{
				{QuestionID: "1", Selected: "b"},
				{QuestionID: "2", Selected: "a"},
			},
			wantCorrect: 0,
			wantTotal:   2,
		},
		{
			name: "all right",
			answers: []dto.SubmittedAnswer{
				{QuestionID: "1", Selected: "a"},
				{QuestionID: "2", Selected: "b"},
			},
			wantCorrect: 2,
			wantTotal:   2,
		},
		{
			name: "case insensitive match",
			answers: []dto.SubmittedAnswer{
				{QuestionID: "1", Selected: "A"},
				{QuestionID: "2", Selected: " B "},
			},
			wantCorrect: 2,
			wantTotal:   2,
		},
		{
			name: "unknown question id dropped from grading",
			answers: []dto.SubmittedAnswer{
				{QuestionID: "1", Selected: "a"},
				{QuestionID: "999", Selected: "b"},
			},
			wantCorrect: 1,
			wantTotal:   1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := gradeSubmission(snapshots, tc.answers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome.Correct != tc.wantCorrect {
				t.Errorf("correct = %d, want %d", outcome.Correct, tc.wantCorrect)
			}
			if outcome.Total() != tc.wantTotal {
				t.Errorf("total = %d, want %d", outcome.Total(), tc.wantTotal)
			}
		})
	}
}

func TestGradeSubmissionCountMismatch(t *testing.T) {
	snapshots := []model.QuestionSnapshot{snapshot(1, "a"), snapshot(2, "b")}
	answers := []dto.SubmittedAnswer{{QuestionID: "1", Selected: "a"}}

	_, err := gradeSubmission(snapshots, answers)
	if err == nil {
		t.Fatal("expected error for answer count mismatch")
	}
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("expected invalid-input error, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "Expected 2 answers, received 1") {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestGradeSubmissionBlankSelection(t *testing.T) {
	snapshots := []model.QuestionSnapshot{snapshot(1, "a"), snapshot(2, "b")}
	answers := []dto.SubmittedAnswer{
		{QuestionID: "1", Selected: "a"},
		{QuestionID: "2", Selected: "  "},
	}

	_, err := gradeSubmission(snapshots, answers)
	if err == nil {
		t.Fatal("expected error for blank selection")
	}
	// Position is reported 1-based.
	if got := err.Error(); !strings.Contains(got, "Answer 2 has an empty selection") {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestGradeSubmissionRecordShape(t *testing.T) {
	snapshots := []model.QuestionSnapshot{snapshot(1, "a")}
	answers := []dto.SubmittedAnswer{{QuestionID: "1", Selected: " a "}}

	outcome, err := gradeSubmission(snapshots, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcome.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(outcome.Records))
	}
	record := outcome.Records[0]
	if record.QuestionID != "1" {
		t.Errorf("question id = %q, want %q", record.QuestionID, "1")
	}
	if record.Selected != "A" || record.Correct != "A" {
		t.Errorf("stored comparison forms = (%q, %q), want both %q", record.Selected, record.Correct, "A")
	}
	if !record.IsCorrect {
		t.Error("expected record marked correct")
	}
}

func TestGradeSubmissionNumericAndStringIDsResolve(t *testing.T) {
	snapshots := []model.QuestionSnapshot{snapshot(7, "b")}

	var answer dto.SubmittedAnswer
	// Numbers and strings both arrive through FlexID as the string form.
	for _, raw := range []string{"7"} {
		answer = dto.SubmittedAnswer{QuestionID: dto.FlexID(raw), Selected: "b"}
		outcome, err := gradeSubmission(snapshots, []dto.SubmittedAnswer{answer})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Correct != 1 {
			t.Errorf("id %q did not resolve against snapshot", raw)
		}
	}
}
