package service

import (
	"errors"
	"testing"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/repository"
)

func TestCreateTestRetriesInsertCollision(t *testing.T) {
	// The pre-check passes for both codes; the first insert loses to a
	// concurrent creator and must be redrawn, not surfaced.
	repo := &fakeTestRepo{taken: map[string]bool{"TEST-AAAAAAAA": true}}
	suffixes := []string{"AAAAAAAA", "BBBBBBBB"}
	var calls int
	gen := &testCodeGenerator{
		testRepo: repo,
		source: func() string {
			code := suffixes[calls%len(suffixes)]
			calls++
			return code
		},
	}
	svc := NewTestService(repo, gen)

	resp, err := svc.CreateTest([]dto.TestQuestionSpec{validSpec(1)}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TestCode != "TEST-BBBBBBBB" {
		t.Errorf("code = %q, want the redrawn TEST-BBBBBBBB", resp.TestCode)
	}
	if len(repo.created) != 1 || repo.created[0] != "TEST-BBBBBBBB" {
		t.Errorf("persisted codes = %v, want exactly [TEST-BBBBBBBB]", repo.created)
	}
	if resp.QuestionCount != 1 {
		t.Errorf("question count = %d, want 1", resp.QuestionCount)
	}
}

func TestCreateTestInsertCollisionsExhaustBudget(t *testing.T) {
	repo := &fakeTestRepo{taken: map[string]bool{"TEST-CCCCCCCC": true}}
	var calls int
	gen := &testCodeGenerator{
		testRepo: repo,
		source: func() string {
			calls++
			return "CCCCCCCC"
		},
	}
	svc := NewTestService(repo, gen)

	_, err := svc.CreateTest([]dto.TestQuestionSpec{validSpec(1)}, 7)
	if err == nil {
		t.Fatal("expected error after exhausting insert retries")
	}
	if !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
	if calls != testCodeMaxRetries {
		t.Errorf("code drawn %d times, want %d", calls, testCodeMaxRetries)
	}
	if len(repo.created) != 0 {
		t.Errorf("persisted codes = %v, want none", repo.created)
	}
}

func TestCreateTestSnapshotSurvivesQuestionEdits(t *testing.T) {
	db := openTestDB(t)
	creator := seedCreator(t, db)

	category := model.Category{Name: "Databases"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seeding category: %v", err)
	}
	opts := options("a", "Structured Query Language", "b", "Simple Query Logic")
	optsJSON, err := opts.MarshalJSON()
	if err != nil {
		t.Fatalf("encoding options: %v", err)
	}
	question := model.Question{
		CategoryID:    category.ID,
		QuestionText:  "What does SQL stand for?",
		Options:       string(optsJSON),
		CorrectOption: "a",
		Difficulty:    "Easy",
		UserID:        creator.ID,
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seeding question: %v", err)
	}

	repo := repository.NewTestRepository(db)
	svc := NewTestService(repo, NewTestCodeGenerator(repo))
	resp, err := svc.CreateTest([]dto.TestQuestionSpec{{
		QuestionID: question.ID,
		Question:   question.QuestionText,
		Options:    opts,
		Answer:     question.CorrectOption,
		Category:   dto.TestQuestionCategory{ID: category.ID, Name: category.Name},
		Difficulty: question.Difficulty,
		UserID:     creator.ID,
	}}, creator.ID)
	if err != nil {
		t.Fatalf("creating test: %v", err)
	}

	// Rewrite the live question after the freeze.
	err = db.Model(&question).Updates(map[string]any{
		"question_text":  "What does NoSQL stand for?",
		"correct_option": "b",
	}).Error
	if err != nil {
		t.Fatalf("editing question: %v", err)
	}

	stored, err := repo.FindByCode(resp.TestCode)
	if err != nil {
		t.Fatalf("loading test: %v", err)
	}
	snapshots, err := model.DecodeSnapshots(stored.QuestionsData)
	if err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("snapshot count = %d, want 1", len(snapshots))
	}
	if snapshots[0].Question != "What does SQL stand for?" {
		t.Errorf("frozen question text = %q, want the pre-edit text", snapshots[0].Question)
	}
	if snapshots[0].Answer != "a" {
		t.Errorf("frozen answer = %q, want the pre-edit a", snapshots[0].Answer)
	}
}
