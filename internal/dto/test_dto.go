package dto

import (
	"time"

	"github.com/intervia/testbank/internal/model"
)

// TestQuestionSpec is one question specification in a test-creation request.
// The client sends the full question data it selected from the bank; the
// server freezes it into the test's snapshot.
type TestQuestionSpec struct {
	QuestionID uint                 `json:"question_id" binding:"required"`
	Question   string               `json:"question" binding:"required"`
	Options    model.OptionMap      `json:"options" binding:"required"`
	Answer     string               `json:"answer" binding:"required"`
	Category   TestQuestionCategory `json:"category" binding:"required"`
	Difficulty string               `json:"difficulty"`
	UserID     uint                 `json:"user_id"`
}

type TestQuestionCategory struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Subcategory *string `json:"subcategory,omitempty"`
}

type TestCreatedResponse struct {
	TestID        uint   `json:"test_id"`
	TestCode      string `json:"test_code"`
	QuestionCount int    `json:"question_count"`
}

// TestDetailResponse is the frozen test as a candidate (or its creator) sees
// it, including the full snapshot.
type TestDetailResponse struct {
	ID            uint                     `json:"id"`
	TestCode      string                   `json:"test_code"`
	QuestionsData []model.QuestionSnapshot `json:"questions_data"`
	UserID        uint                     `json:"user_id"`
	CreatedAt     time.Time                `json:"created_at"`
}

type TestSummaryResponse struct {
	ID            uint      `json:"id"`
	TestCode      string    `json:"test_code"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
