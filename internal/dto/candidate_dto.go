package dto

import (
	"time"

	"github.com/intervia/testbank/internal/model"
)

// SubmittedAnswer is one (question, selected option) pair in a submission.
type SubmittedAnswer struct {
	QuestionID FlexID `json:"questionId" binding:"required"`
	Selected   string `json:"selected"`
}

// SubmitTestRequest is the public submission payload. TestID carries the
// shareable test code, not the internal id.
type SubmitTestRequest struct {
	TestID    string            `json:"testId" binding:"required"`
	Name      string            `json:"name"`
	Email     string            `json:"email" binding:"required,email"`
	TimeTaken int               `json:"timeTaken" binding:"gte=0"`
	Answers   []SubmittedAnswer `json:"answers"`
}

// SubmitTestResponse confirms a graded submission.
type SubmitTestResponse struct {
	CandidateID        uint   `json:"candidate_id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	TestCode           string `json:"test_code"`
	TimeTakenFormatted string `json:"time_taken_formatted"`
	Score              string `json:"score"` // "correct/total"
}

// QuestionBreakdown is one row of a scored result, re-joined against the
// test's frozen snapshot for display.
type QuestionBreakdown struct {
	QuestionID      string          `json:"question_id"`
	QuestionText    string          `json:"question_text"`
	SelectedOption  string          `json:"selected_option"`
	CorrectOption   string          `json:"correct_option"`
	IsCorrect       bool            `json:"is_correct"`
	Options         model.OptionMap `json:"options"`
	Difficulty      string          `json:"difficulty"`
	CategoryName    string          `json:"category_name"`
	SubcategoryName *string         `json:"subcategory_name,omitempty"`
}

type CandidateDetail struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	TestID             uint      `json:"test_id"`
	TestCode           string    `json:"test_code"`
	TimeTaken          int       `json:"time_taken"`
	TimeTakenFormatted string    `json:"time_taken_formatted"`
	TotalQuestions     int       `json:"total_questions"`
	CorrectAnswers     int       `json:"correct_answers"`
	Score              float64   `json:"score"` // percentage, 2 decimal places
	CreatedAt          time.Time `json:"created_at"`
}

type CandidateResultResponse struct {
	Candidate CandidateDetail     `json:"candidate"`
	Responses []QuestionBreakdown `json:"responses"`
}

// ResultListItem is one dashboard row in the aggregate listing.
type ResultListItem struct {
	ResponseID         uint      `json:"response_id"`
	CandidateID        uint      `json:"candidate_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	TestCode           string    `json:"test_code"`
	Score              string    `json:"score"` // "correct/total"
	ScorePercentage    int       `json:"score_percentage"`
	TimeTakenFormatted string    `json:"time_taken_formatted"`
	AnsweredAt         time.Time `json:"answered_at"`
}
