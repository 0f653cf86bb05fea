package model

import (
	"time"
)

// Response is one graded submission. Answers holds the validated per-question
// results as JSON ([]AnswerRecord). Rows are immutable history; deletion is an
// explicit admin action.
type Response struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CandidateID uint      `json:"candidate_id" gorm:"not null;index"`
	Candidate   Candidate `json:"candidate,omitempty" gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	TestID      uint      `json:"test_id" gorm:"not null;index"`
	Test        Test      `json:"test,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
	Answers     string    `json:"-" gorm:"type:text;not null"` // []AnswerRecord as JSON
	Score       int       `json:"score" gorm:"not null"`
	TimeTaken   int       `json:"time_taken" gorm:"not null"` // seconds
	AnsweredAt  time.Time `json:"answered_at" gorm:"autoCreateTime"`
}
