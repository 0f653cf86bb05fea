package model

import (
	"time"

	"gorm.io/gorm"
)

// Test is an immutable, shareable exam instance. QuestionsData is the frozen
// question snapshot serialized at creation time; it is never rewritten, so
// grading stays stable regardless of later edits to the live question bank.
type Test struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestCode      string         `json:"test_code" gorm:"size:100;not null;uniqueIndex"`
	QuestionsData string         `json:"-" gorm:"type:text;not null"` // []QuestionSnapshot as JSON
	UserID        uint           `json:"user_id" gorm:"index"`
	Creator       User           `json:"creator,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
