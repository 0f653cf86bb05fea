package model

import (
	"time"
)

// Candidate is a test taker, deduplicated by email: the first submission under
// an email creates the row, later submissions reuse it.
type Candidate struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"size:150;not null"`
	Email     string    `json:"email" gorm:"size:200;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}
