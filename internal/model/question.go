package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	CategoryID    uint           `json:"category_id" gorm:"not null;index"`
	Category      Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	SubCategoryID *uint          `json:"sub_category_id,omitempty" gorm:"index"`
	SubCategory   *Subcategory   `json:"sub_category,omitempty" gorm:"foreignKey:SubCategoryID;constraint:OnDelete:SET NULL"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	Options       string         `json:"-" gorm:"type:text;not null"` // ordered option map as JSON
	CorrectOption string         `json:"correct_option" gorm:"size:1;not null"`
	Difficulty    string         `json:"difficulty" gorm:"size:20;not null"` // "Easy", "Medium", "Hard"
	UserID        uint           `json:"user_id" gorm:"index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
