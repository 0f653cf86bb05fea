package dto

import (
	"time"

	"github.com/intervia/testbank/internal/model"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateSubcategoryRequest struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

type SubcategoryResponse struct {
	ID         uint      `json:"id"`
	CategoryID uint      `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateQuestionRequest struct {
	CategoryID    uint            `json:"category_id" binding:"required"`
	SubCategoryID *uint           `json:"sub_category_id"`
	QuestionText  string          `json:"question_text" binding:"required"`
	Options       model.OptionMap `json:"options" binding:"required"`
	CorrectOption string          `json:"correct_option" binding:"required"`
	Difficulty    string          `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
}

type UpdateQuestionRequest struct {
	CategoryID    *uint            `json:"category_id"`
	SubCategoryID *uint            `json:"sub_category_id"`
	QuestionText  *string          `json:"question_text"`
	Options       *model.OptionMap `json:"options"`
	CorrectOption *string          `json:"correct_option"`
	Difficulty    *string          `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
}

type QuestionResponse struct {
	ID            uint            `json:"id"`
	CategoryID    uint            `json:"category_id"`
	SubCategoryID *uint           `json:"sub_category_id,omitempty"`
	QuestionText  string          `json:"question_text"`
	Options       model.OptionMap `json:"options"`
	CorrectOption string          `json:"correct_option"`
	Difficulty    string          `json:"difficulty"`
	UserID        uint            `json:"user_id"`
	CreatedAt     time.Time       `json:"created_at"`
}
