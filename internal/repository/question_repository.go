package repository

import (
	"github.com/intervia/testbank/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindByCategoryID(categoryID uint) ([]model.Question, error)
	FindBySubcategoryID(subCategoryID uint) ([]model.Question, error)
	FindByDifficulty(difficulty string) ([]model.Question, error)
	// FindForTest selects candidate questions for composing a test. A nil
	// subCategoryID means questions directly under the category (no
	// subcategory), matching the bank's selection semantics.
	FindForTest(categoryID uint, difficulty string, subCategoryID *uint) ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByCategoryID(categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("category_id = ?", categoryID).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindBySubcategoryID(subCategoryID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("sub_category_id = ?", subCategoryID).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByDifficulty(difficulty string) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("difficulty = ?", difficulty).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindForTest(categoryID uint, difficulty string, subCategoryID *uint) ([]model.Question, error) {
	query := r.db.Where("category_id = ? AND difficulty = ?", categoryID, difficulty)
	if subCategoryID != nil {
		query = query.Where("sub_category_id = ?", *subCategoryID)
	} else {
		query = query.Where("sub_category_id IS NULL")
	}
	var questions []model.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
