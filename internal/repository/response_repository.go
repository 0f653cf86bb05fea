package repository

import (
	"github.com/intervia/testbank/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	FindByID(id uint) (*model.Response, error)
	// FindLatestByCandidateID returns the candidate's most recent submission.
	FindLatestByCandidateID(candidateID uint) (*model.Response, error)
	// FindAll lists responses newest-first, optionally restricted to a test.
	FindAll(testID *uint) ([]model.Response, error)
	Delete(id uint) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) FindByID(id uint) (*model.Response, error) {
	var response model.Response
	if err := r.db.Preload("Candidate").Preload("Test").First(&response, id).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindLatestByCandidateID(candidateID uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Preload("Test").
		Where("candidate_id = ?", candidateID).
		Order("answered_at DESC").
		First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindAll(testID *uint) ([]model.Response, error) {
	query := r.db.Preload("Candidate").Preload("Test")
	if testID != nil {
		query = query.Where("test_id = ?", *testID)
	}
	var responses []model.Response
	if err := query.Order("answered_at DESC").Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepository) Delete(id uint) error {
	return r.db.Delete(&model.Response{}, id).Error
}
