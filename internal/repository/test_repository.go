package repository

import (
	"errors"

	"github.com/intervia/testbank/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindByCode(code string) (*model.Test, error)
	ExistsByCode(code string) (bool, error)
	FindAllByUser(userID uint) ([]model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByCode(code string) (*model.Test, error) {
	var test model.Test
	if err := r.db.Where("test_code = ?", code).First(&test).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) ExistsByCode(code string) (bool, error) {
	var test model.Test
	err := r.db.Select("id").Where("test_code = ?", code).First(&test).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *testRepository) FindAllByUser(userID uint) ([]model.Test, error) {
	var tests []model.Test
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}
