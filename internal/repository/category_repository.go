package repository

import (
	"github.com/intervia/testbank/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindByID(id uint) (*model.Category, error)
	FindByName(name string) (*model.Category, error)
	FindAll() ([]model.Category, error)
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&model.Category{}, id).Error
}

type SubcategoryRepository interface {
	Create(subcategory *model.Subcategory) error
	FindByID(id uint) (*model.Subcategory, error)
	FindByCategoryID(categoryID uint) ([]model.Subcategory, error)
	FindAll() ([]model.Subcategory, error)
	Delete(id uint) error
}

type subcategoryRepository struct {
	db *gorm.DB
}

func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) Create(subcategory *model.Subcategory) error {
	return r.db.Create(subcategory).Error
}

func (r *subcategoryRepository) FindByID(id uint) (*model.Subcategory, error) {
	var subcategory model.Subcategory
	if err := r.db.First(&subcategory, id).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) FindByCategoryID(categoryID uint) ([]model.Subcategory, error) {
	var subcategories []model.Subcategory
	if err := r.db.Where("category_id = ?", categoryID).Order("name ASC").Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *subcategoryRepository) FindAll() ([]model.Subcategory, error) {
	var subcategories []model.Subcategory
	if err := r.db.Order("created_at DESC").Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *subcategoryRepository) Delete(id uint) error {
	return r.db.Delete(&model.Subcategory{}, id).Error
}
