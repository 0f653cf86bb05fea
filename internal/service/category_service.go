package service

import (
	"errors"
	"fmt"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/repository"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req dto.CreateCategoryRequest, userID uint) (*dto.CategoryResponse, error)
	GetCategory(id uint) (*dto.CategoryResponse, error)
	GetAllCategories() ([]dto.CategoryResponse, error)
	DeleteCategory(id uint) error

	CreateSubcategory(req dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error)
	GetSubcategory(id uint) (*dto.SubcategoryResponse, error)
	GetSubcategoriesByCategory(categoryID uint) ([]dto.SubcategoryResponse, error)
	DeleteSubcategory(id uint) error
}

type categoryService struct {
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, subcategoryRepo repository.SubcategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, subcategoryRepo: subcategoryRepo}
}

func (s *categoryService) CreateCategory(req dto.CreateCategoryRequest, userID uint) (*dto.CategoryResponse, error) {
	if _, err := s.categoryRepo.FindByName(req.Name); err == nil {
		return nil, apperr.Invalidf("Category with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing category: %w", err)
	}

	category := model.Category{
		Name:        req.Name,
		Description: req.Description,
		UserID:      userID,
	}
	if err := s.categoryRepo.Create(&category); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	var resp dto.CategoryResponse
	copier.Copy(&resp, &category)
	return &resp, nil
}

func (s *categoryService) GetCategory(id uint) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Category not found")
		}
		return nil, fmt.Errorf("looking up category: %w", err)
	}
	var resp dto.CategoryResponse
	copier.Copy(&resp, category)
	return &resp, nil
}

func (s *categoryService) GetAllCategories() ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		var item dto.CategoryResponse
		copier.Copy(&item, &categories[i])
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Category not found")
		}
		return fmt.Errorf("looking up category: %w", err)
	}
	return s.categoryRepo.Delete(id)
}

func (s *categoryService) CreateSubcategory(req dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Category not found")
		}
		return nil, fmt.Errorf("looking up category: %w", err)
	}

	subcategory := model.Subcategory{
		CategoryID: req.CategoryID,
		Name:       req.Name,
	}
	if err := s.subcategoryRepo.Create(&subcategory); err != nil {
		return nil, fmt.Errorf("creating subcategory: %w", err)
	}
	var resp dto.SubcategoryResponse
	copier.Copy(&resp, &subcategory)
	return &resp, nil
}

func (s *categoryService) GetSubcategory(id uint) (*dto.SubcategoryResponse, error) {
	subcategory, err := s.subcategoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Subcategory not found")
		}
		return nil, fmt.Errorf("looking up subcategory: %w", err)
	}
	var resp dto.SubcategoryResponse
	copier.Copy(&resp, subcategory)
	return &resp, nil
}

func (s *categoryService) GetSubcategoriesByCategory(categoryID uint) ([]dto.SubcategoryResponse, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Category not found")
		}
		return nil, fmt.Errorf("looking up category: %w", err)
	}
	subcategories, err := s.subcategoryRepo.FindByCategoryID(categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing subcategories: %w", err)
	}
	resp := make([]dto.SubcategoryResponse, 0, len(subcategories))
	for i := range subcategories {
		var item dto.SubcategoryResponse
		copier.Copy(&item, &subcategories[i])
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *categoryService) DeleteSubcategory(id uint) error {
	if _, err := s.subcategoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Subcategory not found")
		}
		return fmt.Errorf("looking up subcategory: %w", err)
	}
	return s.subcategoryRepo.Delete(id)
}
