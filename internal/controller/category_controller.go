package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/middleware"
	"github.com/intervia/testbank/internal/service"
)

type CategoryController struct {
	categorySvc service.CategoryService
}

func NewCategoryController(categorySvc service.CategoryService) *CategoryController {
	return &CategoryController{categorySvc: categorySvc}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category data"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse "Duplicate category name"
// @Router /categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	category, err := ctrl.categorySvc.CreateCategory(req, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.categorySvc.GetAllCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := ctrl.categorySvc.GetCategory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Param id path int true "Category ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.categorySvc.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}

// CreateSubcategory godoc
// @Summary Create a subcategory under a category
// @Tags subcategories
// @Accept json
// @Produce json
// @Param subcategory body dto.CreateSubcategoryRequest true "Subcategory data"
// @Success 201 {object} dto.SubcategoryResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /subcategories [post]
func (ctrl *CategoryController) CreateSubcategory(c *gin.Context) {
	var req dto.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	subcategory, err := ctrl.categorySvc.CreateSubcategory(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subcategory)
}

// GetSubcategory godoc
// @Summary Get a subcategory by ID
// @Tags subcategories
// @Produce json
// @Param id path int true "Subcategory ID"
// @Success 200 {object} dto.SubcategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subcategories/{id} [get]
func (ctrl *CategoryController) GetSubcategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	subcategory, err := ctrl.categorySvc.GetSubcategory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

// GetSubcategoriesByCategory godoc
// @Summary List subcategories of a category
// @Tags subcategories
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {array} dto.SubcategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subcategories/category/{category_id} [get]
func (ctrl *CategoryController) GetSubcategoriesByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	subcategories, err := ctrl.categorySvc.GetSubcategoriesByCategory(categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

// DeleteSubcategory godoc
// @Summary Delete a subcategory
// @Tags subcategories
// @Param id path int true "Subcategory ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subcategories/{id} [delete]
func (ctrl *CategoryController) DeleteSubcategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.categorySvc.DeleteSubcategory(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Subcategory deleted successfully"})
}
