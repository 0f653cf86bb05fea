package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/middleware"
	"github.com/intervia/testbank/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionSvc service.QuestionService
}

func NewQuestionController(questionSvc service.QuestionService) *QuestionController {
	return &QuestionController{questionSvc: questionSvc}
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Add a question to the bank; correct_option must be one of the option keys
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Category or subcategory not found"
// @Router /questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	question, err := ctrl.questionSvc.CreateQuestion(req, middleware.UserID(c))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create question")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// GetQuestions godoc
// @Summary List all questions
// @Tags questions
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Router /questions [get]
func (ctrl *QuestionController) GetQuestions(c *gin.Context) {
	questions, err := ctrl.questionSvc.GetAllQuestions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary Get a question by ID
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (ctrl *QuestionController) GetQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	question, err := ctrl.questionSvc.GetQuestion(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// GetQuestionsByCategory godoc
// @Summary List questions under a category
// @Tags questions
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/category/{category_id} [get]
func (ctrl *QuestionController) GetQuestionsByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	questions, err := ctrl.questionSvc.GetQuestionsByCategory(categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestionsBySubcategory godoc
// @Summary List questions under a subcategory
// @Tags questions
// @Produce json
// @Param subcategory_id path int true "Subcategory ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/subcategory/{subcategory_id} [get]
func (ctrl *QuestionController) GetQuestionsBySubcategory(c *gin.Context) {
	subCategoryID, ok := pathID(c, "subcategory_id")
	if !ok {
		return
	}
	questions, err := ctrl.questionSvc.GetQuestionsBySubcategory(subCategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestionsByDifficulty godoc
// @Summary List questions by difficulty
// @Tags questions
// @Produce json
// @Param difficulty path string true "Difficulty" Enums(Easy, Medium, Hard)
// @Success 200 {array} dto.QuestionResponse
// @Router /questions/difficulty/{difficulty} [get]
func (ctrl *QuestionController) GetQuestionsByDifficulty(c *gin.Context) {
	difficulty := c.Param("difficulty")
	if difficulty != "Easy" && difficulty != "Medium" && difficulty != "Hard" {
		respondError(c, apperr.Invalidf("difficulty must be Easy, Medium, or Hard"))
		return
	}
	questions, err := ctrl.questionSvc.GetQuestionsByDifficulty(difficulty)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestionsForTest godoc
// @Summary Select questions for composing a test
// @Description Questions under a category and difficulty; filter by subcategory or omit it for directly-attached questions
// @Tags tests
// @Produce json
// @Param category_id query int true "Category ID"
// @Param difficulty query string true "Difficulty" Enums(Easy, Medium, Hard)
// @Param sub_category_id query int false "Subcategory ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/questions [get]
func (ctrl *QuestionController) GetQuestionsForTest(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Query("category_id"), 10, 32)
	if err != nil {
		respondError(c, apperr.Invalidf("category_id is required and must be an integer"))
		return
	}
	difficulty := c.Query("difficulty")
	if difficulty != "Easy" && difficulty != "Medium" && difficulty != "Hard" {
		respondError(c, apperr.Invalidf("difficulty must be Easy, Medium, or Hard"))
		return
	}
	var subCategoryID *uint
	if raw := c.Query("sub_category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, apperr.Invalidf("sub_category_id must be an integer"))
			return
		}
		id := uint(parsed)
		subCategoryID = &id
	}

	questions, err := ctrl.questionSvc.GetQuestionsForTest(uint(categoryID), difficulty, subCategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	question, err := ctrl.questionSvc.UpdateQuestion(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Removes a question from the live bank; existing test snapshots are unaffected
// @Tags questions
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionSvc.DeleteQuestion(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted successfully"})
}
