package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/middleware"
	"github.com/intervia/testbank/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testSvc service.TestService
}

func NewTestController(testSvc service.TestService) *TestController {
	return &TestController{testSvc: testSvc}
}

// CreateTest godoc
// @Summary Create a test from selected questions
// @Description Freezes the submitted question data into an immutable snapshot and assigns a shareable test code
// @Tags tests
// @Accept json
// @Produce json
// @Param questions body []dto.TestQuestionSpec true "Ordered question specifications"
// @Success 201 {object} dto.TestCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failure naming the question index and rule"
// @Failure 500 {object} dto.ErrorResponse "Test code generation exhausted"
// @Router /tests/create [post]
func (ctrl *TestController) CreateTest(c *gin.Context) {
	var specs []dto.TestQuestionSpec
	if err := c.ShouldBindJSON(&specs); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	created, err := ctrl.testSvc.CreateTest(specs, middleware.UserID(c))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create test")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetMyTests godoc
// @Summary List tests created by the caller
// @Tags tests
// @Produce json
// @Success 200 {array} dto.TestSummaryResponse
// @Router /tests/my-tests [get]
func (ctrl *TestController) GetMyTests(c *gin.Context) {
	tests, err := ctrl.testSvc.GetTestsByUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

// GetTestByCode godoc
// @Summary Get a test by its shareable code
// @Description Returns the frozen test detail including the full question snapshot
// @Tags tests
// @Produce json
// @Param test_code path string true "Test code (TEST-XXXXXXXX)"
// @Success 200 {object} dto.TestDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{test_code} [get]
func (ctrl *TestController) GetTestByCode(c *gin.Context) {
	test, err := ctrl.testSvc.GetTestByCode(c.Param("test_code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}
