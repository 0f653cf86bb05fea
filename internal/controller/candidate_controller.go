package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/service"
	"github.com/rs/zerolog/log"
)

type CandidateController struct {
	submissionSvc service.SubmissionService
	resultSvc     service.ResultService
}

func NewCandidateController(submissionSvc service.SubmissionService, resultSvc service.ResultService) *CandidateController {
	return &CandidateController{submissionSvc: submissionSvc, resultSvc: resultSvc}
}

// SubmitTest godoc
// @Summary Submit a completed test
// @Description Public endpoint: grades the answers against the test's frozen snapshot and records one response
// @Tags candidates
// @Accept json
// @Produce json
// @Param submission body dto.SubmitTestRequest true "Submission"
// @Success 200 {object} dto.SubmitTestResponse
// @Failure 400 {object} dto.ErrorResponse "Empty name, count mismatch or blank selection"
// @Failure 404 {object} dto.ErrorResponse "Unknown test code"
// @Router /candidates/submit [post]
func (ctrl *CandidateController) SubmitTest(c *gin.Context) {
	var req dto.SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	result, err := ctrl.submissionSvc.SubmitTest(req)
	if err != nil {
		log.Warn().Err(err).Str("test_code", req.TestID).Msg("Submission rejected")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCandidateResult godoc
// @Summary Get a candidate's scored breakdown
// @Tags candidates
// @Produce json
// @Param candidate_id path int true "Candidate ID"
// @Success 200 {object} dto.CandidateResultResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate or response missing"
// @Router /candidates/result/{candidate_id} [get]
func (ctrl *CandidateController) GetCandidateResult(c *gin.Context) {
	candidateID, ok := pathID(c, "candidate_id")
	if !ok {
		return
	}
	result, err := ctrl.resultSvc.GetCandidateResult(candidateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAllResults godoc
// @Summary List all results for the dashboard
// @Tags candidates
// @Produce json
// @Param test_code query string false "Filter by test code"
// @Success 200 {array} dto.ResultListItem
// @Failure 404 {object} dto.ErrorResponse "Unknown test code filter"
// @Router /candidates/results [get]
func (ctrl *CandidateController) GetAllResults(c *gin.Context) {
	var testCode *string
	if raw := c.Query("test_code"); raw != "" {
		testCode = &raw
	}
	results, err := ctrl.resultSvc.ListResults(testCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// DeleteCandidate godoc
// @Summary Delete a candidate and all their responses
// @Tags candidates
// @Param candidate_id path int true "Candidate ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /candidates/{candidate_id} [delete]
func (ctrl *CandidateController) DeleteCandidate(c *gin.Context) {
	candidateID, ok := pathID(c, "candidate_id")
	if !ok {
		return
	}
	if err := ctrl.resultSvc.DeleteCandidate(candidateID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Candidate deleted successfully"})
}

// DeleteResponse godoc
// @Summary Delete a single response
// @Tags candidates
// @Param response_id path int true "Response ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /candidates/response/{response_id} [delete]
func (ctrl *CandidateController) DeleteResponse(c *gin.Context) {
	responseID, ok := pathID(c, "response_id")
	if !ok {
		return
	}
	if err := ctrl.resultSvc.DeleteResponse(responseID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Response deleted successfully"})
}
