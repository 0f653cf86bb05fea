package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FormatTime renders elapsed seconds as "Ns" under a minute, else "MM:SS".
func FormatTime(seconds int) string {
	if seconds < 60 {
		return strconv.Itoa(seconds) + "s"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ScorePercentage is correct/total as a percentage rounded to two decimals,
// and 0 for a zero-question denominator.
func ScorePercentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}

// ResultService reconstructs scored breakdowns from stored responses and the
// tests' frozen snapshots. Authorization is the router's concern, not this
// service's.
type ResultService interface {
	GetCandidateResult(candidateID uint) (*dto.CandidateResultResponse, error)
	ListResults(testCode *string) ([]dto.ResultListItem, error)
	DeleteCandidate(candidateID uint) error
	DeleteResponse(responseID uint) error
}

type resultService struct {
	candidateRepo repository.CandidateRepository
	responseRepo  repository.ResponseRepository
	testRepo      repository.TestRepository
	db            *gorm.DB
}

func NewResultService(
	candidateRepo repository.CandidateRepository,
	responseRepo repository.ResponseRepository,
	testRepo repository.TestRepository,
	db *gorm.DB,
) ResultService {
	return &resultService{
		candidateRepo: candidateRepo,
		responseRepo:  responseRepo,
		testRepo:      testRepo,
		db:            db,
	}
}

// GetCandidateResult rebuilds the scored breakdown for a candidate's latest
// submission by re-joining the stored answers against the test's frozen
// snapshot.
func (s *resultService) GetCandidateResult(candidateID uint) (*dto.CandidateResultResponse, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Candidate not found")
		}
		return nil, fmt.Errorf("looking up candidate %d: %w", candidateID, err)
	}

	response, err := s.responseRepo.FindLatestByCandidateID(candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Response not found")
		}
		return nil, fmt.Errorf("looking up response for candidate %d: %w", candidateID, err)
	}

	snapshots, err := model.DecodeSnapshots(response.Test.QuestionsData)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot for test %s: %w", response.Test.TestCode, err)
	}
	byID := make(map[string]model.QuestionSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		byID[strconv.FormatUint(uint64(snapshot.QuestionID), 10)] = snapshot
	}

	records, err := model.DecodeAnswerRecords(response.Answers)
	if err != nil {
		return nil, fmt.Errorf("decoding answers for response %d: %w", response.ID, err)
	}

	breakdown := make([]dto.QuestionBreakdown, 0, len(records))
	for _, record := range records {
		snapshot, ok := byID[record.QuestionID]
		if !ok {
			// The snapshot is the source of truth; an answer without a frozen
			// question cannot be displayed.
			log.Warn().Str("question_id", record.QuestionID).Uint("response_id", response.ID).Msg("Stored answer references unknown snapshot question")
			continue
		}
		breakdown = append(breakdown, dto.QuestionBreakdown{
			QuestionID:      record.QuestionID,
			QuestionText:    snapshot.Question,
			SelectedOption:  record.Selected,
			CorrectOption:   record.Correct,
			IsCorrect:       record.IsCorrect,
			Options:         snapshot.Options,
			Difficulty:      snapshot.Difficulty,
			CategoryName:    snapshot.Category.Name,
			SubcategoryName: snapshot.Category.Subcategory,
		})
	}

	total := len(records)
	detail := dto.CandidateDetail{
		ID:                 candidate.ID,
		Name:               candidate.Name,
		Email:              candidate.Email,
		TestID:             response.TestID,
		TestCode:           response.Test.TestCode,
		TimeTaken:          response.TimeTaken,
		TimeTakenFormatted: FormatTime(response.TimeTaken),
		TotalQuestions:     total,
		CorrectAnswers:     response.Score,
		Score:              ScorePercentage(response.Score, total),
		CreatedAt:          candidate.CreatedAt,
	}

	return &dto.CandidateResultResponse{Candidate: detail, Responses: breakdown}, nil
}

// ListResults builds the dashboard listing, newest submissions first,
// optionally restricted to one test code.
func (s *resultService) ListResults(testCode *string) ([]dto.ResultListItem, error) {
	var testID *uint
	if testCode != nil && *testCode != "" {
		test, err := s.testRepo.FindByCode(*testCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFoundf("Test not found")
			}
			return nil, fmt.Errorf("looking up test %s: %w", *testCode, err)
		}
		testID = &test.ID
	}

	responses, err := s.responseRepo.FindAll(testID)
	if err != nil {
		return nil, fmt.Errorf("listing responses: %w", err)
	}

	items := make([]dto.ResultListItem, 0, len(responses))
	for i := range responses {
		response := &responses[i]
		records, err := model.DecodeAnswerRecords(response.Answers)
		if err != nil {
			log.Error().Err(err).Uint("response_id", response.ID).Msg("Skipping response with undecodable answers")
			continue
		}
		total := len(records)
		items = append(items, dto.ResultListItem{
			ResponseID:         response.ID,
			CandidateID:        response.CandidateID,
			Name:               response.Candidate.Name,
			Email:              response.Candidate.Email,
			TestCode:           response.Test.TestCode,
			Score:              fmt.Sprintf("%d/%d", response.Score, total),
			ScorePercentage:    int(ScorePercentage(response.Score, total)),
			TimeTakenFormatted: FormatTime(response.TimeTaken),
			AnsweredAt:         response.AnsweredAt,
		})
	}
	return items, nil
}

// DeleteCandidate removes a candidate and all of their responses. Tests are
// untouched.
func (s *resultService) DeleteCandidate(candidateID uint) error {
	if _, err := s.candidateRepo.FindByID(candidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Candidate not found")
		}
		return fmt.Errorf("looking up candidate %d: %w", candidateID, err)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", candidateID).Delete(&model.Response{}).Error; err != nil {
			return fmt.Errorf("deleting responses for candidate %d: %w", candidateID, err)
		}
		if err := tx.Delete(&model.Candidate{}, candidateID).Error; err != nil {
			return fmt.Errorf("deleting candidate %d: %w", candidateID, err)
		}
		return nil
	})
}

// DeleteResponse removes a single response row; the candidate and test stay.
func (s *resultService) DeleteResponse(responseID uint) error {
	if _, err := s.responseRepo.FindByID(responseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Response not found")
		}
		return fmt.Errorf("looking up response %d: %w", responseID, err)
	}
	return s.responseRepo.Delete(responseID)
}
