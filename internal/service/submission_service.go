package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService grades candidate submissions against a test's frozen
// snapshot and persists the outcome. Either the whole submission lands as one
// candidate (possibly pre-existing) plus one response row, or nothing is
// written.
type SubmissionService interface {
	SubmitTest(req dto.SubmitTestRequest) (*dto.SubmitTestResponse, error)
}

type submissionService struct {
	testRepo repository.TestRepository
	db       *gorm.DB
}

func NewSubmissionService(testRepo repository.TestRepository, db *gorm.DB) SubmissionService {
	return &submissionService{testRepo: testRepo, db: db}
}

func (s *submissionService) SubmitTest(req dto.SubmitTestRequest) (*dto.SubmitTestResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Invalidf("'name' cannot be empty")
	}

	test, err := s.testRepo.FindByCode(req.TestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Invalid test code")
		}
		return nil, fmt.Errorf("looking up test %s: %w", req.TestID, err)
	}

	snapshots, err := model.DecodeSnapshots(test.QuestionsData)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot for test %s: %w", test.TestCode, err)
	}

	outcome, err := gradeSubmission(snapshots, req.Answers)
	if err != nil {
		return nil, err
	}

	answersJSON, err := model.EncodeAnswerRecords(outcome.Records)
	if err != nil {
		return nil, fmt.Errorf("encoding validated answers: %w", err)
	}

	var candidate model.Candidate
	err = s.db.Transaction(func(tx *gorm.DB) error {
		found, err := findOrCreateCandidate(tx, req.Email, strings.TrimSpace(req.Name))
		if err != nil {
			return err
		}
		candidate = *found

		response := model.Response{
			CandidateID: candidate.ID,
			TestID:      test.ID,
			Answers:     answersJSON,
			Score:       outcome.Correct,
			TimeTaken:   req.TimeTaken,
		}
		if err := tx.Create(&response).Error; err != nil {
			return fmt.Errorf("creating response: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("test_code", test.TestCode).Str("email", req.Email).Msg("Failed to persist submission")
		return nil, err
	}

	log.Info().
		Str("test_code", test.TestCode).
		Uint("candidate_id", candidate.ID).
		Int("score", outcome.Correct).
		Int("total", outcome.Total()).
		Msg("Submission graded")

	return &dto.SubmitTestResponse{
		CandidateID:        candidate.ID,
		Name:               candidate.Name,
		Email:              candidate.Email,
		TestCode:           test.TestCode,
		TimeTakenFormatted: FormatTime(req.TimeTaken),
		Score:              fmt.Sprintf("%d/%d", outcome.Correct, outcome.Total()),
	}, nil
}

// findOrCreateCandidate resolves the candidate row for an email, creating it
// on first submission. The first-seen name stays authoritative on reuse. A
// duplicate-key error from a concurrent submission is resolved by retrying
// the lookup; the unique index on candidates.email guarantees one row per
// email.
func findOrCreateCandidate(tx *gorm.DB, email, name string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := tx.Where("email = ?", email).First(&candidate).Error
	if err == nil {
		return &candidate, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("looking up candidate: %w", err)
	}

	candidate = model.Candidate{Name: name, Email: email}
	if err := tx.Create(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing model.Candidate
			if err := tx.Where("email = ?", email).First(&existing).Error; err != nil {
				return nil, fmt.Errorf("re-reading candidate after duplicate key: %w", err)
			}
			return &existing, nil
		}
		return nil, fmt.Errorf("creating candidate: %w", err)
	}
	return &candidate, nil
}
