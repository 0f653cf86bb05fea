package service

import (
	"errors"
	"fmt"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TestService interface {
	CreateTest(specs []dto.TestQuestionSpec, userID uint) (*dto.TestCreatedResponse, error)
	GetTestByCode(code string) (*dto.TestDetailResponse, error)
	GetTestsByUser(userID uint) ([]dto.TestSummaryResponse, error)
}

type testService struct {
	testRepo repository.TestRepository
	codes    TestCodeGenerator
}

func NewTestService(testRepo repository.TestRepository, codes TestCodeGenerator) TestService {
	return &testService{testRepo: testRepo, codes: codes}
}

// CreateTest freezes the submitted question specifications into a snapshot,
// assigns a unique code, and persists the test. Nothing is written if any
// question fails validation. A unique-key violation on insert means a
// concurrent creator won the code between the pre-check and the write, so the
// code is redrawn on the same bounded budget the generator uses.
func (s *testService) CreateTest(specs []dto.TestQuestionSpec, userID uint) (*dto.TestCreatedResponse, error) {
	snapshots, err := BuildQuestionSnapshots(specs)
	if err != nil {
		return nil, err
	}
	data, err := model.EncodeSnapshots(snapshots)
	if err != nil {
		return nil, fmt.Errorf("encoding question snapshot: %w", err)
	}

	var test model.Test
	for attempt := 0; ; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			return nil, err
		}
		test = model.Test{
			TestCode:      code,
			QuestionsData: data,
			UserID:        userID,
		}
		err = s.testRepo.Create(&test)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Error().Err(err).Uint("user_id", userID).Msg("Failed to create test")
			return nil, fmt.Errorf("creating test: %w", err)
		}
		if attempt+1 >= testCodeMaxRetries {
			log.Error().Err(err).Str("test_code", code).Msg("Test code insert conflicts exhausted retry budget")
			return nil, apperr.Wrap(apperr.KindConflict,
				fmt.Sprintf("could not insert a unique test code after %d attempts", testCodeMaxRetries), err)
		}
		log.Warn().Str("test_code", code).Int("attempt", attempt+1).Msg("Test code conflict on insert, regenerating")
	}

	log.Info().Str("test_code", test.TestCode).Int("question_count", len(snapshots)).Uint("user_id", userID).Msg("Test created")
	return &dto.TestCreatedResponse{
		TestID:        test.ID,
		TestCode:      test.TestCode,
		QuestionCount: len(snapshots),
	}, nil
}

func (s *testService) GetTestByCode(code string) (*dto.TestDetailResponse, error) {
	test, err := s.testRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Test not found")
		}
		return nil, fmt.Errorf("looking up test %s: %w", code, err)
	}
	snapshots, err := model.DecodeSnapshots(test.QuestionsData)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot for test %s: %w", code, err)
	}
	return &dto.TestDetailResponse{
		ID:            test.ID,
		TestCode:      test.TestCode,
		QuestionsData: snapshots,
		UserID:        test.UserID,
		CreatedAt:     test.CreatedAt,
	}, nil
}

func (s *testService) GetTestsByUser(userID uint) ([]dto.TestSummaryResponse, error) {
	tests, err := s.testRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("listing tests for user %d: %w", userID, err)
	}
	summaries := make([]dto.TestSummaryResponse, 0, len(tests))
	for i := range tests {
		snapshots, err := model.DecodeSnapshots(tests[i].QuestionsData)
		if err != nil {
			return nil, fmt.Errorf("decoding snapshot for test %s: %w", tests[i].TestCode, err)
		}
		summaries = append(summaries, dto.TestSummaryResponse{
			ID:            tests[i].ID,
			TestCode:      tests[i].TestCode,
			QuestionCount: len(snapshots),
			CreatedAt:     tests[i].CreatedAt,
		})
	}
	return summaries, nil
}
