package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest, userID uint) (*dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	GetAllQuestions() ([]dto.QuestionResponse, error)
	GetQuestionsByCategory(categoryID uint) ([]dto.QuestionResponse, error)
	GetQuestionsBySubcategory(subCategoryID uint) ([]dto.QuestionResponse, error)
	GetQuestionsByDifficulty(difficulty string) ([]dto.QuestionResponse, error)
	GetQuestionsForTest(categoryID uint, difficulty string, subCategoryID *uint) ([]dto.QuestionResponse, error)
	UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	questionRepo    repository.QuestionRepository
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
) QuestionService {
	return &questionService{
		questionRepo:    questionRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
	}
}

// checkSubcategory validates that a subcategory exists and belongs to the
// given category.
func (s *questionService) checkSubcategory(subCategoryID, categoryID uint) error {
	subcategory, err := s.subcategoryRepo.FindByID(subCategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Subcategory not found")
		}
		return fmt.Errorf("looking up subcategory: %w", err)
	}
	if subcategory.CategoryID != categoryID {
		return apperr.Invalidf("Subcategory does not belong to the specified category")
	}
	return nil
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest, userID uint) (*dto.QuestionResponse, error) {
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Category not found")
		}
		return nil, fmt.Errorf("looking up category: %w", err)
	}
	if req.SubCategoryID != nil {
		if err := s.checkSubcategory(*req.SubCategoryID, req.CategoryID); err != nil {
			return nil, err
		}
	}

	if len(req.CorrectOption) != 1 {
		return nil, apperr.Invalidf("correct_option must be a single character (e.g., 'a', 'b', 'c', 'd')")
	}
	if _, ok := req.Options.Get(req.CorrectOption); !ok {
		return nil, apperr.Invalidf("correct_option %q must be one of the option keys", req.CorrectOption)
	}

	optionsJSON, err := json.Marshal(req.Options)
	if err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}

	question := model.Question{
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		QuestionText:  req.QuestionText,
		Options:       string(optionsJSON),
		CorrectOption: req.CorrectOption,
		Difficulty:    req.Difficulty,
		UserID:        userID,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("creating question: %w", err)
	}
	return questionToResponse(&question)
}

// questionToResponse builds the read model, parsing the stored options JSON.
// The persisted entity is never mutated to carry response-shaped data.
func questionToResponse(question *model.Question) (*dto.QuestionResponse, error) {
	var options model.OptionMap
	if err := json.Unmarshal([]byte(question.Options), &options); err != nil {
		return nil, fmt.Errorf("decoding options for question %d: %w", question.ID, err)
	}
	return &dto.QuestionResponse{
		ID:            question.ID,
		CategoryID:    question.CategoryID,
		SubCategoryID: question.SubCategoryID,
		QuestionText:  question.QuestionText,
		Options:       options,
		CorrectOption: question.CorrectOption,
		Difficulty:    question.Difficulty,
		UserID:        question.UserID,
		CreatedAt:     question.CreatedAt,
	}, nil
}

func questionsToResponses(questions []model.Question) ([]dto.QuestionResponse, error) {
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		item, err := questionToResponse(&questions[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *item)
	}
	return resp, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Question not found")
		}
		return nil, fmt.Errorf("looking up question: %w", err)
	}
	return questionToResponse(question)
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	return questionsToResponses(questions)
}

func (s *questionService) GetQuestionsByCategory(categoryID uint) ([]dto.QuestionResponse, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Category not found")
		}
		return nil, fmt.Errorf("looking up category: %w", err)
	}
	questions, err := s.questionRepo.FindByCategoryID(categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	return questionsToResponses(questions)
}

func (s *questionService) GetQuestionsBySubcategory(subCategoryID uint) ([]dto.QuestionResponse, error) {
	if _, err := s.subcategoryRepo.FindByID(subCategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Subcategory not found")
		}
		return nil, fmt.Errorf("looking up subcategory: %w", err)
	}
	questions, err := s.questionRepo.FindBySubcategoryID(subCategoryID)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	return questionsToResponses(questions)
}

func (s *questionService) GetQuestionsByDifficulty(difficulty string) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindByDifficulty(difficulty)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	return questionsToResponses(questions)
}

func (s *questionService) GetQuestionsForTest(categoryID uint, difficulty string, subCategoryID *uint) ([]dto.QuestionResponse, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Category not found")
		}
		return nil, fmt.Errorf("looking up category: %w", err)
	}
	if subCategoryID != nil {
		if err := s.checkSubcategory(*subCategoryID, categoryID); err != nil {
			return nil, err
		}
	}
	questions, err := s.questionRepo.FindForTest(categoryID, difficulty, subCategoryID)
	if err != nil {
		return nil, fmt.Errorf("selecting questions: %w", err)
	}
	return questionsToResponses(questions)
}

func (s *questionService) UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Question not found")
		}
		return nil, fmt.Errorf("looking up question: %w", err)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFoundf("Category not found")
			}
			return nil, fmt.Errorf("looking up category: %w", err)
		}
		question.CategoryID = *req.CategoryID
	}
	if req.SubCategoryID != nil {
		if err := s.checkSubcategory(*req.SubCategoryID, question.CategoryID); err != nil {
			return nil, err
		}
		question.SubCategoryID = req.SubCategoryID
	}
	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.Options != nil {
		optionsJSON, err := json.Marshal(req.Options)
		if err != nil {
			return nil, fmt.Errorf("encoding options: %w", err)
		}
		question.Options = string(optionsJSON)
	}
	if req.CorrectOption != nil {
		var options model.OptionMap
		if err := json.Unmarshal([]byte(question.Options), &options); err != nil {
			return nil, fmt.Errorf("decoding options: %w", err)
		}
		if _, ok := options.Get(*req.CorrectOption); !ok {
			return nil, apperr.Invalidf("correct_option must be one of the option keys")
		}
		question.CorrectOption = *req.CorrectOption
	}
	if req.Difficulty != nil {
		question.Difficulty = *req.Difficulty
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("updating question: %w", err)
	}
	return questionToResponse(question)
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Question not found")
		}
		return fmt.Errorf("looking up question: %w", err)
	}
	return s.questionRepo.Delete(id)
}
