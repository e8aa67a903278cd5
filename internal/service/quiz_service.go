package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizService is the read side of quiz content, shaped for users taking a
// quiz: options come back without their correctness flag.
type QuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get quizzes with question count from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	var dtos []dto.QuizSummaryDTO
	for _, qwc := range quizzesWithCount {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:            qwc.Quiz.ID,
			Title:         qwc.Quiz.Title,
			Description:   qwc.Quiz.Description,
			QuestionCount: qwc.QuestionCount,
			CreatedAt:     qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *quizService) GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to get quiz details from repository")
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}

	// copier maps Option.IsCorrect onto nothing here: OptionResponseDTO has
	// no correctness field, which is what keeps the answer key private.
	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizResponseDTO")
		return nil, fmt.Errorf("error preparing quiz details response: %w", err)
	}
	return &resp, nil
}
