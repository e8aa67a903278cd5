package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/model"
	"github.com/lshigami/Moorhen/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService manages the pending side of attempts: starting one, listing
// a user's own attempts and inspecting a single attempt. Submission itself is
// SubmissionService's job.
type AttemptService interface {
	StartAttempt(userID uint, req dto.AttemptCreateDTO) (*dto.AttemptSummaryDTO, error)
	ListUserAttempts(userID uint) ([]dto.AttemptSummaryDTO, error)
	GetAttemptDetails(attemptID, userID uint) (*dto.AttemptDetailDTO, error)
}

type attemptService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	answerRepo  repository.AnswerRepository
}

func NewAttemptService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
) AttemptService {
	return &attemptService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
	}
}

func (s *attemptService) StartAttempt(userID uint, req dto.AttemptCreateDTO) (*dto.AttemptSummaryDTO, error) {
	if _, err := s.quizRepo.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("loading quiz %d: %w", req.QuizID, err)
	}

	attempt := model.Attempt{
		QuizID: req.QuizID,
		UserID: userID,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("quizID", req.QuizID).Uint("userID", userID).Msg("StartAttempt: failed to create attempt")
		return nil, fmt.Errorf("creating attempt: %w", err)
	}

	var resp dto.AttemptSummaryDTO
	if err := copier.Copy(&resp, &attempt); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	return &resp, nil
}

func (s *attemptService) ListUserAttempts(userID uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListUserAttempts: repository error")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("ListUserAttempts: error copying attempt to summary DTO")
			continue
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *attemptService) GetAttemptDetails(attemptID, userID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDAndUserWithAnswers(attemptID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("loading attempt %d: %w", attemptID, err)
	}

	var resp dto.AttemptDetailDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		return nil, fmt.Errorf("error preparing attempt details response: %w", err)
	}
	if attempt.Quiz.ID != 0 {
		resp.QuizTitle = attempt.Quiz.Title
	}

	resp.Answers = make([]dto.AnswerResponseDTO, len(attempt.Answers))
	for i, answer := range attempt.Answers {
		selected, err := s.answerRepo.SelectedOptionIDs(answer.ID)
		if err != nil {
			return nil, fmt.Errorf("loading selected options for answer %d: %w", answer.ID, err)
		}
		resp.Answers[i] = dto.AnswerResponseDTO{
			ID:              answer.ID,
			QuestionID:      answer.QuestionID,
			QuestionText:    answer.Question.Text,
			SelectedOptions: selected,
		}
	}
	return &resp, nil
}
