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

// TeacherQuizService is the authoring side: create and edit quizzes,
// questions and options. Callers are expected to have passed the write
// permission gate already.
type TeacherQuizService interface {
	CreateQuiz(createdByID uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	UpdateQuiz(quizID uint, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error)
	AddQuestion(quizID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	AddOption(questionID uint, req dto.OptionCreateDTO) error
}

type teacherQuizService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
}

func NewTeacherQuizService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	optionRepo repository.OptionRepository,
) TeacherQuizService {
	return &teacherQuizService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
	}
}

func (s *teacherQuizService) CreateQuiz(createdByID uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	orderSeen := make(map[int]bool)
	var questions []model.Question
	for _, qDto := range req.Questions {
		if qDto.OrderInQuiz != 0 && orderSeen[qDto.OrderInQuiz] {
			return nil, fmt.Errorf("duplicate order_in_quiz %d found in questions", qDto.OrderInQuiz)
		}
		orderSeen[qDto.OrderInQuiz] = true

		question, err := questionFromDTO(qDto)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	quizModel := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		CreatedByID: createdByID,
		Questions:   questions,
	}
	if err := s.quizRepo.Create(&quizModel); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quizModel.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizModel.ID).Msg("Failed to reload newly created quiz for response")
		var fallback dto.QuizResponseDTO
		copier.Copy(&fallback, &quizModel)
		return &fallback, nil
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		log.Error().Err(err).Msg("Failed to copy created Quiz model to QuizResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *teacherQuizService) UpdateQuiz(quizID uint, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("loading quiz %d: %w", quizID, err)
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	if err := s.quizRepo.Update(quiz); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to update quiz")
		return nil, fmt.Errorf("database error updating quiz: %w", err)
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *teacherQuizService) AddQuestion(quizID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("loading quiz %d: %w", quizID, err)
	}

	question, err := questionFromDTO(req)
	if err != nil {
		return nil, err
	}
	question.QuizID = quizID
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to create question")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}

	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *teacherQuizService) AddOption(questionID uint, req dto.OptionCreateDTO) error {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotInQuiz
		}
		return fmt.Errorf("loading question %d: %w", questionID, err)
	}

	option := model.Option{
		QuestionID: questionID,
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
	}
	if err := s.optionRepo.Create(&option); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to create option")
		return fmt.Errorf("database error creating option: %w", err)
	}
	return nil
}

func questionFromDTO(qDto dto.QuestionCreateDTO) (model.Question, error) {
	points := qDto.Points
	if points == 0 {
		points = 1
	}
	if points < 0 {
		return model.Question{}, fmt.Errorf("question %q has negative points", qDto.Text)
	}

	question := model.Question{
		Text:        qDto.Text,
		Type:        qDto.Type,
		Points:      points,
		OrderInQuiz: qDto.OrderInQuiz,
	}
	for _, oDto := range qDto.Options {
		question.Options = append(question.Options, model.Option{
			Text:      oDto.Text,
			IsCorrect: oDto.IsCorrect,
		})
	}
	return question, nil
}
