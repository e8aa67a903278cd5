package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/grading"
	"github.com/lshigami/Moorhen/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService owns the answer-submission and scoring workflow: validate
// a batch of per-question answers against the attempt's quiz, grade them, and
// finalize the attempt in one all-or-nothing unit.
type SubmissionService interface {
	SubmitAttempt(attemptID, userID uint, req dto.AttemptSubmitDTO) (float64, error)
}

type submissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) SubmissionService {
	return &submissionService{db: db}
}

// SubmitAttempt runs the whole workflow inside a single transaction. Any
// validation failure rolls back every answer recorded so far and leaves the
// attempt unsubmitted.
func (s *submissionService) SubmitAttempt(attemptID, userID uint, req dto.AttemptSubmitDTO) (float64, error) {
	var total float64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lookup filters on both id and owner: a foreign attempt yields the
		// same not-found as a missing one.
		var attempt model.Attempt
		if err := tx.Where("id = ? AND user_id = ?", attemptID, userID).First(&attempt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAttemptNotFound
			}
			return fmt.Errorf("loading attempt %d: %w", attemptID, err)
		}

		if attempt.IsSubmitted {
			return ErrAlreadySubmitted
		}

		total = 0
		for _, entry := range req.Answers {
			contribution, err := s.processAnswer(tx, &attempt, entry)
			if err != nil {
				return err
			}
			total += contribution
		}

		// Compare-and-set on is_submitted: of two racing submissions only one
		// can flip the flag, the other fails the guard.
		now := time.Now()
		res := tx.Model(&model.Attempt{}).
			Where("id = ? AND is_submitted = ?", attempt.ID, false).
			Updates(map[string]interface{}{
				"score":        total,
				"is_submitted": true,
				"finished_at":  now,
			})
		if res.Error != nil {
			return fmt.Errorf("finalizing attempt %d: %w", attempt.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadySubmitted
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Uint("userID", userID).Msg("SubmitAttempt: submission rejected")
		return 0, err
	}

	log.Info().Uint("attemptID", attemptID).Float64("score", total).Msg("SubmitAttempt: attempt finalized")
	return total, nil
}

// processAnswer validates one payload entry against the attempt's quiz,
// persists the answer with its selected options, and returns the score
// contribution.
func (s *submissionService) processAnswer(tx *gorm.DB, attempt *model.Attempt, entry dto.AnswerSubmitDTO) (float64, error) {
	var question model.Question
	if err := tx.Where("id = ? AND quiz_id = ?", entry.QuestionID, attempt.QuizID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("question %d: %w", entry.QuestionID, ErrQuestionNotInQuiz)
		}
		return 0, fmt.Errorf("loading question %d: %w", entry.QuestionID, err)
	}

	selectedIDs := dedupe(entry.SelectedOptions)

	var options []model.Option
	if len(selectedIDs) > 0 {
		if err := tx.Where("id IN ? AND question_id = ?", selectedIDs, question.ID).Find(&options).Error; err != nil {
			return 0, fmt.Errorf("resolving options for question %d: %w", question.ID, err)
		}
		// A shortfall means at least one id was unknown or belongs to another
		// question; reject instead of silently dropping it.
		if len(options) != len(selectedIDs) {
			return 0, fmt.Errorf("question %d: %w", question.ID, ErrOptionNotInQuestion)
		}
	}

	answer := model.Answer{AttemptID: attempt.ID, QuestionID: question.ID}
	if err := tx.Create(&answer).Error; err != nil {
		return 0, fmt.Errorf("recording answer for question %d: %w", question.ID, err)
	}
	for _, opt := range options {
		if err := tx.Create(&model.AnswerOption{AnswerID: answer.ID, OptionID: opt.ID}).Error; err != nil {
			return 0, fmt.Errorf("recording selected option %d: %w", opt.ID, err)
		}
	}

	var correctIDs []uint
	if err := tx.Model(&model.Option{}).
		Where("question_id = ? AND is_correct = ?", question.ID, true).
		Pluck("id", &correctIDs).Error; err != nil {
		return 0, fmt.Errorf("loading answer key for question %d: %w", question.ID, err)
	}

	result, err := grading.Grade(question.Points, correctIDs, selectedIDs)
	if err != nil {
		if errors.Is(err, grading.ErrNoCorrectOptions) {
			return 0, fmt.Errorf("question %d: %w", question.ID, ErrQuestionMisconfigured)
		}
		return 0, fmt.Errorf("grading question %d: %w", question.ID, err)
	}
	return result.Points, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
