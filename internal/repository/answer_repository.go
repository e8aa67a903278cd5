package repository

import (
	"github.com/lshigami/Moorhen/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByAttemptID(attemptID uint) ([]model.Answer, error)
	SelectedOptionIDs(answerID uint) ([]uint, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByAttemptID(attemptID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Preload("Question").Where("attempt_id = ?", attemptID).Find(&answers).Error
	return answers, err
}

func (r *answerRepository) SelectedOptionIDs(answerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.AnswerOption{}).
		Where("answer_id = ?", answerID).
		Pluck("option_id", &ids).Error
	return ids, err
}
