package repository

import (
	"github.com/lshigami/Moorhen/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	// FindByIDAndUser filters on both id and owner, so a foreign attempt is
	// indistinguishable from a missing one.
	FindByIDAndUser(id, userID uint) (*model.Attempt, error)
	FindByIDAndUserWithAnswers(id, userID uint) (*model.Attempt, error)
	FindAllByUser(userID uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByIDAndUser(id, userID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&attempt).Error
	return &attempt, err
}

func (r *attemptRepository) FindByIDAndUserWithAnswers(id, userID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Quiz").
		Preload("Answers.Question").
		Where("id = ? AND user_id = ?", id, userID).
		First(&attempt).Error
	return &attempt, err
}

func (r *attemptRepository) FindAllByUser(userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("user_id = ?", userID).Order("started_at DESC, id DESC").Find(&attempts).Error
	return attempts, err
}
