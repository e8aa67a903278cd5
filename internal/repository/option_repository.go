package repository

import (
	"github.com/lshigami/Moorhen/internal/model"
	"gorm.io/gorm"
)

type OptionRepository interface {
	Create(option *model.Option) error
	FindByIDsForQuestion(ids []uint, questionID uint) ([]model.Option, error)
	CorrectIDsForQuestion(questionID uint) ([]uint, error)
	Update(option *model.Option) error
	Delete(id uint) error
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) Create(option *model.Option) error {
	return r.db.Create(option).Error
}

// FindByIDsForQuestion returns only the options that both match the given ids
// and belong to the question. Callers compare the result size against the
// number of distinct ids to detect foreign or unknown options.
func (r *optionRepository) FindByIDsForQuestion(ids []uint, questionID uint) ([]model.Option, error) {
	var options []model.Option
	if len(ids) == 0 {
		return options, nil
	}
	err := r.db.Where("id IN ? AND question_id = ?", ids, questionID).Find(&options).Error
	return options, err
}

func (r *optionRepository) CorrectIDsForQuestion(questionID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Option{}).
		Where("question_id = ? AND is_correct = ?", questionID, true).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *optionRepository) Update(option *model.Option) error {
	return r.db.Save(option).Error
}

func (r *optionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Option{}, id).Error
}
