package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer records the options a user selected for one question within an
// attempt. Selections go through the explicit AnswerOption join table.
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	AttemptID  uint           `json:"attempt_id" gorm:"not null;index"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Question   Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// AnswerOption links an answer to one selected option. The composite primary
// key keeps a given option from being recorded twice for the same answer.
type AnswerOption struct {
	AnswerID uint   `gorm:"primaryKey;autoIncrement:false" json:"answer_id"`
	OptionID uint   `gorm:"primaryKey;autoIncrement:false" json:"option_id"`
	Option   Option `json:"option,omitempty" gorm:"foreignKey:OptionID"`
}
