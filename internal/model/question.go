package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionSingle    = "single"
	QuestionMulti     = "multi"
	QuestionTrueFalse = "tf"
)

// Question is a gradable unit within a quiz. The Type tag is informational
// only: grading compares selected options to correct options as sets,
// whatever the type.
type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Text        string         `json:"text" gorm:"type:text;not null"`
	Type        string         `json:"type" gorm:"not null;default:'single'"` // "single", "multi", "tf"
	Points      float64        `json:"points" gorm:"not null;default:1"`
	OrderInQuiz int            `json:"order_in_quiz" gorm:"not null;default:0"`
	Options     []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
