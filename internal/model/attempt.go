package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt is one user's instance of taking a quiz. It starts pending and
// transitions exactly once to submitted; after that the score is final and
// the row is never mutated again.
type Attempt struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz        Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	User        User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	StartedAt   time.Time      `json:"started_at" gorm:"autoCreateTime"`
	FinishedAt  *time.Time     `json:"finished_at,omitempty"`
	Score       float64        `json:"score" gorm:"not null;default:0"`
	IsSubmitted bool           `json:"is_submitted" gorm:"not null;default:false"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
