package dto

import "time"

// AttemptCreateDTO starts a new attempt. The owner is taken from the
// authenticated identity, never from the payload.
type AttemptCreateDTO struct {
	QuizID uint `json:"quiz" binding:"required"`
}

// AnswerSubmitDTO is one entry of a submission payload.
type AnswerSubmitDTO struct {
	QuestionID      uint   `json:"question" binding:"required"`
	SelectedOptions []uint `json:"selected_options"`
}

// AttemptSubmitDTO is the request DTO for submitting a whole attempt. The
// answers sequence must be non-empty; schema validation happens before any
// per-question processing.
type AttemptSubmitDTO struct {
	Answers []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

// ScoreResponseDTO is returned by a successful submission.
type ScoreResponseDTO struct {
	Score float64 `json:"score"`
}

// AttemptSummaryDTO is used for listing a user's own attempts.
type AttemptSummaryDTO struct {
	ID          uint       `json:"id"`
	QuizID      uint       `json:"quiz_id"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	Score       float64    `json:"score"`
	IsSubmitted bool       `json:"is_submitted"`
}

// AnswerResponseDTO shows one recorded answer within an attempt.
type AnswerResponseDTO struct {
	ID              uint   `json:"id"`
	QuestionID      uint   `json:"question_id"`
	QuestionText    string `json:"question_text,omitempty"`
	SelectedOptions []uint `json:"selected_options"`
}

// AttemptDetailDTO is the full view of one attempt for its owner.
type AttemptDetailDTO struct {
	ID          uint                `json:"id"`
	QuizID      uint                `json:"quiz_id"`
	QuizTitle   string              `json:"quiz_title,omitempty"`
	StartedAt   time.Time           `json:"started_at"`
	FinishedAt  *time.Time          `json:"finished_at,omitempty"`
	Score       float64             `json:"score"`
	IsSubmitted bool                `json:"is_submitted"`
	Answers     []AnswerResponseDTO `json:"answers,omitempty"`
}
