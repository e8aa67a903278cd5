package dto

import "time"

// OptionCreateDTO is used within question creation for quiz authoring.
type OptionCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionCreateDTO is used within QuizCreateDTO and for adding a question to
// an existing quiz.
type QuestionCreateDTO struct {
	Text        string            `json:"text" binding:"required"`
	Type        string            `json:"type" binding:"required,oneof=single multi tf"`
	Points      float64           `json:"points" binding:"omitempty,gte=0"`
	OrderInQuiz int               `json:"order_in_quiz" binding:"omitempty,min=0"`
	Options     []OptionCreateDTO `json:"options" binding:"required,min=2,dive"`
}

// QuizCreateDTO is for a teacher to create a quiz with all its questions.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// QuizUpdateDTO updates quiz metadata only; questions are managed through
// their own endpoints.
type QuizUpdateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
}

// OptionResponseDTO deliberately has no correctness flag so quiz content can
// be shown to students without leaking the answer key.
type OptionResponseDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionResponseDTO struct {
	ID          uint                `json:"id"`
	QuizID      uint                `json:"quiz_id"`
	Text        string              `json:"text"`
	Type        string              `json:"type"`
	Points      float64             `json:"points"`
	OrderInQuiz int                 `json:"order_in_quiz"`
	Options     []OptionResponseDTO `json:"options,omitempty"`
}

// QuizResponseDTO is the full quiz as shown to a user taking it.
type QuizResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// QuizSummaryDTO is used for listing quizzes.
type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
