package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/model"
	"github.com/lshigami/Moorhen/internal/repository"
	"gorm.io/gorm"
)

func newTeacherQuizService(db *gorm.DB) TeacherQuizService {
	return NewTeacherQuizService(
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewOptionRepository(db),
	)
}

func TestCreateQuizWithNestedQuestions(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "teacher", model.RoleTeacher)

	svc := newTeacherQuizService(db)
	resp, err := svc.CreateQuiz(owner.ID, dto.QuizCreateDTO{
		Title:       "Go basics",
		Description: "Introductory quiz",
		Questions: []dto.QuestionCreateDTO{
			{
				Text:        "What keyword declares a variable?",
				Type:        model.QuestionSingle,
				Points:      2,
				OrderInQuiz: 1,
				Options: []dto.OptionCreateDTO{
					{Text: "var", IsCorrect: true},
					{Text: "let"},
					{Text: "def"},
				},
			},
			{
				Text:        "Goroutines are OS threads.",
				Type:        model.QuestionTrueFalse,
				OrderInQuiz: 2,
				Options: []dto.OptionCreateDTO{
					{Text: "true"},
					{Text: "false", IsCorrect: true},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID == 0 {
		t.Fatal("expected created quiz to have an id")
	}
	if len(resp.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(resp.Questions))
	}
	// Omitted points default to 1.
	if resp.Questions[1].Points != 1 {
		t.Fatalf("default points = %v, want 1", resp.Questions[1].Points)
	}

	if n := countRows(t, db, &model.Option{}); n != 5 {
		t.Fatalf("expected 5 options persisted, got %d", n)
	}
}

func TestCreateQuizRejectsDuplicateOrders(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "teacher", model.RoleTeacher)

	svc := newTeacherQuizService(db)
	_, err := svc.CreateQuiz(owner.ID, dto.QuizCreateDTO{
		Title: "Broken quiz",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Q1", Type: model.QuestionSingle, OrderInQuiz: 1, Options: []dto.OptionCreateDTO{{Text: "a", IsCorrect: true}, {Text: "b"}}},
			{Text: "Q2", Type: model.QuestionSingle, OrderInQuiz: 1, Options: []dto.OptionCreateDTO{{Text: "a", IsCorrect: true}, {Text: "b"}}},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate order_in_quiz") {
		t.Fatalf("expected duplicate order error, got %v", err)
	}
}

func TestUpdateQuizMetadata(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "teacher", model.RoleTeacher)
	quiz := createQuiz(t, db, owner, []float64{1}, [][]bool{{true, false}})

	svc := newTeacherQuizService(db)
	resp, err := svc.UpdateQuiz(quiz.ID, dto.QuizUpdateDTO{Title: "Renamed", Description: "Updated"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Title != "Renamed" {
		t.Fatalf("title = %q, want %q", resp.Title, "Renamed")
	}

	if _, err := svc.UpdateQuiz(999, dto.QuizUpdateDTO{Title: "x"}); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestAddQuestionAndOption(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "teacher", model.RoleTeacher)
	quiz := createQuiz(t, db, owner, []float64{1}, [][]bool{{true, false}})

	svc := newTeacherQuizService(db)
	question, err := svc.AddQuestion(quiz.ID, dto.QuestionCreateDTO{
		Text:        "Extra question",
		Type:        model.QuestionMulti,
		Points:      3,
		OrderInQuiz: 2,
		Options: []dto.OptionCreateDTO{
			{Text: "a", IsCorrect: true},
			{Text: "b", IsCorrect: true},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question.QuizID != quiz.ID {
		t.Fatalf("question quiz = %d, want %d", question.QuizID, quiz.ID)
	}

	if err := svc.AddOption(question.ID, dto.OptionCreateDTO{Text: "c"}); err != nil {
		t.Fatalf("unexpected error adding option: %v", err)
	}
	var n int64
	db.Model(&model.Option{}).Where("question_id = ?", question.ID).Count(&n)
	if n != 3 {
		t.Fatalf("expected 3 options on question, got %d", n)
	}

	if _, err := svc.AddQuestion(999, dto.QuestionCreateDTO{
		Text: "x", Type: model.QuestionSingle,
		Options: []dto.OptionCreateDTO{{Text: "a", IsCorrect: true}, {Text: "b"}},
	}); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}
