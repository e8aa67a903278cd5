package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Moorhen/internal/model"
	"github.com/lshigami/Moorhen/internal/repository"
)

func TestGetQuizDetails(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "teacher", model.RoleTeacher)
	quiz := createQuiz(t, db, user, []float64{2, 3}, [][]bool{
		{true, false, false},
		{true, true, false},
	})

	svc := NewQuizService(repository.NewQuizRepository(db))
	resp, err := svc.GetQuizDetails(quiz.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != quiz.ID {
		t.Fatalf("quiz id = %d, want %d", resp.ID, quiz.ID)
	}
	if len(resp.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(resp.Questions))
	}
	if len(resp.Questions[0].Options) != 3 {
		t.Fatalf("expected 3 options on first question, got %d", len(resp.Questions[0].Options))
	}
	// Questions come back in display order.
	if resp.Questions[0].OrderInQuiz > resp.Questions[1].OrderInQuiz {
		t.Fatal("questions are not ordered by order_in_quiz")
	}
}

func TestGetQuizDetailsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db))
	if _, err := svc.GetQuizDetails(12345); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestGetAllQuizzesReportsQuestionCounts(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "teacher", model.RoleTeacher)
	createQuiz(t, db, user, []float64{1, 1, 1}, [][]bool{
		{true, false},
		{true, false},
		{true, false},
	})
	createQuiz(t, db, user, []float64{1}, [][]bool{{true, false}})

	svc := NewQuizService(repository.NewQuizRepository(db))
	quizzes, err := svc.GetAllQuizzes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(quizzes))
	}
	counts := map[int]bool{}
	for _, q := range quizzes {
		counts[q.QuestionCount] = true
	}
	if !counts[3] || !counts[1] {
		t.Fatalf("expected question counts {3,1}, got %+v", quizzes)
	}
}
