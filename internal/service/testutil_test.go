package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/Moorhen/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. Capped to one
// connection so every gorm session sees the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("accessing underlying database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.Attempt{},
		&model.Answer{},
		&model.AnswerOption{},
	); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()
	user := model.User{Username: username, PasswordHash: "x", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}
	return &user
}

// createQuiz seeds a quiz owned by the given user. Each entry of correctness
// describes one question: the option flags in order, with the question worth
// the matching points value.
func createQuiz(t *testing.T, db *gorm.DB, owner *model.User, points []float64, correctness [][]bool) *model.Quiz {
	t.Helper()
	quiz := model.Quiz{Title: "Seeded quiz", CreatedByID: owner.ID}
	for i, flags := range correctness {
		question := model.Question{
			Text:        "Question",
			Type:        model.QuestionSingle,
			Points:      points[i],
			OrderInQuiz: i + 1,
		}
		for _, isCorrect := range flags {
			question.Options = append(question.Options, model.Option{Text: "Option", IsCorrect: isCorrect})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("creating quiz: %v", err)
	}
	// Reload with associations so tests can reference generated ids.
	var loaded model.Quiz
	if err := db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_quiz ASC")
	}).Preload("Questions.Options").First(&loaded, quiz.ID).Error; err != nil {
		t.Fatalf("reloading quiz: %v", err)
	}
	return &loaded
}

func createAttempt(t *testing.T, db *gorm.DB, quiz *model.Quiz, user *model.User) *model.Attempt {
	t.Helper()
	attempt := model.Attempt{QuizID: quiz.ID, UserID: user.ID}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatalf("creating attempt: %v", err)
	}
	return &attempt
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	return n
}
