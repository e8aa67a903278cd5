package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/model"
)

func TestSubmitAttemptExactMatchScores(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	// One single-choice question worth 2 points: options A(correct), B, C.
	quiz := createQuiz(t, db, user, []float64{2}, [][]bool{{true, false, false}})
	question := quiz.Questions[0]
	optionA := question.Options[0]

	attempt := createAttempt(t, db, quiz, user)
	svc := NewSubmissionService(db)

	score, err := svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: question.ID, SelectedOptions: []uint{optionA.ID}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 2 {
		t.Fatalf("expected score 2, got %v", score)
	}

	var reloaded model.Attempt
	if err := db.First(&reloaded, attempt.ID).Error; err != nil {
		t.Fatalf("reloading attempt: %v", err)
	}
	if !reloaded.IsSubmitted {
		t.Fatal("attempt should be submitted")
	}
	if reloaded.FinishedAt == nil {
		t.Fatal("finished_at should be set")
	}
	if reloaded.Score != 2 {
		t.Fatalf("persisted score = %v, want 2", reloaded.Score)
	}
	if n := countRows(t, db, &model.Answer{}); n != 1 {
		t.Fatalf("expected 1 answer row, got %d", n)
	}
	if n := countRows(t, db, &model.AnswerOption{}); n != 1 {
		t.Fatalf("expected 1 answer option row, got %d", n)
	}
}

func TestSubmitAttemptSupersetScoresZero(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	quiz := createQuiz(t, db, user, []float64{2}, [][]bool{{true, false, false}})
	question := quiz.Questions[0]

	attempt := createAttempt(t, db, quiz, user)
	svc := NewSubmissionService(db)

	score, err := svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: question.ID, SelectedOptions: []uint{question.Options[0].ID, question.Options[1].ID}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0 {
		t.Fatalf("superset selection must score 0, got %v", score)
	}
}

func TestSubmitAttemptEmptySelectionScoresZero(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	quiz := createQuiz(t, db, user, []float64{2}, [][]bool{{true, false, false}})

	attempt := createAttempt(t, db, quiz, user)
	svc := NewSubmissionService(db)

	score, err := svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: quiz.Questions[0].ID, SelectedOptions: []uint{}},
		},
	})
	if err != nil {
		t.Fatalf("empty selection must not error: %v", err)
	}
	if score != 0 {
		t.Fatalf("empty selection must score 0, got %v", score)
	}

	var reloaded model.Attempt
	db.First(&reloaded, attempt.ID)
	if !reloaded.IsSubmitted {
		t.Fatal("attempt should still be finalized")
	}
}

func TestSubmitAttemptOmittedQuestionScoresNothing(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	// Two questions worth 1 and 3 points; only the first gets answered.
	quiz := createQuiz(t, db, user, []float64{1, 3}, [][]bool{
		{true, false},
		{true, false},
	})
	first := quiz.Questions[0]

	attempt := createAttempt(t, db, quiz, user)
	svc := NewSubmissionService(db)

	score, err := svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: first.ID, SelectedOptions: []uint{first.Options[0].ID}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 1 {
		t.Fatalf("expected score 1 for the answered question only, got %v", score)
	}
	if n := countRows(t, db, &model.Answer{}); n != 1 {
		t.Fatalf("omitted question must not produce an answer row, got %d rows", n)
	}
}

func TestSubmitAttemptMultiChoiceNeedsFullSet(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	quiz := createQuiz(t, db, user, []float64{4}, [][]bool{{true, true, false}})
	question := quiz.Questions[0]

	svc := NewSubmissionService(db)

	// Half the correct set earns nothing.
	attempt := createAttempt(t, db, quiz, user)
	score, err := svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: question.ID, SelectedOptions: []uint{question.Options[0].ID}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0 {
		t.Fatalf("partial selection must score 0, got %v", score)
	}

	// Both correct options earn the full value, duplicates collapse.
	attempt = createAttempt(t, db, quiz, user)
	score, err = svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: question.ID, SelectedOptions: []uint{
				question.Options[0].ID, question.Options[1].ID, question.Options[0].ID,
			}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 4 {
		t.Fatalf("expected full 4 points, got %v", score)
	}
}

func TestSubmitAttemptIdempotencyGuard(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	quiz := createQuiz(t, db, user, []float64{2}, [][]bool{{true, false}})
	question := quiz.Questions[0]

	attempt := createAttempt(t, db, quiz, user)
	svc := NewSubmissionService(db)

	payload := dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: question.ID, SelectedOptions: []uint{question.Options[0].ID}},
		},
	}
	score, err := svc.SubmitAttempt(attempt.ID, user.ID, payload)
	if err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	// Second submission with a different (wrong) selection must be rejected
	// and must not touch the recorded score.
	_, err = svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: question.ID, SelectedOptions: []uint{question.Options[1].ID}},
		},
	})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}

	var reloaded model.Attempt
	db.First(&reloaded, attempt.ID)
	if reloaded.Score != score {
		t.Fatalf("score changed from %v to %v after rejected resubmission", score, reloaded.Score)
	}
	if n := countRows(t, db, &model.Answer{}); n != 1 {
		t.Fatalf("rejected resubmission must not leave answer rows, got %d", n)
	}
}

func TestSubmitAttemptMisconfiguredQuestionRollsBack(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	// First question is fine, second has no correct option at all.
	quiz := createQuiz(t, db, user, []float64{1, 1}, [][]bool{
		{true, false},
		{false, false},
	})
	good, bad := quiz.Questions[0], quiz.Questions[1]

	attempt := createAttempt(t, db, quiz, user)
	svc := NewSubmissionService(db)

	_, err := svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: good.ID, SelectedOptions: []uint{good.Options[0].ID}},
			{QuestionID: bad.ID, SelectedOptions: []uint{}},
		},
	})
	if !errors.Is(err, ErrQuestionMisconfigured) {
		t.Fatalf("expected ErrQuestionMisconfigured, got %v", err)
	}

	var reloaded model.Attempt
	db.First(&reloaded, attempt.ID)
	if reloaded.IsSubmitted {
		t.Fatal("failed submission must leave attempt unsubmitted")
	}
	if reloaded.Score != 0 {
		t.Fatalf("failed submission must leave score 0, got %v", reloaded.Score)
	}
	if n := countRows(t, db, &model.Answer{}); n != 0 {
		t.Fatalf("failed submission must roll back all answers, found %d", n)
	}
	if n := countRows(t, db, &model.AnswerOption{}); n != 0 {
		t.Fatalf("failed submission must roll back all answer options, found %d", n)
	}
}

func TestSubmitAttemptCrossQuizQuestionRejected(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	quiz := createQuiz(t, db, user, []float64{1}, [][]bool{{true, false}})
	other := createQuiz(t, db, user, []float64{1}, [][]bool{{true, false}})
	foreign := other.Questions[0]

	attempt := createAttempt(t, db, quiz, user)
	svc := NewSubmissionService(db)

	_, err := svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: foreign.ID, SelectedOptions: []uint{foreign.Options[0].ID}},
		},
	})
	if !errors.Is(err, ErrQuestionNotInQuiz) {
		t.Fatalf("expected ErrQuestionNotInQuiz, got %v", err)
	}
}

func TestSubmitAttemptForeignOptionRejectedAndRolledBack(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	quiz := createQuiz(t, db, user, []float64{1, 1}, [][]bool{
		{true, false},
		{true, false},
	})
	first, second := quiz.Questions[0], quiz.Questions[1]

	attempt := createAttempt(t, db, quiz, user)
	svc := NewSubmissionService(db)

	// Option id valid in the same quiz but for a different question.
	_, err := svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: first.ID, SelectedOptions: []uint{first.Options[0].ID}},
			{QuestionID: second.ID, SelectedOptions: []uint{first.Options[1].ID}},
		},
	})
	if !errors.Is(err, ErrOptionNotInQuestion) {
		t.Fatalf("expected ErrOptionNotInQuestion, got %v", err)
	}
	if n := countRows(t, db, &model.Answer{}); n != 0 {
		t.Fatalf("no answers should survive the rollback, found %d", n)
	}
}

func TestSubmitAttemptUnknownOptionRejected(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", model.RoleStudent)
	quiz := createQuiz(t, db, user, []float64{1}, [][]bool{{true, false}})
	question := quiz.Questions[0]

	attempt := createAttempt(t, db, quiz, user)
	svc := NewSubmissionService(db)

	_, err := svc.SubmitAttempt(attempt.ID, user.ID, dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: question.ID, SelectedOptions: []uint{99999}},
		},
	})
	if !errors.Is(err, ErrOptionNotInQuestion) {
		t.Fatalf("expected ErrOptionNotInQuestion, got %v", err)
	}
}

func TestSubmitAttemptOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "alice", model.RoleStudent)
	intruder := createUser(t, db, "mallory", model.RoleStudent)
	quiz := createQuiz(t, db, owner, []float64{1}, [][]bool{{true, false}})
	question := quiz.Questions[0]

	attempt := createAttempt(t, db, quiz, owner)
	svc := NewSubmissionService(db)

	payload := dto.AttemptSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: question.ID, SelectedOptions: []uint{question.Options[0].ID}},
		},
	}

	// A foreign attempt and a missing attempt must be indistinguishable.
	_, foreignErr := svc.SubmitAttempt(attempt.ID, intruder.ID, payload)
	_, missingErr := svc.SubmitAttempt(424242, intruder.ID, payload)
	if !errors.Is(foreignErr, ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound for foreign attempt, got %v", foreignErr)
	}
	if !errors.Is(missingErr, ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound for missing attempt, got %v", missingErr)
	}
	if foreignErr.Error() != missingErr.Error() {
		t.Fatalf("foreign and missing attempts must yield identical errors: %q vs %q", foreignErr, missingErr)
	}

	// The owner can still submit afterwards.
	if _, err := svc.SubmitAttempt(attempt.ID, owner.ID, payload); err != nil {
		t.Fatalf("owner submission failed: %v", err)
	}
}
