package service

import "errors"

// Error taxonomy surfaced to controllers. Every failure aborts the request it
// belongs to; nothing is retried internally.
var (
	// ErrQuizNotFound covers an absent quiz id.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrAttemptNotFound covers both an absent attempt id and an attempt
	// owned by a different user, so callers cannot probe for the existence
	// of other users' attempts.
	ErrAttemptNotFound = errors.New("attempt not found")

	// ErrAlreadySubmitted rejects a second submission against a finalized
	// attempt.
	ErrAlreadySubmitted = errors.New("attempt already submitted")

	// ErrQuestionNotInQuiz rejects a question id that does not belong to the
	// attempt's quiz, including ids valid in some other quiz.
	ErrQuestionNotInQuiz = errors.New("question not found in this quiz")

	// ErrOptionNotInQuestion rejects a selection containing an option id
	// that is unknown or belongs to a different question.
	ErrOptionNotInQuestion = errors.New("selected options do not belong to question")

	// ErrQuestionMisconfigured rejects submissions touching a question with
	// no correct options at all.
	ErrQuestionMisconfigured = errors.New("question has no correct options configured")

	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken rejects registration with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
)
