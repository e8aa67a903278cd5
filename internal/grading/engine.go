package grading

import "errors"

// ErrNoCorrectOptions means the question has no option flagged correct. No
// selection could ever score, so callers must reject the whole submission
// instead of silently awarding zero.
var ErrNoCorrectOptions = errors.New("question has no correct options configured")

// Result is the outcome of grading a single answered question.
type Result struct {
	Correct bool
	Points  float64
}

// Grade decides correctness for one question: the selected option ids must
// equal the correct option ids exactly, no missing correct option and no
// extra incorrect one. Single-choice, multi-choice and true/false questions
// are all graded by this same rule. A correct selection earns the question's
// full point value, anything else earns zero. An empty selection is a valid
// "answered nothing" input and simply scores zero.
func Grade(points float64, correctIDs, selectedIDs []uint) (Result, error) {
	if len(correctIDs) == 0 {
		return Result{}, ErrNoCorrectOptions
	}
	if setEqual(correctIDs, selectedIDs) {
		return Result{Correct: true, Points: points}, nil
	}
	return Result{}, nil
}

func setEqual(a, b []uint) bool {
	as := toSet(a)
	bs := toSet(b)
	if len(as) != len(bs) {
		return false
	}
	for id := range as {
		if _, ok := bs[id]; !ok {
			return false
		}
	}
	return true
}

func toSet(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
