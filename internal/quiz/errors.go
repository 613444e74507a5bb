package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyQuiz is returned by Load when the question list is empty.
var ErrEmptyQuiz = errors.New("quiz has no questions")

// InvalidQuestionsError reports questions that failed load-time validation.
// The whole load is rejected; the session stays in the Loading phase.
type InvalidQuestionsError struct {
	// Indices are the 0-based positions of the offending questions.
	Indices []int
}

func (e *InvalidQuestionsError) Error() string {
	parts := make([]string, len(e.Indices))
	for i, idx := range e.Indices {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return fmt.Sprintf("invalid questions at indices [%s]", strings.Join(parts, ", "))
}
