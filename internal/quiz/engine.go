package quiz

import "fmt"

// Phase is the lifecycle phase of a quiz session.
type Phase int

const (
	PhaseLoading   Phase = iota // no questions loaded yet
	PhaseAwaiting               // current question waits for an answer
	PhaseFeedback               // answer recorded, feedback on display
	PhaseCompleted              // every question has been advanced past
)

// Session drives an ordered list of questions from load to completion.
// All operations are synchronous; the caller owns feedback timing and must
// call Advance exactly once per question after its feedback display.
type Session struct {
	Kind     Kind
	TargetID string

	questions   []Question
	index       int
	answers     map[int]string
	wrongCounts map[int]int
	revealed    map[int]bool
	score       int
	completed   bool
	phase       Phase
}

// Outcome describes the effect of a single Submit call.
type Outcome struct {
	// Correct is true when the submitted answer matched, or when the
	// engine force-filled the correct answer after the final miss.
	Correct bool

	// Revealed is true when this submission triggered the auto-reveal.
	Revealed bool

	// WrongCount is the question's wrong-attempt count after this call.
	WrongCount int
}

// NewSession returns an empty session in the Loading phase.
func NewSession() *Session {
	return &Session{
		answers:     make(map[int]string),
		wrongCounts: make(map[int]int),
		revealed:    make(map[int]bool),
	}
}

// Load validates all questions eagerly and enters the first question.
// An empty list fails with ErrEmptyQuiz; any malformed question fails the
// whole load with *InvalidQuestionsError. On failure the session is left
// untouched in the Loading phase.
func (s *Session) Load(kind Kind, targetID string, questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyQuiz
	}

	var bad []int
	for i, q := range questions {
		if !q.valid() {
			bad = append(bad, i)
		}
	}
	if len(bad) > 0 {
		return &InvalidQuestionsError{Indices: bad}
	}

	s.Kind = kind
	s.TargetID = targetID
	s.questions = questions
	s.zero()
	s.phase = PhaseAwaiting
	return nil
}

// Submit records an answer for the question at index, which must be the
// current one. While feedback is showing, a repeat submission is ignored
// (no-op, no double credit). A correct answer scores one point; an
// incorrect answer bumps the wrong count, and the third miss force-fills
// the correct answer with one point of partial credit.
//
// Submitting for a non-current index is a programmer error and panics.
func (s *Session) Submit(index int, answer string) Outcome {
	if s.phase == PhaseFeedback {
		return Outcome{WrongCount: s.wrongCounts[index]}
	}
	if s.phase != PhaseAwaiting {
		panic(fmt.Sprintf("quiz: Submit in phase %d", s.phase))
	}
	if index != s.index {
		panic(fmt.Sprintf("quiz: Submit for index %d, current is %d", index, s.index))
	}

	q := s.questions[index]
	s.answers[index] = answer

	out := Outcome{Correct: answer == q.CorrectAnswer}
	if out.Correct {
		s.score++
	} else {
		s.wrongCounts[index]++
		if s.wrongCounts[index] >= MaxWrongAttempts {
			// Reveal: fill in the correct answer and grant partial
			// credit. The wrong count stays at MaxWrongAttempts.
			s.answers[index] = q.CorrectAnswer
			s.revealed[index] = true
			s.score++
			out.Correct = true
			out.Revealed = true
		}
	}
	out.WrongCount = s.wrongCounts[index]

	if out.Correct {
		s.phase = PhaseFeedback
	}
	return out
}

// Advance moves from feedback to the next question, or to Completed after
// the last one. It is only meaningful in the Feedback phase; anywhere else
// it is a no-op so a late timer cannot skip a question.
func (s *Session) Advance() {
	if s.phase != PhaseFeedback {
		return
	}
	if s.index+1 < len(s.questions) {
		s.index++
		s.phase = PhaseAwaiting
		return
	}
	s.completed = true
	s.phase = PhaseCompleted
}

// Retry restarts the loaded quiz from the first question with all counters
// zeroed. The question list and order are preserved.
func (s *Session) Retry() {
	if len(s.questions) == 0 {
		return
	}
	s.zero()
	s.phase = PhaseAwaiting
}

// Reset discards the questions and returns to the Loading phase.
func (s *Session) Reset() {
	s.Kind = ""
	s.TargetID = ""
	s.questions = nil
	s.zero()
	s.phase = PhaseLoading
}

func (s *Session) zero() {
	s.index = 0
	s.answers = make(map[int]string)
	s.wrongCounts = make(map[int]int)
	s.revealed = make(map[int]bool)
	s.score = 0
	s.completed = false
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the 0-based position of the current question.
func (s *Session) Index() int { return s.index }

// Len returns the number of loaded questions.
func (s *Session) Len() int { return len(s.questions) }

// Current returns the question at the current index, or nil outside an
// active session.
func (s *Session) Current() *Question {
	if s.phase != PhaseAwaiting && s.phase != PhaseFeedback {
		return nil
	}
	return &s.questions[s.index]
}

// Questions returns the loaded question list.
func (s *Session) Questions() []Question { return s.questions }

// Answer returns the recorded answer for index, if any.
func (s *Session) Answer(index int) (string, bool) {
	a, ok := s.answers[index]
	return a, ok
}

// WrongCount returns the wrong-attempt count for index.
func (s *Session) WrongCount(index int) int { return s.wrongCounts[index] }

// Revealed reports whether index was auto-resolved after repeated misses.
func (s *Session) Revealed(index int) bool { return s.revealed[index] }

// Score returns the cumulative score.
func (s *Session) Score() int { return s.score }

// Completed reports whether the session has been advanced past its last
// question. Only Retry or Reset can clear it.
func (s *Session) Completed() bool { return s.completed }
