package quiz

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// MaxWrongAttempts is the number of incorrect submissions after which the
// engine reveals the correct answer and moves on.
const MaxWrongAttempts = 3

// Kind identifies what a quiz was built from.
type Kind string

const (
	KindAyah Kind = "ayah"
	KindWord Kind = "word"
)

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	// ID is the question's position-independent identifier within its quiz.
	ID int

	// Word is the Arabic prompt shown to the learner.
	Word string

	// Translation is the gloss of Word, shown on the completion review.
	Translation string

	// Options are the candidate answers. Exactly one equals CorrectAnswer.
	Options []string

	// CorrectAnswer is compared against submissions by value equality.
	CorrectAnswer string
}

// valid reports whether the question satisfies the load-time integrity
// rules: a non-empty correct answer, OptionCount options, and the correct
// answer present among them.
func (q Question) valid() bool {
	if q.CorrectAnswer == "" || len(q.Options) != OptionCount {
		return false
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return true
		}
	}
	return false
}
