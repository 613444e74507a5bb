package quiz

import (
	"errors"
	"testing"
)

func basmalaQuestions() []Question {
	return []Question{
		{
			ID:            1,
			Word:          "بِسْمِ",
			Translation:   "In the name",
			Options:       []string{"In the name", "All praise", "The Most Gracious", "Master"},
			CorrectAnswer: "In the name",
		},
		{
			ID:            2,
			Word:          "اللَّهِ",
			Translation:   "of Allah",
			Options:       []string{"of the Day", "of Allah", "of Judgment", "Lord"},
			CorrectAnswer: "of Allah",
		},
		{
			ID:            3,
			Word:          "الرَّحِيمِ",
			Translation:   "the Most Merciful",
			Options:       []string{"the Most Gracious", "Lord", "the Most Merciful", "Master"},
			CorrectAnswer: "the Most Merciful",
		},
	}
}

func loadedSession(t *testing.T, questions []Question) *Session {
	t.Helper()
	s := NewSession()
	if err := s.Load(KindAyah, "112:1", questions); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestLoad_Empty(t *testing.T) {
	s := NewSession()
	err := s.Load(KindAyah, "112:1", nil)
	if !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("Load(empty) error = %v, want ErrEmptyQuiz", err)
	}
	if s.Phase() != PhaseLoading {
		t.Errorf("Phase = %d, want PhaseLoading", s.Phase())
	}
}

func TestLoad_InvalidQuestions(t *testing.T) {
	qs := basmalaQuestions()
	qs[0].CorrectAnswer = ""                   // missing answer
	qs[2].Options = []string{"Lord", "Master"} // wrong option count
	qs = append(qs, Question{                  // answer not among options
		ID: 4, Word: "x", Translation: "y",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "y",
	})

	s := NewSession()
	err := s.Load(KindAyah, "112:1", qs)

	var invalid *InvalidQuestionsError
	if !errors.As(err, &invalid) {
		t.Fatalf("Load() error = %v, want *InvalidQuestionsError", err)
	}
	want := []int{0, 2, 3}
	if len(invalid.Indices) != len(want) {
		t.Fatalf("Indices = %v, want %v", invalid.Indices, want)
	}
	for i := range want {
		if invalid.Indices[i] != want[i] {
			t.Errorf("Indices[%d] = %d, want %d", i, invalid.Indices[i], want[i])
		}
	}
	if s.Phase() != PhaseLoading {
		t.Errorf("failed load must not enter InProgress, phase = %d", s.Phase())
	}
}

func TestLoad_InitialState(t *testing.T) {
	s := loadedSession(t, basmalaQuestions())

	if s.Phase() != PhaseAwaiting {
		t.Errorf("Phase = %d, want PhaseAwaiting", s.Phase())
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, want 0", s.Score())
	}
	for i := 0; i < s.Len(); i++ {
		if s.WrongCount(i) != 0 {
			t.Errorf("WrongCount(%d) = %d, want 0", i, s.WrongCount(i))
		}
	}
}

func TestSubmit_AllCorrect(t *testing.T) {
	qs := basmalaQuestions()
	s := loadedSession(t, qs)

	for i, q := range qs {
		out := s.Submit(i, q.CorrectAnswer)
		if !out.Correct {
			t.Fatalf("question %d: Correct = false, want true", i)
		}
		if s.Phase() != PhaseFeedback {
			t.Fatalf("question %d: phase = %d, want PhaseFeedback", i, s.Phase())
		}
		s.Advance()
	}

	if s.Score() != len(qs) {
		t.Errorf("Score = %d, want %d", s.Score(), len(qs))
	}
	if !s.Completed() {
		t.Error("Completed = false, want true after final Advance")
	}
}

func TestSubmit_WrongStaysOnQuestion(t *testing.T) {
	s := loadedSession(t, basmalaQuestions())

	out := s.Submit(0, "All praise")
	if out.Correct {
		t.Error("Correct = true for a wrong answer")
	}
	if out.WrongCount != 1 {
		t.Errorf("WrongCount = %d, want 1", out.WrongCount)
	}
	if s.Phase() != PhaseAwaiting {
		t.Errorf("phase = %d, want PhaseAwaiting (learner retries)", s.Phase())
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, want 0", s.Score())
	}
}

func TestSubmit_WrongTwiceThenCorrect(t *testing.T) {
	qs := basmalaQuestions()[:1]
	s := loadedSession(t, qs)

	s.Submit(0, "All praise")
	s.Submit(0, "Master")
	out := s.Submit(0, "In the name")

	if !out.Correct {
		t.Error("Correct = false for the right answer")
	}
	if s.WrongCount(0) != 2 {
		t.Errorf("WrongCount = %d, want 2", s.WrongCount(0))
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}

	s.Advance()
	if !s.Completed() {
		t.Error("Completed = false after advancing past last question")
	}
}

func TestSubmit_AutoRevealAfterThreeMisses(t *testing.T) {
	qs := basmalaQuestions()[:1]
	s := loadedSession(t, qs)

	s.Submit(0, "All praise")
	s.Submit(0, "Master")
	out := s.Submit(0, "The Most Gracious")

	if !out.Revealed {
		t.Error("Revealed = false on the third miss")
	}
	if !out.Correct {
		t.Error("Correct = false, reveal grants credit")
	}
	if s.WrongCount(0) != 3 {
		t.Errorf("WrongCount = %d, want 3 (synthetic submit must not bump it)", s.WrongCount(0))
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1 (partial credit)", s.Score())
	}
	if a, _ := s.Answer(0); a != "In the name" {
		t.Errorf("Answer(0) = %q, want the correct answer filled in", a)
	}
	if !s.Revealed(0) {
		t.Error("Revealed(0) = false, want true")
	}
	if s.Phase() != PhaseFeedback {
		t.Errorf("phase = %d, want PhaseFeedback", s.Phase())
	}
}

func TestSubmit_NoOpWhileShowingFeedback(t *testing.T) {
	s := loadedSession(t, basmalaQuestions())

	s.Submit(0, "In the name")
	score, wrong := s.Score(), s.WrongCount(0)

	out := s.Submit(0, "In the name")
	if out.Correct {
		t.Error("repeat submission must not report Correct")
	}
	if s.Score() != score {
		t.Errorf("Score changed %d -> %d on repeat submission", score, s.Score())
	}
	if s.WrongCount(0) != wrong {
		t.Errorf("WrongCount changed %d -> %d on repeat submission", wrong, s.WrongCount(0))
	}
}

func TestSubmit_WrongIndexPanics(t *testing.T) {
	s := loadedSession(t, basmalaQuestions())

	defer func() {
		if recover() == nil {
			t.Error("Submit for a non-current index must panic")
		}
	}()
	s.Submit(2, "Lord")
}

func TestAdvance_OutsideFeedbackIsNoOp(t *testing.T) {
	s := loadedSession(t, basmalaQuestions())

	s.Advance() // still awaiting an answer
	if s.Index() != 0 || s.Phase() != PhaseAwaiting {
		t.Errorf("stray Advance moved the session: index=%d phase=%d", s.Index(), s.Phase())
	}
}

func TestRetry_ResetsCountersKeepsQuestions(t *testing.T) {
	qs := basmalaQuestions()
	s := loadedSession(t, qs)

	for i, q := range qs {
		if i == 1 {
			s.Submit(i, "wrong")
		}
		s.Submit(i, q.CorrectAnswer)
		s.Advance()
	}
	if !s.Completed() {
		t.Fatal("expected completed session")
	}

	s.Retry()

	if s.Completed() {
		t.Error("Completed = true after Retry")
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, want 0", s.Score())
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
	for i := range qs {
		if s.WrongCount(i) != 0 {
			t.Errorf("WrongCount(%d) = %d, want 0", i, s.WrongCount(i))
		}
	}
	got := s.Questions()
	if len(got) != len(qs) {
		t.Fatalf("len(Questions) = %d, want %d", len(got), len(qs))
	}
	for i := range qs {
		if got[i].Word != qs[i].Word {
			t.Errorf("question %d reordered: %q != %q", i, got[i].Word, qs[i].Word)
		}
	}
}

func TestReset_BackToLoading(t *testing.T) {
	s := loadedSession(t, basmalaQuestions())
	s.Submit(0, "In the name")

	s.Reset()

	if s.Phase() != PhaseLoading {
		t.Errorf("Phase = %d, want PhaseLoading", s.Phase())
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if s.Current() != nil {
		t.Error("Current() != nil after Reset")
	}
}

func TestScoreNeverExceedsLength(t *testing.T) {
	qs := basmalaQuestions()
	s := loadedSession(t, qs)

	for range qs {
		// Miss three times, forcing the reveal, on every question.
		s.Submit(s.Index(), "wrong one")
		s.Submit(s.Index(), "wrong two")
		s.Submit(s.Index(), "wrong three")
		s.Advance()
	}

	if s.Score() != len(qs) {
		t.Errorf("Score = %d, want %d", s.Score(), len(qs))
	}
	if !s.Completed() {
		t.Error("Completed = false")
	}
}
