package quiz

import (
	"errors"
	"testing"
)

var ikhlasWords = []WordGloss{
	{Arabic: "قُلْ", Translation: "Say"},
	{Arabic: "هُوَ", Translation: "He is"},
	{Arabic: "اللَّهُ", Translation: "Allah"},
	{Arabic: "أَحَدٌ", Translation: "the One"},
}

func TestBuildAyahQuestions(t *testing.T) {
	qs, err := BuildAyahQuestions(ikhlasWords, []string{"the Eternal", "Lord"})
	if err != nil {
		t.Fatalf("BuildAyahQuestions() error = %v", err)
	}
	if len(qs) != len(ikhlasWords) {
		t.Fatalf("built %d questions, want %d", len(qs), len(ikhlasWords))
	}

	for i, q := range qs {
		if q.Word != ikhlasWords[i].Arabic {
			t.Errorf("question %d prompt = %q, want %q", i, q.Word, ikhlasWords[i].Arabic)
		}
		if q.CorrectAnswer != ikhlasWords[i].Translation {
			t.Errorf("question %d answer = %q, want %q", i, q.CorrectAnswer, ikhlasWords[i].Translation)
		}
		if !q.valid() {
			t.Errorf("question %d fails load validation: %+v", i, q)
		}
		seen := map[string]bool{}
		for _, opt := range q.Options {
			if seen[opt] {
				t.Errorf("question %d has duplicate option %q", i, opt)
			}
			seen[opt] = true
		}
	}
}

func TestBuildAyahQuestions_LoadsCleanly(t *testing.T) {
	qs, err := BuildAyahQuestions(ikhlasWords, nil)
	if err != nil {
		t.Fatalf("BuildAyahQuestions() error = %v", err)
	}
	s := NewSession()
	if err := s.Load(KindAyah, "112:1", qs); err != nil {
		t.Fatalf("Load(built questions) error = %v", err)
	}
}

func TestBuildAyahQuestions_NoWords(t *testing.T) {
	_, err := BuildAyahQuestions(nil, []string{"x"})
	if !errors.Is(err, ErrNoWords) {
		t.Fatalf("error = %v, want ErrNoWords", err)
	}
}

func TestBuildAyahQuestions_TooFewDistractors(t *testing.T) {
	words := []WordGloss{{Arabic: "قُلْ", Translation: "Say"}}
	if _, err := BuildAyahQuestions(words, []string{"only one"}); err == nil {
		t.Fatal("expected error when distractor pool is too small")
	}
}
