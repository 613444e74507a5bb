package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// WordGloss pairs an Arabic word with its translation, as served by the
// learning content service.
type WordGloss struct {
	Arabic      string
	Translation string
}

// ErrNoWords is returned when an ayah has no word glosses to quiz on.
var ErrNoWords = errors.New("no words to build a quiz from")

// BuildAyahQuestions builds one multiple-choice question per word of an
// ayah: the Arabic word is the prompt, its gloss the correct answer, and
// the distractors are drawn from the ayah's other glosses topped up from
// the lexicon. Output always passes Session.Load validation.
func BuildAyahQuestions(words []WordGloss, lexicon []string) ([]Question, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	questions := make([]Question, 0, len(words))
	for i, w := range words {
		if w.Arabic == "" || w.Translation == "" {
			return nil, fmt.Errorf("word %d has an empty gloss", i)
		}

		pool := distractorPool(words, lexicon, w.Translation)
		if len(pool) < OptionCount-1 {
			return nil, fmt.Errorf("word %d: only %d distractors available, need %d",
				i, len(pool), OptionCount-1)
		}

		opts := make([]string, 0, OptionCount)
		opts = append(opts, w.Translation)
		for _, j := range rand.Perm(len(pool))[:OptionCount-1] {
			opts = append(opts, pool[j])
		}
		rand.Shuffle(len(opts), func(a, b int) { opts[a], opts[b] = opts[b], opts[a] })

		questions = append(questions, Question{
			ID:            i + 1,
			Word:          w.Arabic,
			Translation:   w.Translation,
			Options:       opts,
			CorrectAnswer: w.Translation,
		})
	}
	return questions, nil
}

// distractorPool collects candidate wrong answers: the other glosses of the
// ayah first, then lexicon entries, with the correct answer and duplicates
// filtered out.
func distractorPool(words []WordGloss, lexicon []string, correct string) []string {
	seen := map[string]bool{correct: true}
	var pool []string
	for _, w := range words {
		if !seen[w.Translation] {
			seen[w.Translation] = true
			pool = append(pool, w.Translation)
		}
	}
	for _, entry := range lexicon {
		if entry != "" && !seen[entry] {
			seen[entry] = true
			pool = append(pool, entry)
		}
	}
	return pool
}
