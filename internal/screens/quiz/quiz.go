// Package quiz is the word-meaning quiz screen for one ayah.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mzuhdi/tartil/internal/content"
	engine "github.com/mzuhdi/tartil/internal/quiz"
	"github.com/mzuhdi/tartil/internal/screen"
	"github.com/mzuhdi/tartil/internal/services"
	"github.com/mzuhdi/tartil/internal/ui/components"
	"github.com/mzuhdi/tartil/internal/ui/layout"
	"github.com/mzuhdi/tartil/internal/ui/theme"
)

// questionsBuiltMsg is sent when the lexicon fetch and question build
// finish. Gen ties it to the load that requested it.
type questionsBuiltMsg struct {
	Gen       int
	Questions []engine.Question
	Err       error
}

// advanceMsg fires when the feedback display period ends.
type advanceMsg struct {
	Gen int
}

// studiedMsg confirms the completed ayah was recorded.
type studiedMsg struct {
	Err error
}

// QuizScreen runs one quiz session over the words of an ayah.
type QuizScreen struct {
	svc   *services.Services
	surah int
	num   int
	ayah  *content.Ayah

	session *engine.Session
	choice  components.MultiChoice
	last    engine.Outcome
	errMsg  string

	// gen invalidates stale loads and stale advance timers after a retry.
	gen int
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a quiz for the given (already fetched) ayah.
func New(svc *services.Services, surah, num int, ayah *content.Ayah) *QuizScreen {
	return &QuizScreen{
		svc:     svc,
		surah:   surah,
		num:     num,
		ayah:    ayah,
		session: engine.NewSession(),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.buildQuestions()
}

func (q *QuizScreen) buildQuestions() tea.Cmd {
	q.gen++
	gen := q.gen
	ayah := q.ayah
	timeout := q.svc.Cfg.Services.Timeout
	client := q.svc.Content

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		lexicon, err := client.Lexicon(ctx)
		if err != nil {
			return questionsBuiltMsg{Gen: gen, Err: err}
		}

		words := make([]engine.WordGloss, 0, len(ayah.Words))
		for _, w := range ayah.Words {
			words = append(words, engine.WordGloss{Arabic: w.Arabic, Translation: w.English})
		}
		pool := make([]string, 0, len(lexicon))
		for _, e := range lexicon {
			pool = append(pool, e.English)
		}

		questions, err := engine.BuildAyahQuestions(words, pool)
		return questionsBuiltMsg{Gen: gen, Questions: questions, Err: err}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsBuiltMsg:
		if msg.Gen != q.gen {
			return q, nil
		}
		if msg.Err != nil {
			q.errMsg = "Could not build the quiz. Press r to retry."
			q.svc.Log.Error().Err(msg.Err).Msg("quiz build failed")
			return q, nil
		}
		if err := q.session.Load(engine.KindAyah, fmt.Sprintf("%d:%d", q.surah, q.num), msg.Questions); err != nil {
			q.errMsg = "This ayah has no quizzable words."
			q.svc.Log.Error().Err(err).Msg("quiz load rejected")
			return q, nil
		}
		q.errMsg = ""
		q.choice = q.newChoice()
		return q, nil

	case advanceMsg:
		if msg.Gen != q.gen || q.session.Phase() != engine.PhaseFeedback {
			return q, nil
		}
		q.session.Advance()
		if q.session.Completed() {
			return q, q.markStudied()
		}
		q.choice = q.newChoice()
		return q, nil

	case studiedMsg:
		if msg.Err != nil {
			q.svc.Log.Error().Err(msg.Err).Msg("mark ayah studied failed")
		}
		return q, services.RefreshTotals(q.svc.Store)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.errMsg != "" {
		if msg.String() == "r" {
			q.errMsg = ""
			return q, q.buildQuestions()
		}
		return q, nil
	}

	switch q.session.Phase() {
	case engine.PhaseCompleted:
		if msg.String() == "r" {
			q.session.Retry()
			q.gen++
			q.choice = q.newChoice()
		}
		return q, nil

	case engine.PhaseAwaiting:
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		if !q.choice.Submitted {
			return q, cmd
		}

		out := q.session.Submit(q.session.Index(), q.choice.Chosen())
		q.last = out
		if !out.Correct && !out.Revealed {
			q.choice = q.choice.Dismiss()
			return q, cmd
		}

		q.choice = q.choice.Resolve(q.correctIndex())
		gen := q.gen
		delay := q.svc.Cfg.Feedback.AdvanceDelay
		tick := tea.Tick(delay, func(time.Time) tea.Msg {
			return advanceMsg{Gen: gen}
		})
		if out.Correct && out.WrongCount == 0 {
			return q, tea.Batch(tick, q.markWordStudied(q.session.Index()))
		}
		return q, tick
	}

	return q, nil
}

func (q *QuizScreen) newChoice() components.MultiChoice {
	cur := q.session.Current()
	prompt := fmt.Sprintf("What does %q mean?", cur.Word)
	return components.NewMultiChoice(prompt, cur.Options)
}

func (q *QuizScreen) correctIndex() int {
	cur := q.session.Current()
	for i, opt := range cur.Options {
		if opt == cur.CorrectAnswer {
			return i
		}
	}
	return -1
}

// markWordStudied records a word answered right on the first try.
func (q *QuizScreen) markWordStudied(index int) tea.Cmd {
	store := q.svc.Store
	id := fmt.Sprintf("%d:%d:%d", q.surah, q.num, index+1)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := store.MarkWordStudied(ctx, id)
		return studiedMsg{Err: err}
	}
}

func (q *QuizScreen) markStudied() tea.Cmd {
	store := q.svc.Store
	id := fmt.Sprintf("%d:%d", q.surah, q.num)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := store.MarkAyahStudied(ctx, id)
		return studiedMsg{Err: err}
	}
}

func (q *QuizScreen) View(width, height int) string {
	var body string
	switch {
	case q.errMsg != "":
		body = theme.Incorrect.Render(q.errMsg)
	case q.session.Phase() == engine.PhaseLoading:
		body = theme.Hint.Render("Preparing your quiz...")
	case q.session.Phase() == engine.PhaseCompleted:
		body = q.renderSummary(width)
	default:
		body = q.renderQuestion(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(body)
}

func (q *QuizScreen) renderQuestion(width int) string {
	var sections []string

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", q.session.Index()+1, q.session.Len()),
		float64(q.session.Index())/float64(q.session.Len()),
		false,
		min(width-8, 48),
	)
	sections = append(sections, bar.View())
	sections = append(sections, q.choice.View())

	switch q.session.Phase() {
	case engine.PhaseFeedback:
		if q.last.Revealed {
			sections = append(sections, theme.Incorrect.Render("The correct answer is highlighted. Keep going!"))
		} else {
			sections = append(sections, theme.Correct.Render("Correct! Mashallah!"))
		}
	case engine.PhaseAwaiting:
		if wrong := q.session.WrongCount(q.session.Index()); wrong > 0 {
			sections = append(sections, theme.Hint.Render(
				fmt.Sprintf("Not quite. %d attempt(s) left.", engine.MaxWrongAttempts-wrong)))
		}
	}

	return strings.Join(sections, "\n\n")
}

func (q *QuizScreen) renderSummary(width int) string {
	score := q.session.Score()
	total := q.session.Len()

	var verdict string
	switch {
	case score == total:
		verdict = "Perfect! Mashallah!"
	case score*2 >= total:
		verdict = "Well done. Review the missed words and try again."
	default:
		verdict = "Keep practicing, you will get there."
	}

	return theme.Title.Width(width).Render("Quiz Complete") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("Score: %d / %d", score, total)) + "\n\n" +
		theme.Subtitle.Width(width).Render(verdict) + "\n\n" +
		theme.Hint.Render("r to retry · Esc to go back")
}

func (q *QuizScreen) Title() string {
	return fmt.Sprintf("Quiz %d:%d", q.surah, q.num)
}

// KeyHints implements screen.KeyHintProvider.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.session.Phase() == engine.PhaseCompleted || q.errMsg != "" {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "1-4", Description: "Quick pick"},
		{Key: "Esc", Description: "Back"},
	}
}
