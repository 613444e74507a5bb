// Package recite is the pronunciation practice screen: record a
// recitation of the shown target, submit it for scoring, and read the
// tiered feedback.
package recite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mzuhdi/tartil/internal/capture"
	"github.com/mzuhdi/tartil/internal/pronounce"
	"github.com/mzuhdi/tartil/internal/screen"
	"github.com/mzuhdi/tartil/internal/services"
	"github.com/mzuhdi/tartil/internal/ui/layout"
	"github.com/mzuhdi/tartil/internal/ui/theme"
)

// evaluatedMsg carries one finished evaluation back to the event loop.
// The flow drops it if the submission has been superseded.
type evaluatedMsg struct {
	ID       string
	Feedback *pronounce.Feedback
	Err      error
}

// ReciteScreen drives one practice target.
type ReciteScreen struct {
	svc    *services.Services
	label  string
	status string
}

var _ screen.Screen = (*ReciteScreen)(nil)

// New creates a practice screen for the target. label is the Arabic text
// the user should recite.
func New(svc *services.Services, target pronounce.Target, label string) *ReciteScreen {
	svc.Flow.SetTarget(target)
	return &ReciteScreen{svc: svc, label: label}
}

func (r *ReciteScreen) Init() tea.Cmd {
	return nil
}

func (r *ReciteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	flow := r.svc.Flow

	switch msg := msg.(type) {
	case evaluatedMsg:
		if !flow.Finish(msg.ID, msg.Feedback, msg.Err) {
			return r, nil
		}
		if msg.Err != nil {
			r.svc.Log.Error().Err(msg.Err).Str("target", flow.Target().String()).Msg("evaluation failed")
		}
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	return r, nil
}

func (r *ReciteScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	flow := r.svc.Flow

	switch msg.String() {
	case "space":
		if flow.Evaluating() {
			return r, nil
		}
		if flow.Recorder.Recording() {
			if err := flow.Recorder.Stop(); err != nil {
				r.status = "Recording failed. Check your microphone and try again."
				r.svc.Log.Error().Err(err).Msg("stop recording failed")
			} else {
				r.status = ""
			}
			return r, nil
		}
		flow.ClearFeedback()
		if err := flow.Recorder.Start(); err != nil {
			var unavailable *capture.CaptureUnavailableError
			if errors.As(err, &unavailable) {
				r.status = "Microphone unavailable. Is another app using it?"
			} else {
				r.status = "Could not start recording."
			}
			r.svc.Log.Error().Err(err).Msg("start recording failed")
		} else {
			r.status = ""
		}
		return r, nil

	case "enter":
		if flow.Evaluating() {
			return r, nil
		}
		sub, err := flow.Begin()
		if err != nil {
			r.status = "Record something first: press space to start and stop."
			return r, nil
		}
		r.status = ""
		return r, r.evaluate(sub)

	case "c":
		if flow.Evaluating() {
			return r, nil
		}
		flow.ClearFeedback()
		r.status = ""
		return r, nil
	}

	return r, nil
}

func (r *ReciteScreen) evaluate(sub pronounce.Submission) tea.Cmd {
	flow := r.svc.Flow
	timeout := r.svc.Cfg.Services.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		fb, err := flow.Evaluate(ctx, sub)
		return evaluatedMsg{ID: sub.ID, Feedback: fb, Err: err}
	}
}

func (r *ReciteScreen) View(width, height int) string {
	flow := r.svc.Flow
	var sections []string

	sections = append(sections, theme.Arabic.Width(width).Render(r.label))
	sections = append(sections, theme.Subtitle.Width(width).Render("Recite, then submit your recording for feedback"))

	switch {
	case flow.Recorder.Recording():
		sections = append(sections, theme.Recording.Render("● Recording... press space to stop"))
	case flow.Evaluating():
		sections = append(sections, theme.Hint.Render("Scoring your recitation..."))
	case flow.Feedback() != nil:
		sections = append(sections, renderFeedback(flow.Feedback()))
	case flow.LastError() != nil:
		sections = append(sections, theme.Incorrect.Render("Could not reach the pronunciation service."))
		sections = append(sections, theme.Hint.Render("Your recording is kept. Press enter to try again."))
	case flow.Recorder.Audio() != nil:
		sections = append(sections, theme.Body.Render("Recording ready. Press enter to submit."))
	default:
		sections = append(sections, theme.Hint.Render("Press space to start recording."))
	}

	if r.status != "" {
		sections = append(sections, theme.Incorrect.Render(r.status))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
}

func renderFeedback(fb *pronounce.Feedback) string {
	var badge string
	switch fb.Tier {
	case pronounce.TierGood:
		badge = theme.TierGood.Render(fmt.Sprintf("◉ %.0f%%", fb.Score))
	case pronounce.TierIntermediate:
		badge = theme.TierIntermediate.Render(fmt.Sprintf("◎ %.0f%%", fb.Score))
	default:
		badge = theme.TierWrong.Render(fmt.Sprintf("○ %.0f%%", fb.Score))
	}

	return badge + "\n\n" +
		theme.Body.Render(fb.Message) + "\n" +
		theme.Hint.Render(fmt.Sprintf("label: %s", fb.Details.LabelDisplay))
}

func (r *ReciteScreen) Title() string {
	return "Recite " + r.svc.Flow.Target().String()
}

// KeyHints implements screen.KeyHintProvider.
func (r *ReciteScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Record / Stop"},
		{Key: "Enter", Description: "Submit"},
		{Key: "c", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}
