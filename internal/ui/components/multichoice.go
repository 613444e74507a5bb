package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mzuhdi/tartil/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Unlike a self-grading
// widget, it never decides correctness itself: the parent inspects the
// submitted choice, then either calls Dismiss (keep answering the same
// question) or Resolve (lock it in and highlight the right option).
type MultiChoice struct {
	Prompt       string
	Options      []string
	Selected     int
	Submitted    bool
	ChosenIndex  int
	Resolved     bool
	CorrectIndex int
	LastWrong    int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:       prompt,
		Options:      options,
		Selected:     0,
		ChosenIndex:  -1,
		CorrectIndex: -1,
		LastWrong:    -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Resolved || m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4":
		i := int(kmsg.String()[0] - '1')
		if i < len(m.Options) {
			m.Selected = i
			m.Submitted = true
			m.ChosenIndex = i
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// Chosen returns the submitted option value, or "" if nothing is pending.
func (m MultiChoice) Chosen() string {
	if !m.Submitted || m.ChosenIndex < 0 {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// Dismiss clears a wrong submission so the question stays answerable.
// The wrong option stays tinted until the next pick.
func (m MultiChoice) Dismiss() MultiChoice {
	m.LastWrong = m.ChosenIndex
	m.Submitted = false
	m.ChosenIndex = -1
	return m
}

// Resolve locks the component with the correct option highlighted.
func (m MultiChoice) Resolve(correctIndex int) MultiChoice {
	m.Resolved = true
	m.CorrectIndex = correctIndex
	return m
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Resolved {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i], opt)

		switch {
		case m.Resolved && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.Resolved && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Resolved:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.LastWrong:
			s += theme.Incorrect.Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
