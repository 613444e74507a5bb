// Package stats shows learning progress totals and the studied ayah
// list, and hosts the guarded full reset.
package stats

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mzuhdi/tartil/internal/content"
	"github.com/mzuhdi/tartil/internal/progress"
	"github.com/mzuhdi/tartil/internal/screen"
	"github.com/mzuhdi/tartil/internal/services"
	"github.com/mzuhdi/tartil/internal/ui/layout"
	"github.com/mzuhdi/tartil/internal/ui/theme"
)

// loadedMsg carries the totals and studied list.
type loadedMsg struct {
	Totals progress.Totals
	Ayahs  []string
	Err    error
}

// resetDoneMsg confirms the store wipe.
type resetDoneMsg struct {
	Err error
}

// StatsScreen shows progress and handles reset confirmation.
type StatsScreen struct {
	svc        *services.Services
	totals     progress.Totals
	ayahs      []string
	loading    bool
	confirming bool
	errMsg     string
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the progress screen.
func New(svc *services.Services) *StatsScreen {
	return &StatsScreen{svc: svc, loading: true}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *StatsScreen) load() tea.Cmd {
	store := s.svc.Store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		totals, err := store.Totals(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		ayahs, err := store.StudiedAyahs(ctx)
		return loadedMsg{Totals: totals, Ayahs: ayahs, Err: err}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = "Could not read progress."
			s.svc.Log.Error().Err(msg.Err).Msg("progress load failed")
			return s, nil
		}
		s.totals = msg.Totals
		s.ayahs = msg.Ayahs
		return s, nil

	case resetDoneMsg:
		if msg.Err != nil {
			s.errMsg = "Reset failed."
			s.svc.Log.Error().Err(msg.Err).Msg("progress reset failed")
			return s, nil
		}
		return s, tea.Batch(s.load(), services.RefreshTotals(s.svc.Store))

	case tea.KeyMsg:
		if s.confirming {
			switch msg.String() {
			case "y":
				s.confirming = false
				store := s.svc.Store
				return s, func() tea.Msg {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					return resetDoneMsg{Err: store.ResetProgress(ctx)}
				}
			case "n", "esc":
				s.confirming = false
			}
			return s, nil
		}
		if msg.String() == "x" && !s.loading {
			s.confirming = true
		}
	}

	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var body string
	switch {
	case s.loading:
		body = theme.Hint.Render("Loading progress...")
	case s.errMsg != "":
		body = theme.Incorrect.Render(s.errMsg)
	default:
		body = s.render(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(body)
}

func (s *StatsScreen) render(width int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("My Progress"))
	sections = append(sections, theme.Body.Render(fmt.Sprintf(
		"Ayahs studied: %d      Words studied: %d", s.totals.Ayahs, s.totals.Words)))

	if by := s.bySurah(); len(by) > 0 {
		lines := make([]string, 0, len(by))
		for surah := content.MinSurah; surah <= content.MaxSurah; surah++ {
			if n := by[surah]; n > 0 {
				lines = append(lines, fmt.Sprintf("Surah %d: %d ayahs", surah, n))
			}
		}
		sections = append(sections, theme.Subtitle.Render("By surah"))
		sections = append(sections, theme.Body.Render(strings.Join(lines, "\n")))
	}

	if len(s.ayahs) > 0 {
		shown := s.ayahs
		const maxShown = 12
		if len(shown) > maxShown {
			shown = shown[len(shown)-maxShown:]
		}
		sections = append(sections, theme.Subtitle.Render("Recently studied"))
		sections = append(sections, theme.Hint.Render(strings.Join(shown, "   ")))
	} else {
		sections = append(sections, theme.Hint.Render("Nothing studied yet. Complete an ayah quiz to get started."))
	}

	if s.confirming {
		sections = append(sections, theme.Incorrect.Render("Erase ALL progress? This cannot be undone. (y/n)"))
	}

	return strings.Join(sections, "\n\n")
}

// bySurah counts studied ayahs per surah from "surah:ayah" IDs.
func (s *StatsScreen) bySurah() map[int]int {
	by := make(map[int]int)
	for _, id := range s.ayahs {
		pre, _, ok := strings.Cut(id, ":")
		if !ok {
			continue
		}
		surah, err := strconv.Atoi(pre)
		if err != nil {
			continue
		}
		by[surah]++
	}
	return by
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

// KeyHints implements screen.KeyHintProvider.
func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "y", Description: "Erase everything"},
			{Key: "n", Description: "Keep my progress"},
		}
	}
	return []layout.KeyHint{
		{Key: "x", Description: "Reset progress"},
		{Key: "Esc", Description: "Back"},
	}
}
