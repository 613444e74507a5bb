// Package read holds the reading screens: the surah picker and the ayah
// view with word-by-word glosses.
package read

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mzuhdi/tartil/internal/content"
	"github.com/mzuhdi/tartil/internal/router"
	"github.com/mzuhdi/tartil/internal/screen"
	"github.com/mzuhdi/tartil/internal/services"
	"github.com/mzuhdi/tartil/internal/ui/components"
	"github.com/mzuhdi/tartil/internal/ui/layout"
	"github.com/mzuhdi/tartil/internal/ui/theme"
)

// SurahList lets the user pick a surah to read.
type SurahList struct {
	svc     *services.Services
	index   []content.SurahInfo
	menu    components.Menu
	loading bool
	errMsg  string
}

var _ screen.Screen = (*SurahList)(nil)

// NewSurahList creates the surah picker.
func NewSurahList(svc *services.Services) *SurahList {
	return &SurahList{svc: svc, loading: true}
}

func (s *SurahList) Init() tea.Cmd {
	return s.fetchIndex()
}

func (s *SurahList) fetchIndex() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), s.svc.Cfg.Services.Timeout)
		defer cancel()

		index, err := s.svc.Content.AyahIndex(ctx)
		return indexLoadedMsg{Index: index, Err: err}
	}
}

func (s *SurahList) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case indexLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = "Could not reach the learning service. Press r to retry."
			s.svc.Log.Error().Err(msg.Err).Msg("surah index fetch failed")
			return s, nil
		}
		s.errMsg = ""
		s.index = msg.Index
		s.menu = components.NewMenu(s.menuItems())
		return s, nil

	case tea.KeyMsg:
		if s.errMsg != "" && msg.String() == "r" {
			s.loading = true
			s.errMsg = ""
			return s, s.fetchIndex()
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SurahList) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(s.index))
	for _, info := range s.index {
		info := info
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%d. %s  (%d ayahs)", info.Surah, info.Name, info.AyahCount),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: NewAyahScreen(s.svc, info.Surah, 1),
					}
				}
			},
		})
	}
	return items
}

func (s *SurahList) View(width, height int) string {
	var body string
	switch {
	case s.loading:
		body = theme.Hint.Render("Loading surahs...")
	case s.errMsg != "":
		body = theme.Incorrect.Render(s.errMsg)
	default:
		body = theme.Subtitle.Render("Pick a surah to read") + "\n\n" + s.menu.View()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(body)
}

func (s *SurahList) Title() string {
	return "Surahs"
}

// KeyHints implements screen.KeyHintProvider.
func (s *SurahList) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Back"},
	}
}
