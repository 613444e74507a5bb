// Package home is the application's entry screen.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mzuhdi/tartil/internal/router"
	"github.com/mzuhdi/tartil/internal/screen"
	"github.com/mzuhdi/tartil/internal/screens/chat"
	"github.com/mzuhdi/tartil/internal/screens/read"
	"github.com/mzuhdi/tartil/internal/screens/stats"
	"github.com/mzuhdi/tartil/internal/services"
	"github.com/mzuhdi/tartil/internal/ui/components"
	"github.com/mzuhdi/tartil/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *services.Services) *HomeScreen {
	items := []components.MenuItem{
		{Label: "READ & LEARN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: read.NewSurahList(svc)}
			}
		}},
		{Label: "ASK THE CHATBOT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(svc)}
			}
		}},
		{Label: "MY PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(svc)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("ت ر ت ي ل"))
	sections = append(sections, theme.Title.Width(width).Render("T A R T I L"))
	sections = append(sections, theme.Subtitle.Width(width).Render("Read, recite, and remember the short surahs"))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View()))

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
