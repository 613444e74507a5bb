// Package chat is the Quran Q&A screen. The conversation lives only in
// memory for the current session; nothing is ever persisted.
package chat

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mzuhdi/tartil/internal/chatbot"
	"github.com/mzuhdi/tartil/internal/screen"
	"github.com/mzuhdi/tartil/internal/services"
	"github.com/mzuhdi/tartil/internal/ui/layout"
	"github.com/mzuhdi/tartil/internal/ui/theme"
)

// replyMsg carries one chatbot reply back to the event loop. Gen ties it
// to the question that asked it.
type replyMsg struct {
	Gen   int
	Reply *chatbot.Reply
	Err   error
}

type role int

const (
	roleUser role = iota
	roleBot
	roleError
)

type message struct {
	role role
	text string
}

// ChatScreen is a minimal question-and-answer log with an input line.
type ChatScreen struct {
	svc     *services.Services
	input   textinput.Model
	history []message
	pending bool
	lastQ   string

	gen int
}

var _ screen.Screen = (*ChatScreen)(nil)

// New creates the chat screen.
func New(svc *services.Services) *ChatScreen {
	ti := textinput.New()
	ti.Placeholder = "Ask about the Quran, or how to say a word..."
	ti.CharLimit = 280
	ti.Focus()

	return &ChatScreen{svc: svc, input: ti}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Focus()
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if msg.Gen != c.gen {
			return c, nil
		}
		c.pending = false
		if msg.Err != nil {
			c.svc.Log.Error().Err(msg.Err).Msg("chatbot query failed")
			c.history = append(c.history, message{
				role: roleError,
				text: "I could not reach the chatbot service. Press ctrl+r to retry.",
			})
			return c, nil
		}
		c.history = append(c.history, message{role: roleBot, text: renderReply(msg.Reply)})
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(c.input.Value())
			if q == "" || c.pending {
				return c, nil
			}
			c.input.SetValue("")
			return c, c.ask(q)
		case "ctrl+r":
			if c.lastQ != "" && !c.pending {
				return c, c.ask(c.lastQ)
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) ask(q string) tea.Cmd {
	c.lastQ = q
	c.pending = true
	c.history = append(c.history, message{role: roleUser, text: q})

	c.gen++
	gen := c.gen
	client := c.svc.Chatbot
	timeout := c.svc.Cfg.Services.Timeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reply, err := client.Query(ctx, q, "en")
		return replyMsg{Gen: gen, Reply: reply, Err: err}
	}
}

// renderReply flattens either union branch to display text.
func renderReply(r *chatbot.Reply) string {
	if r.Guide != nil {
		var b strings.Builder
		b.WriteString("Here is how to say it:\n")
		for _, p := range r.Guide.Pronunciations {
			fmt.Fprintf(&b, "  %s  —  %s\n", p.Arabic, p.Transliteration)
		}
		for _, caution := range r.Guide.Cautions {
			b.WriteString("\n" + caution)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	a := r.Answer
	var b strings.Builder
	b.WriteString(a.Response)
	if a.AyahRef != "" {
		fmt.Fprintf(&b, "\n\n%s (%s)", a.AyahArabic, a.AyahRef)
		if a.Translation != "" {
			b.WriteString("\n" + a.Translation)
		}
	}
	if a.TafsirSnippet != "" {
		b.WriteString("\n\nTafsir: " + a.TafsirSnippet)
	}
	if len(a.KeyThemes) > 0 {
		b.WriteString("\n\nThemes: " + strings.Join(a.KeyThemes, ", "))
	}
	for _, caution := range a.Cautions {
		b.WriteString("\n" + caution)
	}
	return b.String()
}

func (c *ChatScreen) View(width, height int) string {
	userStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	botStyle := lipgloss.NewStyle().Foreground(theme.Text)
	errStyle := theme.Incorrect

	var lines []string
	for _, m := range c.history {
		switch m.role {
		case roleUser:
			lines = append(lines, userStyle.Render("You: ")+theme.Body.Render(m.text))
		case roleBot:
			lines = append(lines, botStyle.Render(m.text))
		case roleError:
			lines = append(lines, errStyle.Render(m.text))
		}
		lines = append(lines, "")
	}
	if c.pending {
		lines = append(lines, theme.Hint.Render("thinking..."))
	}

	// Keep only what fits above the input line.
	log := strings.Join(lines, "\n")
	logHeight := height - 3
	if logHeight < 1 {
		logHeight = 1
	}
	logLines := strings.Split(log, "\n")
	if len(logLines) > logHeight {
		logLines = logLines[len(logLines)-logHeight:]
	}

	body := strings.Join(logLines, "\n") + "\n\n" + c.input.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 2).
		Render(body)
}

func (c *ChatScreen) Title() string {
	return "Ask"
}

// KeyHints implements screen.KeyHintProvider.
func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: "Retry"},
		{Key: "Esc", Description: "Back"},
	}
}
