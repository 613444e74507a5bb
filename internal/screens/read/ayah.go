package read

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mzuhdi/tartil/internal/content"
	"github.com/mzuhdi/tartil/internal/pronounce"
	"github.com/mzuhdi/tartil/internal/router"
	"github.com/mzuhdi/tartil/internal/screen"
	"github.com/mzuhdi/tartil/internal/screens/quiz"
	"github.com/mzuhdi/tartil/internal/screens/recite"
	"github.com/mzuhdi/tartil/internal/services"
	"github.com/mzuhdi/tartil/internal/ui/layout"
	"github.com/mzuhdi/tartil/internal/ui/theme"
)

// AyahScreen shows one verse with translations and word glosses, and is
// the jump-off point for quizzes and pronunciation practice.
type AyahScreen struct {
	svc   *services.Services
	surah int
	num   int

	ayah     *content.Ayah
	selected int
	loading  bool
	atEnd    bool
	errMsg   string
	lang     string

	// gen ties async results to the fetch that requested them.
	gen int
}

var _ screen.Screen = (*AyahScreen)(nil)

// langKey is the ui_state key for the preferred translation language.
const langKey = "translation_lang"

// NewAyahScreen creates the ayah view for surah:num.
func NewAyahScreen(svc *services.Services, surah, num int) *AyahScreen {
	return &AyahScreen{svc: svc, surah: surah, num: num, loading: true, lang: "english"}
}

func (a *AyahScreen) Init() tea.Cmd {
	return tea.Batch(a.fetchAyah(a.surah, a.num), a.loadLang())
}

func (a *AyahScreen) loadLang() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		lang, err := a.svc.Store.UIState(ctx, langKey)
		if err != nil {
			a.svc.Log.Warn().Err(err).Msg("translation preference load failed")
		}
		return langLoadedMsg{Lang: lang}
	}
}

func (a *AyahScreen) saveLang(lang string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.svc.Store.SetUIState(ctx, langKey, lang); err != nil {
			a.svc.Log.Warn().Err(err).Msg("translation preference save failed")
		}
		return nil
	}
}

func (a *AyahScreen) fetchAyah(surah, num int) tea.Cmd {
	a.gen++
	gen := a.gen
	a.loading = true
	a.atEnd = false
	a.errMsg = ""
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.svc.Cfg.Services.Timeout)
		defer cancel()

		ayah, err := a.svc.Content.Ayah(ctx, surah, num)
		return ayahLoadedMsg{Gen: gen, Surah: surah, Num: num, Ayah: ayah, Err: err}
	}
}

func (a *AyahScreen) fetchNext() tea.Cmd {
	a.gen++
	gen := a.gen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.svc.Cfg.Services.Timeout)
		defer cancel()

		ref, err := a.svc.Content.Next(ctx, a.surah, a.num)
		return nextRefMsg{Gen: gen, Ref: ref, Err: err}
	}
}

func (a *AyahScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ayahLoadedMsg:
		if msg.Gen != a.gen {
			return a, nil
		}
		a.loading = false
		if msg.Err != nil {
			a.errMsg = "Could not load the ayah. Press r to retry."
			a.svc.Log.Error().Err(msg.Err).Int("surah", msg.Surah).Int("ayah", msg.Num).Msg("ayah fetch failed")
			return a, nil
		}
		a.surah = msg.Surah
		a.num = msg.Num
		a.ayah = msg.Ayah
		a.selected = 0
		return a, nil

	case nextRefMsg:
		if msg.Gen != a.gen {
			return a, nil
		}
		if msg.Err != nil {
			a.errMsg = "Could not look up the next ayah. Press r to retry."
			a.svc.Log.Error().Err(msg.Err).Msg("next ayah lookup failed")
			return a, nil
		}
		if msg.Ref == nil {
			a.atEnd = true
			return a, nil
		}
		return a, a.fetchAyah(msg.Ref.Surah, msg.Ref.Ayah)

	case langLoadedMsg:
		if msg.Lang == "urdu" {
			a.lang = "urdu"
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *AyahScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if a.errMsg != "" {
		if msg.String() == "r" {
			return a, a.fetchAyah(a.surah, a.num)
		}
		return a, nil
	}
	if a.loading || a.ayah == nil {
		return a, nil
	}

	switch msg.String() {
	case "left", "h":
		if a.selected > 0 {
			a.selected--
		}
	case "right", "l":
		if a.selected < len(a.ayah.Words)-1 {
			a.selected++
		}
	case "t":
		if a.lang == "english" {
			a.lang = "urdu"
		} else {
			a.lang = "english"
		}
		return a, a.saveLang(a.lang)
	case "n":
		return a, a.fetchNext()
	case "p":
		if a.num > 1 {
			return a, a.fetchAyah(a.surah, a.num-1)
		}
	case "q":
		return a, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quiz.New(a.svc, a.surah, a.num, a.ayah),
			}
		}
	case "a":
		target := pronounce.Target{Kind: pronounce.TargetAyah, Surah: a.surah, Ayah: a.num}
		label := a.ayah.Arabic
		return a, func() tea.Msg {
			return router.PushScreenMsg{Screen: recite.New(a.svc, target, label)}
		}
	case "w":
		word := a.ayah.Words[a.selected]
		target := pronounce.Target{
			Kind:  pronounce.TargetWord,
			Surah: a.surah,
			Ayah:  a.num,
			Word:  a.selected + 1,
		}
		return a, func() tea.Msg {
			return router.PushScreenMsg{Screen: recite.New(a.svc, target, word.Arabic)}
		}
	}

	return a, nil
}

func (a *AyahScreen) View(width, height int) string {
	var body string
	switch {
	case a.loading:
		body = theme.Hint.Render("Loading ayah...")
	case a.errMsg != "":
		body = theme.Incorrect.Render(a.errMsg)
	case a.ayah != nil:
		body = a.renderAyah(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(body)
}

func (a *AyahScreen) renderAyah(width int) string {
	var sections []string

	sections = append(sections, theme.Arabic.Width(width).Render(a.ayah.Arabic))
	// Urdu falls back to English when the payload has no Urdu text.
	if a.lang == "urdu" && a.ayah.Urdu != "" {
		sections = append(sections, theme.Translation.Width(width).Render(a.ayah.Urdu))
	} else {
		sections = append(sections, theme.Translation.Width(width).Render(a.ayah.English))
	}

	// Word strip with the selected word highlighted.
	parts := make([]string, 0, len(a.ayah.Words))
	for i, w := range a.ayah.Words {
		cell := w.Arabic
		if i == a.selected {
			parts = append(parts, theme.Selected.Render("["+cell+"]"))
		} else {
			parts = append(parts, theme.Body.Render(" "+cell+" "))
		}
	}
	sections = append(sections, strings.Join(parts, " "))

	sel := a.ayah.Words[a.selected]
	gloss := fmt.Sprintf("%s  ·  %s", sel.Transliteration, sel.English)
	sections = append(sections, theme.Hint.Render(gloss))

	if a.atEnd {
		sections = append(sections, theme.Subtitle.Render("You have reached the last ayah. Mashallah!"))
	}

	return strings.Join(sections, "\n\n")
}

func (a *AyahScreen) Title() string {
	return fmt.Sprintf("Surah %d · Ayah %d", a.surah, a.num)
}

// KeyHints implements screen.KeyHintProvider.
func (a *AyahScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Word"},
		{Key: "n/p", Description: "Ayah"},
		{Key: "t", Description: "Translation"},
		{Key: "q", Description: "Quiz"},
		{Key: "a/w", Description: "Recite"},
		{Key: "Esc", Description: "Back"},
	}
}
