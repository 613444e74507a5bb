// Package services bundles the shared collaborators that screens need:
// the three external service clients, the progress store, and the
// pronunciation flow. One value is built at startup and threaded through
// screen constructors.
package services

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/mzuhdi/tartil/internal/asr"
	"github.com/mzuhdi/tartil/internal/chatbot"
	"github.com/mzuhdi/tartil/internal/config"
	"github.com/mzuhdi/tartil/internal/content"
	"github.com/mzuhdi/tartil/internal/progress"
	"github.com/mzuhdi/tartil/internal/pronounce"
)

// Services holds the app-wide collaborators.
type Services struct {
	Chatbot *chatbot.Client
	Content *content.Client
	Speech  *asr.Client
	Store   *progress.Store
	Flow    *pronounce.Flow
	Log     zerolog.Logger
	Cfg     *config.Config
}

// ProgressChangedMsg announces fresh studied totals, consumed by the
// header.
type ProgressChangedMsg struct {
	Totals progress.Totals
}

// RefreshTotals reloads the studied totals from the store.
func RefreshTotals(store *progress.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		totals, err := store.Totals(ctx)
		if err != nil {
			return nil
		}
		return ProgressChangedMsg{Totals: totals}
	}
}
