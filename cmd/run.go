package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzuhdi/tartil/internal/app"
	"github.com/mzuhdi/tartil/internal/asr"
	"github.com/mzuhdi/tartil/internal/capture"
	"github.com/mzuhdi/tartil/internal/chatbot"
	"github.com/mzuhdi/tartil/internal/config"
	"github.com/mzuhdi/tartil/internal/content"
	"github.com/mzuhdi/tartil/internal/logger"
	"github.com/mzuhdi/tartil/internal/progress"
	"github.com/mzuhdi/tartil/internal/pronounce"
	"github.com/mzuhdi/tartil/internal/services"
)

// runApp loads configuration, opens the store, builds the service
// clients, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Stdout belongs to the TUI; logs go to the configured file.
	log, closer, err := logger.SetupFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := progress.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	speech := asr.New(cfg.Services.PronunciationURL, cfg.Services.Timeout)
	recorder := capture.NewRecorder(capture.NewMicDevice(cfg.Capture.SampleRate))
	thresholds := pronounce.Thresholds{
		Good:         float64(cfg.Feedback.GoodCutoff),
		Intermediate: float64(cfg.Feedback.IntermediateCutoff),
	}

	svc := &services.Services{
		Chatbot: chatbot.New(cfg.Services.ChatbotURL, cfg.Services.Timeout),
		Content: content.New(cfg.Services.LearningURL, cfg.Services.Timeout),
		Speech:  speech,
		Store:   store,
		Flow:    pronounce.NewFlow(recorder, speech, thresholds),
		Log:     log,
		Cfg:     cfg,
	}

	log.Info().Str("db", dbPath).Msg("starting")
	return app.Run(svc)
}
