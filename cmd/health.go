package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzuhdi/tartil/internal/asr"
	"github.com/mzuhdi/tartil/internal/chatbot"
	"github.com/mzuhdi/tartil/internal/config"
	"github.com/mzuhdi/tartil/internal/content"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the external services",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		probes := []struct {
			name string
			url  string
			call func(context.Context) error
		}{
			{"chatbot", cfg.Services.ChatbotURL, func(ctx context.Context) error {
				_, err := chatbot.New(cfg.Services.ChatbotURL, cfg.Services.Timeout).CheckHealth(ctx)
				return err
			}},
			{"learning", cfg.Services.LearningURL, func(ctx context.Context) error {
				_, err := content.New(cfg.Services.LearningURL, cfg.Services.Timeout).CheckHealth(ctx)
				return err
			}},
			{"pronunciation", cfg.Services.PronunciationURL, func(ctx context.Context) error {
				_, err := asr.New(cfg.Services.PronunciationURL, cfg.Services.Timeout).CheckHealth(ctx)
				return err
			}},
		}

		failed := 0
		for _, p := range probes {
			if err := p.call(ctx); err != nil {
				failed++
				fmt.Printf("✗ %-14s %s  (%v)\n", p.name, p.url, err)
			} else {
				fmt.Printf("✓ %-14s %s\n", p.name, p.url)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d services unreachable", failed, len(probes))
		}
		return nil
	},
}
