// Package config loads application configuration from an optional YAML
// file and TARTIL_* environment variables. Everything has a working
// default so a fresh checkout runs against locally started services.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	Services Services `mapstructure:"services"` // external service base URLs
	Capture  Capture  `mapstructure:"capture"`  // microphone capture settings
	Feedback Feedback `mapstructure:"feedback"` // quiz and pronunciation feedback tuning
	Log      Log      `mapstructure:"log"`      // logging settings
	DBPath   string   `mapstructure:"db_path"`  // progress database path, empty means XDG default
}

// Services contains the base URLs and shared timeout for the three
// external HTTP services.
type Services struct {
	ChatbotURL       string        `mapstructure:"chatbot_url"`
	LearningURL      string        `mapstructure:"learning_url"`
	PronunciationURL string        `mapstructure:"pronunciation_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

// Capture contains microphone capture settings.
type Capture struct {
	SampleRate int `mapstructure:"sample_rate"`
}

// Feedback contains the pronunciation tier cutoffs and the delay before
// a quiz advances past answer feedback.
type Feedback struct {
	GoodCutoff         int           `mapstructure:"good_cutoff"`
	IntermediateCutoff int           `mapstructure:"intermediate_cutoff"`
	AdvanceDelay       time.Duration `mapstructure:"advance_delay"`
}

// Log contains logging settings. File is where TUI-mode logs go, since
// the terminal belongs to the interface while the app runs.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from ./config/config.yaml (if present) and
// TARTIL_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("services.chatbot_url", "http://localhost:5000")
	v.SetDefault("services.learning_url", "http://localhost:8000")
	v.SetDefault("services.pronunciation_url", "http://localhost:8001")
	v.SetDefault("services.timeout", "30s")
	v.SetDefault("capture.sample_rate", 16000)
	v.SetDefault("feedback.good_cutoff", 85)
	v.SetDefault("feedback.intermediate_cutoff", 70)
	v.SetDefault("feedback.advance_delay", "2s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("db_path", "")

	v.SetEnvPrefix("TARTIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Feedback.GoodCutoff < c.Feedback.IntermediateCutoff {
		return fmt.Errorf("feedback.good_cutoff (%d) must not be below feedback.intermediate_cutoff (%d)",
			c.Feedback.GoodCutoff, c.Feedback.IntermediateCutoff)
	}
	if c.Capture.SampleRate <= 0 {
		return fmt.Errorf("capture.sample_rate must be positive, got %d", c.Capture.SampleRate)
	}
	if c.Services.Timeout <= 0 {
		return fmt.Errorf("services.timeout must be positive, got %s", c.Services.Timeout)
	}
	return nil
}
