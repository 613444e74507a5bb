package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Services.ChatbotURL != "http://localhost:5000" {
		t.Errorf("chatbot url = %q", cfg.Services.ChatbotURL)
	}
	if cfg.Services.LearningURL != "http://localhost:8000" {
		t.Errorf("learning url = %q", cfg.Services.LearningURL)
	}
	if cfg.Services.PronunciationURL != "http://localhost:8001" {
		t.Errorf("pronunciation url = %q", cfg.Services.PronunciationURL)
	}
	if cfg.Capture.SampleRate != 16000 {
		t.Errorf("sample rate = %d, want 16000", cfg.Capture.SampleRate)
	}
	if cfg.Feedback.GoodCutoff != 85 || cfg.Feedback.IntermediateCutoff != 70 {
		t.Errorf("cutoffs = %d/%d, want 85/70", cfg.Feedback.GoodCutoff, cfg.Feedback.IntermediateCutoff)
	}
	if cfg.Feedback.AdvanceDelay.Seconds() != 2 {
		t.Errorf("advance delay = %s, want 2s", cfg.Feedback.AdvanceDelay)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TARTIL_SERVICES_CHATBOT_URL", "http://chatbot.internal:9090")
	t.Setenv("TARTIL_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Services.ChatbotURL != "http://chatbot.internal:9090" {
		t.Errorf("chatbot url = %q", cfg.Services.ChatbotURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_RejectsInvertedCutoffs(t *testing.T) {
	t.Setenv("TARTIL_FEEDBACK_GOOD_CUTOFF", "60")
	t.Setenv("TARTIL_FEEDBACK_INTERMEDIATE_CUTOFF", "70")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for good cutoff below intermediate cutoff")
	}
}
