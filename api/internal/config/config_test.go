package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Engine != "tesseract" {
		t.Errorf("Engine = %q", cfg.Engine)
	}
	if cfg.Language != "eng" {
		t.Errorf("Language = %q", cfg.Language)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OCR_LANGUAGE", "chi_sim")
	t.Setenv("OCR_ENGINE", "gemini")
	t.Setenv("OCR_GEMINI_API_KEY", "test-key")
	t.Setenv("OCR_FETCH_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Language != "chi_sim" {
		t.Errorf("Language = %q, want chi_sim", cfg.Language)
	}
	if cfg.Engine != "gemini" {
		t.Errorf("Engine = %q, want gemini", cfg.Engine)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("Gemini.APIKey = %q", cfg.Gemini.APIKey)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v, want 5s", cfg.FetchTimeout)
	}
}
