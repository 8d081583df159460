package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "secret")
	t.Setenv("OCR_DPI", "0")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.AccessToken != "secret" {
		t.Errorf("AccessToken got %q, want %q", s.AccessToken, "secret")
	}
	if s.AccessHeader != DefaultAccessHeader {
		t.Errorf("AccessHeader got %q, want %q", s.AccessHeader, DefaultAccessHeader)
	}
	if s.OcrDPI != DefaultOcrDPI {
		t.Errorf("OcrDPI got %d, want %d", s.OcrDPI, DefaultOcrDPI)
	}
	if s.GroqBaseURL != GroqBaseURL {
		t.Errorf("GroqBaseURL got %q, want %q", s.GroqBaseURL, GroqBaseURL)
	}
	if !s.RateLimitEnabled {
		t.Error("rate limiting should default to enabled")
	}
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("OCR_DPI", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("expected error for non numeric OCR_DPI")
	}
}
