package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings is read from the environment once at startup and only passed around by pointer afterwards.
// Nothing mutates it after Load returns.
type Settings struct {
	IsProd     bool   `env:"IS_PROD"`
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":3000"`

	AccessToken  string `env:"ACCESS_TOKEN"`
	AccessHeader string `env:"ACCESS_HEADER" envDefault:"access_token"`
	NoAuthBypass bool   `env:"NO_AUTH_BYPASS"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	GroqAPIKey   string `env:"GROQ_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GroqBaseURL  string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1/"`

	RateLimitEnabled bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RedisAddr        string `env:"REDIS_ADDR"`
	RedisPassword    string `env:"REDIS_PASSWORD"`

	Pdftoppm      string `env:"PDFTOPPM_PATH" envDefault:"pdftoppm"`
	Tesseract     string `env:"TESSERACT_PATH" envDefault:"tesseract"`
	TesseractLang string `env:"TESSERACT_LANG" envDefault:"por"`
	OcrDPI        int    `env:"OCR_DPI" envDefault:"300"`
}

func Load() (*Settings, error) {
	s, err := env.ParseAs[Settings]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if s.AccessHeader == "" {
		s.AccessHeader = DefaultAccessHeader
	}
	if s.OcrDPI <= 0 {
		s.OcrDPI = DefaultOcrDPI
	}
	return &s, nil
}
