package config

import (
	"log/slog"
	"time"
)

const (
	LOG_LEVEL_PROD              = slog.LevelInfo
	TRACE_ID_KEY                = "traceId"
	TRACE_ID_HEADER             = "X-Trace-Id"
	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 300 * time.Second //must exceed OcrTimeout + LLMCallTimeout
	IdleTimeout  = 120 * time.Second

	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//access control
	DefaultAccessHeader = "access_token"

	//extraction
	PdfExtension       = ".pdf"
	PageExtractTimeout = 10 * time.Second
	LayoutRowTolerance = 2.0 //points, glyphs closer than this on Y share a row
	LayoutWordGap      = 1.5 //points of horizontal gap treated as a word break

	//ocr
	DefaultPdftoppm      = "pdftoppm"
	DefaultTesseract     = "tesseract"
	DefaultTesseractLang = "por"
	DefaultOcrDPI        = 300
	OcrTimeout           = 150 * time.Second

	//llm
	GroqBaseURL     = "https://api.groq.com/openai/v1/"
	GroqModelName   = "llama-3.1-8b-instant"
	OpenAIModelName = "gpt-4o-mini"
	GeminiModelName = "gemini-2.5-flash"
	LLMCallTimeout  = 90 * time.Second

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisRateLimitDB     = 0
	RedisRateLimitPrefix = "ratelimit:"
	RedisRateLimitWindow = 1 * time.Second
	RedisTimeout         = 5 * time.Second
	RedisPingTimeout     = 3 * time.Second

	//mcp
	McpServerName    = "pdf-summary-api"
	McpServerVersion = "1.0.0"
)
