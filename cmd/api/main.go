// @title           PDF Summary API
// @version         1.0
// @description     Extracts text from PDFs and office documents and summarizes it with OpenAI, Groq or Gemini.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email   ank.github@gmail.com

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey  AccessToken
// @in                          header
// @name                        access_token
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/customHttpClient"
	"github.com/akolanti/PdfSummaryAPI/internal/data/redisStore"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/extraction"
	"github.com/akolanti/PdfSummaryAPI/internal/handlers"
	"github.com/akolanti/PdfSummaryAPI/internal/llm"
	"github.com/akolanti/PdfSummaryAPI/internal/llm/gemini"
	"github.com/akolanti/PdfSummaryAPI/internal/llm/openaiChat"
	"github.com/akolanti/PdfSummaryAPI/internal/mcpTools"
	"github.com/akolanti/PdfSummaryAPI/internal/middleware"
	"github.com/akolanti/PdfSummaryAPI/internal/pipeline"
	"github.com/akolanti/PdfSummaryAPI/internal/server"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		logger_i.Init(false)
		logger_i.NewLogger("main").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger_i.Init(settings.IsProd)
	var logger = logger_i.NewLogger("main")

	//config
	listenAddr := flag.String("listen-addr", settings.ListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//extraction backends, one per strategy
	extractors := extraction.NewRegistry(
		extraction.NewTextLayerExtractor(),
		extraction.NewLayoutTextExtractor(),
		extraction.NewPdfcpuExtractor(),
		extraction.NewOCRExtractor(extraction.OCRConfigFromSettings(settings)),
		extraction.NewOfficeDocumentExtractor(),
	)

	//llm providers share one pooled transport, keys are checked per call by the gateway
	httpClient := customHttpClient.NewPooledClient()
	providers := map[commonModels.ProviderName]llm.Provider{
		commonModels.ProviderOpenAI: openaiChat.NewOpenAI(settings.OpenAIAPIKey, httpClient),
		commonModels.ProviderGroq:   openaiChat.NewGroq(settings.GroqAPIKey, settings.GroqBaseURL, httpClient),
		commonModels.ProviderGemini: gemini.NewProvider(settings.GeminiAPIKey, httpClient),
	}
	for name, key := range map[string]string{"OPENAI_API_KEY": settings.OpenAIAPIKey, "GROQ_API_KEY": settings.GroqAPIKey, "GEMINI_API_KEY": settings.GeminiAPIKey} {
		if key == "" {
			logger.Warn("provider key not set, its endpoints will answer 500", "env", name)
		}
	}

	service := pipeline.NewService(extractors, llm.NewGateway(settings, providers))

	routes := server.Routes{
		Handler:    handlers.NewRequestHandler(service),
		Middleware: middleware.NewMiddleware(settings, newLimiter(serviceContext, settings, logger)),
		Mcp:        mcpTools.Handler(mcpTools.NewServer(service)),
	}

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go func() {
		if err := server.CreateServer(*listenAddr, routes); err != nil {
			gracefulShutdown <- syscall.SIGTERM
		}
	}()

	<-stopExecution
	logger.Info("Server stopped")
}

// newLimiter shares the budget through redis when REDIS_ADDR is set and reachable, per process otherwise.
func newLimiter(ctx context.Context, settings *config.Settings, logger *logger_i.Logger) middleware.Limiter {
	if settings.RedisAddr != "" {
		store := redisStore.GetRedisStore(ctx, redisStore.Options{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       config.RedisRateLimitDB,
		})
		if store != nil {
			return middleware.NewRedisRateLimiter(store, config.BURST_RATE_LIMIT_PER_SECOND, config.RedisRateLimitWindow)
		}
		logger.Error("Redis is offline, falling back to the in-process rate limiter")
	}
	return middleware.NewDefaultIPRateLimiter()
}
