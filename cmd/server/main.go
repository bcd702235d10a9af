package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/glowpage/backend/config"
	httpDelivery "github.com/glowpage/backend/internal/delivery/http"
	"github.com/glowpage/backend/internal/domain"
	"github.com/glowpage/backend/internal/infrastructure/cache"
	"github.com/glowpage/backend/internal/infrastructure/llm"
	"github.com/glowpage/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GlowPage Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Paraphrase provider: %s", cfg.Paraphrase.Provider)

	debug := cfg.Server.Environment == "development"

	// Initialize usecase layer
	pipeline := usecase.NewPipelineService(
		buildParaphraseService(cfg, debug),
		usecase.PipelineConfig{EnableDebugLogging: debug},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(pipeline)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildParaphraseService wires the configured text-generation backend and
// the paraphrase cache. Provider "none" yields a pass-through service.
func buildParaphraseService(cfg *config.Config, debug bool) *usecase.ParaphraseService {
	generator := buildGenerator(cfg, debug)

	return usecase.NewParaphraseService(
		generator,
		cache.NewMemoryCache(),
		usecase.ParaphraseConfig{
			Temperature: cfg.Paraphrase.Temperature,
			MaxTokens:   cfg.Paraphrase.MaxTokens,
			Timeout:     cfg.Paraphrase.Timeout,
			CacheTTL:    cfg.Cache.TTL,
		},
	)
}

func buildGenerator(cfg *config.Config, debug bool) domain.TextGenerator {
	switch cfg.Paraphrase.Provider {
	case config.ProviderOpenAI:
		client := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.Paraphrase.Timeout)
		client.SetDebug(debug)
		log.Printf("Paraphrase backend: OpenAI-compatible (%s, model %s)", cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
		return client
	case config.ProviderOllama:
		client := llm.NewOllamaClient(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Paraphrase.Timeout)
		client.SetDebug(debug)
		log.Printf("Paraphrase backend: Ollama (%s, model %s)", cfg.Ollama.BaseURL, cfg.Ollama.Model)
		return client
	default:
		log.Printf("Paraphrase disabled; running deterministic mode only")
		return nil
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
