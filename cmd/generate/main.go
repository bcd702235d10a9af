package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/glowpage/backend/config"
	"github.com/glowpage/backend/internal/domain"
	"github.com/glowpage/backend/internal/infrastructure/cache"
	"github.com/glowpage/backend/internal/infrastructure/llm"
	"github.com/glowpage/backend/internal/infrastructure/storage"
	"github.com/glowpage/backend/internal/usecase"
)

func main() {
	inputPath := flag.String("i", "", "path to the raw product record JSON (omit to use the built-in sample)")
	outDir := flag.String("o", "", "output directory for generated artifacts (default from config)")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	raw, err := loadRecord(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read input record: %v", err)
	}

	debug := cfg.Server.Environment == "development"

	pipeline := usecase.NewPipelineService(
		buildParaphraseService(cfg, debug),
		usecase.PipelineConfig{EnableDebugLogging: debug},
	)

	result, err := pipeline.Run(context.Background(), raw, nil)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	dir := *outDir
	if dir == "" {
		dir = cfg.Output.Dir
	}

	paths, err := storage.NewWriter(dir).WriteArtifacts(result.Pages)
	if err != nil {
		log.Fatalf("Failed to write artifacts: %v", err)
	}

	log.Printf("Generated pages for %s (%s)", result.Record.Name, result.Record.ID)
	for name, path := range paths {
		log.Printf("  %s -> %s", name, path)
	}
}

// loadRecord reads the raw record mapping from path, or returns the bundled
// sample record when path is empty.
func loadRecord(path string) (map[string]interface{}, error) {
	if path == "" {
		log.Printf("No input given, using the built-in sample record")
		return sampleRecord(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func sampleRecord() map[string]interface{} {
	return map[string]interface{}{
		"Product Name":  "GlowBoost Vitamin C Serum",
		"Concentration": "10%",
		"Skin Type":     []interface{}{"oily", "combination"},
		"Key Ingredients": []interface{}{
			"Vitamin C (Ascorbic Acid)", "Hyaluronic Acid", "Vitamin E",
		},
		"Benefits": []interface{}{
			"brightening", "fades dark spots", "boosts collagen",
		},
		"How to Use":   "Apply 2–3 drops in the morning before sunscreen.",
		"Side Effects": "Mild tingling for sensitive skin.",
		"Price":        "₹699",
	}
}

// buildParaphraseService wires the configured text-generation backend and
// the paraphrase cache. Provider "none" yields a pass-through service.
func buildParaphraseService(cfg *config.Config, debug bool) *usecase.ParaphraseService {
	return usecase.NewParaphraseService(
		buildGenerator(cfg, debug),
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
		return client
	case config.ProviderOllama:
		client := llm.NewOllamaClient(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Paraphrase.Timeout)
		client.SetDebug(debug)
		return client
	default:
		return nil
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stdout)
}
