package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// GenerationRequest is a single unary request to a text-generation backend.
type GenerationRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// TextGenerator defines the interface for external text-generation backends.
// The paraphrase gate depends only on this interface; request/response
// marshaling is each adapter's concern.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
