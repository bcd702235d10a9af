package usecase

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/glowpage/backend/internal/domain"
)

// Rewrite acceptance limits. A rewrite longer than
// max(minRewriteCeiling, rewriteLengthFactor * original) is rejected as
// runaway or padded output.
const (
	rewriteLengthFactor = 3
	minRewriteCeiling   = 400
)

const paraphraseSystemPrompt = "You are a careful paraphraser. Rephrase the provided answer for clarity and tone " +
	"without adding any new factual claims, numeric values, references to studies, or guarantees. " +
	"If you cannot paraphrase without adding facts, return the original answer. " +
	"Return only the paraphrased answer as plain text."

// denylistPatterns match unverifiable-claim words a rewrite may never
// introduce.
var denylistPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bclinical\b`),
	regexp.MustCompile(`\bstudy\b`),
	regexp.MustCompile(`\bproven\b`),
	regexp.MustCompile(`\bfda\b`),
	regexp.MustCompile(`\bdermatologist\b`),
	regexp.MustCompile(`\bguarantee\b`),
	regexp.MustCompile(`\bguaranteed\b`),
}

var (
	multiDigitRegex = regexp.MustCompile(`\d{2,}`)
	percentRegex    = regexp.MustCompile(`\d+%`)
)

// ParaphraseConfig holds configuration for the paraphrase service
type ParaphraseConfig struct {
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	CacheTTL    time.Duration
}

// ParaphraseService sends generated answers to an external text-generation
// backend and accepts the rewritten text only when it passes the factual
// integrity check. Any failure (network, parsing, validation) causes that
// item to pass through unchanged; the caller never sees an error.
type ParaphraseService struct {
	generator   domain.TextGenerator
	cache       domain.CacheRepository
	temperature float64
	maxTokens   int
	timeout     time.Duration
	cacheTTL    time.Duration
}

// NewParaphraseService creates a new paraphrase service. generator may be
// nil, in which case Paraphrase is a no-op; cache is optional.
func NewParaphraseService(generator domain.TextGenerator, cache domain.CacheRepository, config ParaphraseConfig) *ParaphraseService {
	temperature := config.Temperature
	if temperature <= 0 {
		temperature = 0.2
	}
	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 256
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ParaphraseService{
		generator:   generator,
		cache:       cache,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
		cacheTTL:    cacheTTL,
	}
}

// Paraphrase rewrites each item's answer through the backend, keeping the
// original whenever the call fails or the rewrite fails validation. The
// returned slice has the same length and order as the input.
func (s *ParaphraseService) Paraphrase(ctx context.Context, items []domain.FAQItem, record *domain.ProductRecord) []domain.FAQItem {
	if s.generator == nil || len(items) == 0 {
		return items
	}

	out := make([]domain.FAQItem, len(items))
	for i, item := range items {
		out[i] = item
		rewritten, ok := s.paraphraseOne(ctx, item, record)
		if ok {
			out[i].Answer = rewritten
		}
	}
	return out
}

// paraphraseOne handles one item: cache lookup, backend call, validation,
// cache fill. Returns the accepted rewrite, or ok=false to keep the
// original.
func (s *ParaphraseService) paraphraseOne(ctx context.Context, item domain.FAQItem, record *domain.ProductRecord) (string, bool) {
	key := paraphraseCacheKey(item.Answer)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			return cached, true
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rewritten, err := s.generator.Generate(callCtx, domain.GenerationRequest{
		System:      paraphraseSystemPrompt,
		Prompt:      buildParaphrasePrompt(item, record),
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		log.Printf("[PARAPHRASE] backend call failed, keeping original: %v", err)
		return "", false
	}

	rewritten = strings.TrimSpace(rewritten)
	if !validateRewrite(item.Answer, rewritten, record) {
		log.Printf("[PARAPHRASE] rewrite rejected by integrity check, keeping original")
		return "", false
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rewritten, s.cacheTTL); err != nil {
			log.Printf("[PARAPHRASE] cache set failed: %v", err)
		}
	}

	return rewritten, true
}

// buildParaphrasePrompt embeds the answer plus the record's factual fields
// as explicit constraints.
func buildParaphrasePrompt(item domain.FAQItem, record *domain.ProductRecord) string {
	var b strings.Builder
	b.WriteString("Paraphrase the following answer for clarity and tone WITHOUT adding any new facts, numbers, references, or claims.\n\n")
	fmt.Fprintf(&b, "Question: %s\n", item.Question)
	fmt.Fprintf(&b, "Category: %s\n", item.Category)
	fmt.Fprintf(&b, "Answer: %s\n\n", item.Answer)

	b.WriteString("Known product facts (do not contradict, do not extend):\n")
	fmt.Fprintf(&b, "- Name: %s\n", record.Name)
	if record.Concentration != "" {
		fmt.Fprintf(&b, "- Concentration: %s\n", record.Concentration)
	}
	if record.PriceINR != nil {
		fmt.Fprintf(&b, "- Price: ₹%d\n", *record.PriceINR)
	}
	return b.String()
}

// validateRewrite is the factual-integrity check. It is intentionally
// conservative: on any doubt the rewrite is rejected and the original kept.
func validateRewrite(original, rewritten string, record *domain.ProductRecord) bool {
	if strings.TrimSpace(rewritten) == "" {
		return false
	}

	lower := strings.ToLower(rewritten)
	for _, pattern := range denylistPatterns {
		if pattern.MatchString(lower) {
			return false
		}
	}

	// Any 2+-digit number must match the known price exactly. Percentages
	// are excluded here; they get their own check below.
	if record.PriceINR != nil && *record.PriceINR != 0 {
		priceStr := strconv.Itoa(*record.PriceINR)
		sanitized := percentRegex.ReplaceAllString(strings.ReplaceAll(rewritten, ",", ""), "")
		for _, num := range multiDigitRegex.FindAllString(sanitized, -1) {
			if num != priceStr {
				return false
			}
		}
	}

	// Every percentage must restate the record's concentration percentage
	recordPct := percentRegex.FindString(record.Concentration)
	for _, rewritePct := range percentRegex.FindAllString(rewritten, -1) {
		if recordPct == "" || rewritePct != recordPct {
			return false
		}
	}

	ceiling := len(original) * rewriteLengthFactor
	if ceiling < minRewriteCeiling {
		ceiling = minRewriteCeiling
	}
	return len(rewritten) <= ceiling
}

// paraphraseCacheKey derives a stable cache key from the answer text
func paraphraseCacheKey(answer string) string {
	digest := md5.Sum([]byte(strings.TrimSpace(strings.ToLower(answer))))
	return "paraphrase:" + hex.EncodeToString(digest[:])
}
