package usecase

import (
	"fmt"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// Presentation limits for the product page
const (
	heroBlurbMaxLen = 160
	maxHighlights   = 3
)

// PageBuilder assembles the final page artifacts from the record and the
// derived content. Pure presentation: no new facts are introduced here.
type PageBuilder struct{}

// NewPageBuilder creates a new page builder
func NewPageBuilder() *PageBuilder {
	return &PageBuilder{}
}

// Build assembles the product page, FAQ page, and comparison page.
func (b *PageBuilder) Build(record *domain.ProductRecord, faqItems []domain.FAQItem, comparison *domain.ComparisonResult) *domain.GeneratedPages {
	return &domain.GeneratedPages{
		ProductPage: b.buildProductPage(record),
		FAQ: domain.FAQPage{
			ProductID: record.ID,
			Items:     faqItems,
		},
		Comparison: domain.ComparisonPage{
			ProductA:   record,
			Comparison: comparison,
		},
	}
}

func (b *PageBuilder) buildProductPage(record *domain.ProductRecord) domain.ProductPage {
	return domain.ProductPage{
		ID:             record.ID,
		Title:          record.Name,
		PriceINR:       record.PriceINR,
		HeroBlurb:      buildHeroBlurb(record),
		Highlights:     buildHighlights(record),
		PriceStatement: buildPriceStatement(record.PriceINR),
		Metadata: domain.PageMetadata{
			Concentration: record.Concentration,
			SkinTypes:     record.SkinTypes,
		},
	}
}

// buildHeroBlurb composes a short summary from benefits and concentration,
// truncated at heroBlurbMaxLen.
func buildHeroBlurb(record *domain.ProductRecord) string {
	parts := []string{}
	if len(record.Benefits) > 0 {
		parts = append(parts, "Benefits: "+strings.Join(record.Benefits, ", "))
	}
	if record.Concentration != "" {
		parts = append(parts, record.Concentration)
	}

	blurb := record.Name
	if len(parts) > 0 {
		blurb = record.Name + " - " + strings.Join(parts, " | ")
	}

	// Truncate on rune boundaries; record text carries multi-byte
	// characters (₹, en dashes)
	if runes := []rune(blurb); len(runes) > heroBlurbMaxLen {
		blurb = strings.TrimSpace(string(runes[:heroBlurbMaxLen-3])) + "..."
	}
	return blurb
}

// buildHighlights derives up to maxHighlights short bullets from record
// fields. The price bullet is only added when a slot remains.
func buildHighlights(record *domain.ProductRecord) []string {
	highlights := []string{}
	if len(record.Benefits) > 0 {
		highlights = append(highlights, "Primary benefits: "+strings.Join(record.Benefits, ", "))
	}
	if len(record.Ingredients) > 0 {
		highlights = append(highlights, "Key ingredients: "+strings.Join(record.Ingredients, ", "))
	}
	if record.Concentration != "" {
		highlights = append(highlights, "Concentration: "+record.Concentration)
	}
	if record.PriceINR != nil && len(highlights) < maxHighlights {
		highlights = append(highlights, fmt.Sprintf("Price: ₹%d", *record.PriceINR))
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}

func buildPriceStatement(price *int) string {
	if price == nil {
		return "Price not specified."
	}
	return fmt.Sprintf("Priced at ₹%d.", *price)
}
