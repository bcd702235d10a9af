package usecase

import (
	"fmt"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// Fixed fallback sentences used when a record field is absent. Answers are
// composed only from record field values and these fixed strings, so the
// generator can never invent a fact.
const (
	fallbackUsage         = "Usage information was not provided."
	fallbackIngredients   = "Key ingredients were not provided."
	fallbackCompatibility = "Compatibility with other actives is not specified in the product details."
	fallbackSkinType      = "Skin suitability information was not provided."
	fallbackSafety        = "No safety information was provided."
	fallbackPrice         = "Price information was not provided."
	fallbackValue         = "Value-for-money details were not provided."
	fallbackPurchase      = "Purchase information was not provided."
	fallbackConcentration = "Concentration details were not provided for this product."
	fallbackStorage       = "Storage instructions were not provided."
	fallbackShelfLife     = "Shelf-life information was not provided."
	fallbackComparison    = "Comparison information is available in the comparison section."
	fallbackGeneric       = "This information was not provided in the product details."
)

// activeCompatibilityTerms name the other actives a compatibility question
// can reference. Claims about layering with these are never fabricated.
var activeCompatibilityTerms = []string{"retinol", "acids", "hyaluronic"}

// AnswerGenerator produces factual, template-based answers drawn only from
// record fields. It is a total function: absent data yields a fixed
// fallback sentence, never an error.
type AnswerGenerator struct{}

// NewAnswerGenerator creates a new answer generator
func NewAnswerGenerator() *AnswerGenerator {
	return &AnswerGenerator{}
}

// Answer builds the deterministic answer for a classified question.
func (g *AnswerGenerator) Answer(intent domain.Intent, questionText string, record *domain.ProductRecord) string {
	text := strings.ToLower(questionText)

	switch intent {
	case domain.IntentUsage:
		return g.answerUsage(record)
	case domain.IntentIngredients:
		return g.answerIngredients(text, record)
	case domain.IntentSafety:
		return g.answerSafety(text, record)
	case domain.IntentValue:
		return g.answerValue(text, record)
	case domain.IntentOverview:
		return g.answerOverview(text, record)
	default:
		return g.answerOther(text)
	}
}

// answerUsage embeds the record's usage text verbatim. The template sentence
// deliberately contains the word "use".
func (g *AnswerGenerator) answerUsage(record *domain.ProductRecord) string {
	if record.Usage == "" {
		return fallbackUsage
	}
	return fmt.Sprintf("You can use it as follows: %s", record.Usage)
}

func (g *AnswerGenerator) answerIngredients(text string, record *domain.ProductRecord) string {
	if containsAny(text, activeCompatibilityTerms) && containsAny(text, []string{"with", "combine", "layer", "mix", "together", "alongside"}) {
		return fallbackCompatibility
	}
	if len(record.Ingredients) == 0 {
		return fallbackIngredients
	}
	return fmt.Sprintf("The key ingredients are: %s.", strings.Join(record.Ingredients, ", "))
}

func (g *AnswerGenerator) answerSafety(text string, record *domain.ProductRecord) string {
	if containsAny(text, []string{"skin type", "suitable", "skin"}) {
		if len(record.SkinTypes) == 0 {
			return fallbackSkinType
		}
		return fmt.Sprintf("It is listed as suitable for: %s.", strings.Join(record.SkinTypes, ", "))
	}
	if record.SideEffects == "" {
		return fallbackSafety
	}
	return record.SideEffects
}

func (g *AnswerGenerator) answerValue(text string, record *domain.ProductRecord) string {
	askedPrice := containsAny(text, []string{"price", "cost", "how much"})
	askedValue := containsAny(text, []string{"value", "worth"})

	switch {
	case askedPrice && !askedValue:
		if record.PriceINR == nil {
			return fallbackPrice
		}
		return fmt.Sprintf("The price is ₹%d.", *record.PriceINR)
	case askedValue:
		// Three sub-cases: price and benefits, price only, neither.
		switch {
		case record.PriceINR != nil && len(record.Benefits) > 0:
			return fmt.Sprintf("At ₹%d, it offers: %s.", *record.PriceINR, strings.Join(record.Benefits, ", "))
		case record.PriceINR != nil:
			return fmt.Sprintf("It is priced at ₹%d.", *record.PriceINR)
		default:
			return fallbackValue
		}
	default:
		return fallbackPurchase
	}
}

func (g *AnswerGenerator) answerOverview(text string, record *domain.ProductRecord) string {
	if containsAny(text, []string{"concentration", "mean"}) {
		if record.Concentration == "" {
			return fallbackConcentration
		}
		return fmt.Sprintf("Concentration indicates the strength of the active ingredient. %s contains %s.",
			record.Name, record.Concentration)
	}

	sentence := fmt.Sprintf("%s is a skincare product", record.Name)
	if len(record.Benefits) > 0 {
		sentence += fmt.Sprintf(" known for: %s", strings.Join(record.Benefits, ", "))
	}
	if record.Concentration != "" {
		sentence += fmt.Sprintf(", formulated at %s", record.Concentration)
	}
	return sentence + "."
}

func (g *AnswerGenerator) answerOther(text string) string {
	switch {
	case containsAny(text, []string{"store", "storage"}):
		return fallbackStorage
	case containsAny(text, []string{"shelf", "expire", "expiry"}):
		return fallbackShelfLife
	case containsAny(text, []string{"compare", "comparison", "difference", "versus", " vs "}):
		return fallbackComparison
	default:
		return fallbackGeneric
	}
}

// containsAny reports whether text contains any of the given substrings
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
