package usecase

import (
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// classifierRule pairs a keyword predicate with the intent it resolves to.
// Rules are evaluated top-to-bottom, first match wins, so the slice order
// below is load-bearing: usage phrases go first ("how do I use" must not
// land in overview), then the specific storage/shelf-life/comparison
// probes that belong to "other", then value, ingredients, safety, and the
// generic overview patterns last.
type classifierRule struct {
	keywords []string
	intent   domain.Intent
}

var classifierRules = []classifierRule{
	{
		keywords: []string{"how to use", "how do i use", "how should i use", "apply", "application", "how often"},
		intent:   domain.IntentUsage,
	},
	{
		keywords: []string{"store", "storage", "shelf", "expire", "expiry", "compare", "comparison", "difference", "versus", " vs "},
		intent:   domain.IntentOther,
	},
	{
		keywords: []string{"price", "cost", "how much", "value for money", "worth", "where to buy", "purchase", "buy"},
		intent:   domain.IntentValue,
	},
	{
		keywords: []string{"ingredient", "contain", "made of", "formulation", "formula", "retinol", "hyaluronic", "acids", "niacinamide", "combine", "layer", "mix with"},
		intent:   domain.IntentIngredients,
	},
	{
		keywords: []string{"side effect", "safe", "safety", "sensitive", "irritat", "skin type", "suitable", "skin"},
		intent:   domain.IntentSafety,
	},
	{
		keywords: []string{"what is", "what does", "what are", "tell me about", "mean", "concentration", "used for", "about this"},
		intent:   domain.IntentOverview,
	},
}

// QuestionClassifier assigns free-text questions to one of the six fixed
// intent categories using the ordered keyword cascade above.
type QuestionClassifier struct{}

// NewQuestionClassifier creates a new question classifier
func NewQuestionClassifier() *QuestionClassifier {
	return &QuestionClassifier{}
}

// Classify returns exactly one intent for any input text. It is a total
// function: unmatched text always falls to IntentOther.
func (c *QuestionClassifier) Classify(questionText string) domain.Intent {
	text := strings.ToLower(strings.TrimSpace(questionText))
	if text == "" {
		return domain.IntentOther
	}

	for _, rule := range classifierRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.intent
			}
		}
	}

	return domain.IntentOther
}
