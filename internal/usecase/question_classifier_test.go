package usecase

import (
	"testing"

	"github.com/glowpage/backend/internal/domain"
)

func TestQuestionClassifier_Classify(t *testing.T) {
	classifier := NewQuestionClassifier()

	tests := []struct {
		name string
		text string
		want domain.Intent
	}{
		{"usage phrasing", "How do I use this product?", domain.IntentUsage},
		{"application frequency", "How often should I apply it?", domain.IntentUsage},
		{"apply keyword", "When should I apply the serum?", domain.IntentUsage},
		{"ingredients list", "What are the key ingredients?", domain.IntentIngredients},
		{"formulation", "What is in the formulation?", domain.IntentIngredients},
		{"compatibility with actives", "Can I use it with retinol or other acids?", domain.IntentIngredients},
		{"side effects", "Are there any side effects?", domain.IntentSafety},
		{"sensitive skin", "Is it suitable for sensitive skin?", domain.IntentSafety},
		{"skin types", "Which skin types is it suitable for?", domain.IntentSafety},
		{"price question", "What is the price?", domain.IntentValue},
		{"value for money", "Is it good value for money?", domain.IntentValue},
		{"where to buy", "Where can I purchase it?", domain.IntentValue},
		{"what is it", "What is GlowBoost used for?", domain.IntentOverview},
		{"concentration meaning", "What does the concentration mean?", domain.IntentOverview},
		{"comparison", "How does GlowBoost compare to similar products?", domain.IntentOther},
		{"storage", "How should I store it?", domain.IntentOther},
		{"shelf life", "What is the shelf life after opening?", domain.IntentOther},
		{"unmatched text", "Do you ship to Mumbai?", domain.IntentOther},
		{"empty text", "", domain.IntentOther},
		{"whitespace only", "   ", domain.IntentOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestQuestionClassifier_RuleOrdering(t *testing.T) {
	classifier := NewQuestionClassifier()

	// Texts matching multiple rule groups must resolve to the earlier rule.
	tests := []struct {
		name string
		text string
		want domain.Intent
	}{
		// "how do i use" (usage) beats "what is" fallthrough
		{"usage beats overview", "How do I use this? What is the routine?", domain.IntentUsage},
		// "compare" (other) beats "price" (value)
		{"comparison beats value", "Compare the price with similar serums", domain.IntentOther},
		// "price" (value) beats "what is" (overview)
		{"value beats overview", "What is the price?", domain.IntentValue},
		// "retinol" (ingredients) beats "safe" (safety)
		{"ingredients beats safety", "Is retinol safe here?", domain.IntentIngredients},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestQuestionClassifier_Deterministic(t *testing.T) {
	classifier := NewQuestionClassifier()

	text := "Is it suitable for sensitive skin?"
	first := classifier.Classify(text)
	for i := 0; i < 5; i++ {
		if got := classifier.Classify(text); got != first {
			t.Fatalf("Classify() not stable: got %s then %s", first, got)
		}
	}
}

func TestQuestionClassifier_CaseInsensitive(t *testing.T) {
	classifier := NewQuestionClassifier()

	if got := classifier.Classify("WHAT IS THE PRICE?"); got != domain.IntentValue {
		t.Errorf("Classify(upper) = %s, want %s", got, domain.IntentValue)
	}
	if got := classifier.Classify("how do i USE this"); got != domain.IntentUsage {
		t.Errorf("Classify(mixed) = %s, want %s", got, domain.IntentUsage)
	}
}
