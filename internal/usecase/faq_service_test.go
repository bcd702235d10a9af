package usecase

import (
	"testing"

	"github.com/glowpage/backend/internal/domain"
)

func TestFAQService_Answer(t *testing.T) {
	service := NewFAQService(false)
	record := fullTestRecord()

	t.Run("one answer per question, order preserved", func(t *testing.T) {
		questions := []domain.Question{
			{ID: "q1", Text: "How do I use this product?"},
			{ID: "q2", Text: "What is the price?"},
			{ID: "q3", Text: "Are there any side effects?"},
		}

		items := service.Answer(questions, record)

		if len(items) != 3 {
			t.Fatalf("len(items) = %d, want 3", len(items))
		}
		for i, q := range questions {
			if items[i].Question != q.Text {
				t.Errorf("items[%d].Question = %q, want %q", i, items[i].Question, q.Text)
			}
			if items[i].Answer == "" {
				t.Errorf("items[%d].Answer is empty", i)
			}
		}
	})

	t.Run("category is the resolved intent", func(t *testing.T) {
		questions := []domain.Question{
			{ID: "q1", Category: "Usage", Text: "How do I use this product?"},
			{ID: "q2", Category: "Purchase", Text: "What is the price?"},
			{ID: "q3", Category: "Care", Text: "How should I store it?"},
		}

		items := service.Answer(questions, record)

		wantCategories := []string{
			string(domain.IntentUsage),
			string(domain.IntentValue),
			string(domain.IntentOther),
		}
		for i, want := range wantCategories {
			if items[i].Category != want {
				t.Errorf("items[%d].Category = %s, want %s", i, items[i].Category, want)
			}
		}
	})

	t.Run("empty-text questions are skipped", func(t *testing.T) {
		questions := []domain.Question{
			{ID: "q1", Text: "What is the price?"},
			{ID: "q2", Text: ""},
			{ID: "q3", Text: "Are there any side effects?"},
		}

		items := service.Answer(questions, record)

		if len(items) != 2 {
			t.Fatalf("len(items) = %d, want 2", len(items))
		}
		if items[0].Question != "What is the price?" || items[1].Question != "Are there any side effects?" {
			t.Errorf("items = %v, want skipped blank question", items)
		}
	})

	t.Run("full standard batch gets full coverage", func(t *testing.T) {
		questions := NewQuestionGenerator().Generate(record)
		items := service.Answer(questions, record)

		if len(items) != len(questions) {
			t.Fatalf("len(items) = %d, want %d", len(items), len(questions))
		}

		seen := map[string]bool{}
		for _, item := range items {
			seen[item.Category] = true
		}
		for _, intent := range []domain.Intent{
			domain.IntentUsage, domain.IntentIngredients, domain.IntentSafety,
			domain.IntentValue, domain.IntentOverview, domain.IntentOther,
		} {
			if !seen[string(intent)] {
				t.Errorf("standard batch produced no %s answer", intent)
			}
		}
	})
}
