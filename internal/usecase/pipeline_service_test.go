package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/glowpage/backend/internal/domain"
)

func samplePipelineInput() map[string]interface{} {
	return map[string]interface{}{
		"Product Name":    "GlowBoost Vitamin C Serum",
		"Concentration":   "10%",
		"Skin Type":       []interface{}{"oily", "combination"},
		"Key Ingredients": []interface{}{"Vitamin C (Ascorbic Acid)", "Hyaluronic Acid", "Vitamin E"},
		"Benefits":        []interface{}{"brightening", "fades dark spots", "boosts collagen"},
		"How to Use":      "Apply 2–3 drops in the morning before sunscreen.",
		"Side Effects":    "Mild tingling for sensitive skin.",
		"Price":           "₹699",
	}
}

func TestPipelineService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("full deterministic run", func(t *testing.T) {
		pipeline := NewPipelineService(nil, PipelineConfig{})

		result, err := pipeline.Run(ctx, samplePipelineInput(), nil)
		if err != nil {
			t.Fatalf("Run() error = %v, want nil", err)
		}

		if result.Record == nil || result.Record.Name != "GlowBoost Vitamin C Serum" {
			t.Fatalf("Record = %+v, want parsed record", result.Record)
		}
		if len(result.FAQItems) == 0 {
			t.Fatal("FAQItems empty, want answered standard batch")
		}
		if result.Comparison == nil || !result.Comparison.Generated {
			t.Errorf("Comparison = %+v, want generated comparator", result.Comparison)
		}
		if result.Pages == nil {
			t.Fatal("Pages = nil, want assembled pages")
		}
		if result.Pages.ProductPage.Title != "GlowBoost Vitamin C Serum" {
			t.Errorf("ProductPage.Title = %s, want product name", result.Pages.ProductPage.Title)
		}
	})

	t.Run("usage answer embeds the source text verbatim", func(t *testing.T) {
		pipeline := NewPipelineService(nil, PipelineConfig{})

		result, err := pipeline.Run(ctx, samplePipelineInput(), nil)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		found := false
		for _, item := range result.FAQItems {
			if item.Category != string(domain.IntentUsage) {
				continue
			}
			if strings.Contains(item.Answer, "Apply 2–3 drops in the morning before sunscreen.") {
				found = true
			}
		}
		if !found {
			t.Error("no usage answer carries the verbatim instructions")
		}
	})

	t.Run("generated comparator id is clearly synthetic", func(t *testing.T) {
		pipeline := NewPipelineService(nil, PipelineConfig{})

		result, err := pipeline.Run(ctx, samplePipelineInput(), nil)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if !strings.HasPrefix(result.Comparison.ProductB.ID, "generated_variant_") {
			t.Errorf("comparator id = %s, want generated_variant_ prefix", result.Comparison.ProductB.ID)
		}
		if result.Comparison.GeneratedNote == "" {
			t.Error("generated comparator must carry the disclosure note")
		}
	})

	t.Run("caller-supplied questions bypass the generator", func(t *testing.T) {
		pipeline := NewPipelineService(nil, PipelineConfig{})

		questions := []domain.Question{
			{ID: "c1", Text: "What is the price?"},
		}
		result, err := pipeline.Run(ctx, samplePipelineInput(), questions)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if len(result.FAQItems) != 1 {
			t.Fatalf("len(FAQItems) = %d, want 1", len(result.FAQItems))
		}
		if result.FAQItems[0].Answer != "The price is ₹699." {
			t.Errorf("Answer = %q, want price statement", result.FAQItems[0].Answer)
		}
	})

	t.Run("missing name is the only surfaced error", func(t *testing.T) {
		pipeline := NewPipelineService(nil, PipelineConfig{})

		_, err := pipeline.Run(ctx, map[string]interface{}{"Price": "₹699"}, nil)
		if !errors.Is(err, domain.ErrMissingName) {
			t.Errorf("Run() error = %v, want ErrMissingName", err)
		}
	})

	t.Run("paraphrase pass rewrites answers", func(t *testing.T) {
		generator := &stubGenerator{response: "A gentle rewording of the answer."}
		paraphrase := NewParaphraseService(generator, nil, ParaphraseConfig{})
		pipeline := NewPipelineService(paraphrase, PipelineConfig{})

		result, err := pipeline.Run(ctx, samplePipelineInput(), []domain.Question{
			{ID: "q1", Text: "How should I store it?"},
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if result.FAQItems[0].Answer != generator.response {
			t.Errorf("Answer = %q, want paraphrased text", result.FAQItems[0].Answer)
		}
	})

	t.Run("two runs produce identical output", func(t *testing.T) {
		pipeline := NewPipelineService(nil, PipelineConfig{})

		first, err := pipeline.Run(ctx, samplePipelineInput(), nil)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		second, err := pipeline.Run(ctx, samplePipelineInput(), nil)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if len(first.FAQItems) != len(second.FAQItems) {
			t.Fatalf("FAQ counts differ: %d vs %d", len(first.FAQItems), len(second.FAQItems))
		}
		for i := range first.FAQItems {
			if first.FAQItems[i] != second.FAQItems[i] {
				t.Errorf("FAQItems[%d] differs across runs", i)
			}
		}
		if first.Comparison.Summary != second.Comparison.Summary {
			t.Error("comparison summary differs across runs")
		}
	})
}
