package usecase

import (
	"strings"
	"testing"
)

func TestQuestionGenerator_Generate(t *testing.T) {
	generator := NewQuestionGenerator()

	t.Run("produces the full standard batch", func(t *testing.T) {
		questions := generator.Generate(fullTestRecord())

		if len(questions) != len(standardQuestionTemplates) {
			t.Fatalf("len(questions) = %d, want %d", len(questions), len(standardQuestionTemplates))
		}

		for i, q := range questions {
			if q.ID == "" || q.Text == "" || q.Category == "" {
				t.Errorf("questions[%d] has empty fields: %+v", i, q)
			}
		}
		if questions[0].ID != "q1" {
			t.Errorf("first id = %s, want q1", questions[0].ID)
		}
	})

	t.Run("named templates embed the product name", func(t *testing.T) {
		questions := generator.Generate(fullTestRecord())

		found := false
		for _, q := range questions {
			if strings.Contains(q.Text, "GlowBoost Vitamin C Serum") {
				found = true
			}
			if strings.Contains(q.Text, "%s") {
				t.Errorf("unexpanded template in %q", q.Text)
			}
		}
		if !found {
			t.Error("no question embeds the product name")
		}
	})

	t.Run("empty name falls back to generic phrasing", func(t *testing.T) {
		record := emptyTestRecord()
		record.Name = ""
		questions := generator.Generate(record)

		for _, q := range questions {
			if strings.Contains(q.Text, "%s") {
				t.Errorf("unexpanded template in %q", q.Text)
			}
		}
	})

	t.Run("batch is deterministic", func(t *testing.T) {
		first := generator.Generate(fullTestRecord())
		second := generator.Generate(fullTestRecord())

		for i := range first {
			if first[i] != second[i] {
				t.Errorf("questions[%d] differs across runs: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}
