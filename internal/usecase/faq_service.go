package usecase

import (
	"log"

	"github.com/glowpage/backend/internal/domain"
)

// FAQService runs the classify-then-answer pass over a question batch.
type FAQService struct {
	classifier         *QuestionClassifier
	generator          *AnswerGenerator
	enableDebugLogging bool
}

// NewFAQService creates a new FAQ service
func NewFAQService(enableDebugLogging bool) *FAQService {
	return &FAQService{
		classifier:         NewQuestionClassifier(),
		generator:          NewAnswerGenerator(),
		enableDebugLogging: enableDebugLogging,
	}
}

// Answer produces exactly one answer per question with non-empty text,
// preserving input order. Questions with empty text are skipped.
func (s *FAQService) Answer(questions []domain.Question, record *domain.ProductRecord) []domain.FAQItem {
	items := make([]domain.FAQItem, 0, len(questions))

	for _, q := range questions {
		if q.Text == "" {
			continue
		}

		intent := s.classifier.Classify(q.Text)
		answer := s.generator.Answer(intent, q.Text, record)

		if s.enableDebugLogging {
			log.Printf("[CLASSIFY] %q -> %s", q.Text, intent)
		}

		items = append(items, domain.FAQItem{
			Question: q.Text,
			Category: string(intent),
			Answer:   answer,
		})
	}

	return items
}
