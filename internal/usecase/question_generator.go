package usecase

import (
	"fmt"

	"github.com/glowpage/backend/internal/domain"
)

// questionTemplate is one entry of the standard question batch. The text
// template takes the product name where %s appears.
type questionTemplate struct {
	category string
	text     string
	named    bool
}

// standardQuestionTemplates covers every intent plus the storage,
// shelf-life, and comparison probes. Categories here are presentation
// labels; the classifier, not this list, decides the resolved intent.
var standardQuestionTemplates = []questionTemplate{
	{category: "Informational", text: "What is %s used for?", named: true},
	{category: "Informational", text: "What does the concentration mean?"},
	{category: "Usage", text: "How do I use this product?"},
	{category: "Usage", text: "How often should I apply it?"},
	{category: "Ingredients", text: "What are the key ingredients?"},
	{category: "Ingredients", text: "Can I use it with retinol or other acids?"},
	{category: "Safety", text: "Are there any side effects?"},
	{category: "Safety", text: "Is it suitable for sensitive skin?"},
	{category: "Safety", text: "Which skin types is it suitable for?"},
	{category: "Purchase", text: "What is the price?"},
	{category: "Purchase", text: "Is it good value for money?"},
	{category: "Purchase", text: "Where can I purchase it?"},
	{category: "Comparison", text: "How does %s compare to similar products?", named: true},
	{category: "Care", text: "How should I store it?"},
	{category: "Care", text: "What is the shelf life after opening?"},
}

// QuestionGenerator builds the standard question batch for a record. The
// batch is deterministic: same record name, same questions, same order.
type QuestionGenerator struct{}

// NewQuestionGenerator creates a new question generator
func NewQuestionGenerator() *QuestionGenerator {
	return &QuestionGenerator{}
}

// Generate returns the question batch for the record.
func (g *QuestionGenerator) Generate(record *domain.ProductRecord) []domain.Question {
	name := record.Name
	if name == "" {
		name = "the product"
	}

	questions := make([]domain.Question, 0, len(standardQuestionTemplates))
	for i, tmpl := range standardQuestionTemplates {
		text := tmpl.text
		if tmpl.named {
			text = fmt.Sprintf(tmpl.text, name)
		}
		questions = append(questions, domain.Question{
			ID:       fmt.Sprintf("q%d", i+1),
			Category: tmpl.category,
			Text:     text,
		})
	}
	return questions
}
