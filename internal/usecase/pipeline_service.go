package usecase

import (
	"context"
	"log"

	"github.com/glowpage/backend/internal/domain"
)

// PipelineResult carries the outputs of one run: the canonical record, the
// classified answers, the comparison, and the assembled pages.
type PipelineResult struct {
	Record     *domain.ProductRecord
	FAQItems   []domain.FAQItem
	Comparison *domain.ComparisonResult
	Pages      *domain.GeneratedPages
}

// PipelineConfig holds configuration for the pipeline service
type PipelineConfig struct {
	EnableDebugLogging bool
}

// PipelineService sequences the content-derivation steps: record build,
// question generation, classify+answer, comparison synthesis, optional
// paraphrase pass, page assembly. The only error it surfaces is the record
// builder's missing-name failure; everything downstream degrades silently.
type PipelineService struct {
	builder    *RecordBuilder
	questions  *QuestionGenerator
	faq        *FAQService
	comparison *ComparisonService
	paraphrase *ParaphraseService
	pages      *PageBuilder
}

// NewPipelineService creates a new pipeline service with its component
// services. paraphrase may be a service constructed with a nil generator,
// which disables the paraphrase pass.
func NewPipelineService(paraphrase *ParaphraseService, config PipelineConfig) *PipelineService {
	return &PipelineService{
		builder:    NewRecordBuilder(config.EnableDebugLogging),
		questions:  NewQuestionGenerator(),
		faq:        NewFAQService(config.EnableDebugLogging),
		comparison: NewComparisonService(config.EnableDebugLogging),
		paraphrase: paraphrase,
		pages:      NewPageBuilder(),
	}
}

// Run executes the pipeline for one raw input mapping. Questions may be
// supplied by the caller; when nil, the standard batch is generated from
// the record.
func (s *PipelineService) Run(ctx context.Context, raw map[string]interface{}, questions []domain.Question) (*PipelineResult, error) {
	record, err := s.builder.Build(raw)
	if err != nil {
		return nil, err
	}
	log.Printf("[PIPELINE] Parsed record %s (%s)", record.ID, record.Name)

	if questions == nil {
		questions = s.questions.Generate(record)
	}
	log.Printf("[PIPELINE] Answering %d questions", len(questions))

	faqItems := s.faq.Answer(questions, record)
	comparison := s.comparison.Compare(record)

	if s.paraphrase != nil {
		faqItems = s.paraphrase.Paraphrase(ctx, faqItems, record)
	}

	pages := s.pages.Build(record, faqItems, comparison)

	return &PipelineResult{
		Record:     record,
		FAQItems:   faqItems,
		Comparison: comparison,
		Pages:      pages,
	}, nil
}
