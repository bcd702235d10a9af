package usecase

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// Package-level compiled regex pattern for price extraction
var digitRunRegex = regexp.MustCompile(`\d+`)

// Accepted raw-key aliases per target field, probed in order. The first
// alias present with a non-null value wins; spellings are case-sensitive.
var (
	idAliases            = []string{"Product ID", "product_id", "id"}
	nameAliases          = []string{"Product Name", "product_name", "name"}
	concentrationAliases = []string{"Concentration", "concentration"}
	skinTypeAliases      = []string{"Skin Type", "skin_type", "skin_types"}
	ingredientAliases    = []string{"Key Ingredients", "key_ingredients", "ingredients"}
	benefitAliases       = []string{"Benefits", "benefits"}
	usageAliases         = []string{"How to Use", "how_to_use", "usage"}
	sideEffectAliases    = []string{"Side Effects", "side_effects"}
	priceAliases         = []string{"Price", "price", "price_inr"}
)

// currencyMarkers are stripped from price values before digit extraction
var currencyMarkers = []string{"₹", "Rs.", "INR"}

// RecordBuilder normalizes arbitrary raw key/value input into one validated
// ProductRecord. It is a pure function of its input: the raw mapping is
// retained verbatim on the record, never mutated.
type RecordBuilder struct {
	enableDebugLogging bool
}

// NewRecordBuilder creates a new record builder
func NewRecordBuilder(enableDebugLogging bool) *RecordBuilder {
	return &RecordBuilder{
		enableDebugLogging: enableDebugLogging,
	}
}

// Build resolves the raw mapping into a ProductRecord. It fails only when
// no name alias resolves to a non-empty string; every other field degrades
// to its zero value.
func (b *RecordBuilder) Build(raw map[string]interface{}) (*domain.ProductRecord, error) {
	if raw == nil {
		return nil, domain.ErrMissingName
	}

	name := strings.TrimSpace(resolveString(raw, nameAliases))
	if name == "" {
		return nil, fmt.Errorf("%w: tried aliases %v", domain.ErrMissingName, nameAliases)
	}

	id := strings.TrimSpace(resolveString(raw, idAliases))
	if id == "" {
		id = domain.DefaultRecordID
	}

	record := &domain.ProductRecord{
		ID:            id,
		Name:          name,
		Concentration: strings.TrimSpace(resolveString(raw, concentrationAliases)),
		SkinTypes:     resolveList(raw, skinTypeAliases),
		Ingredients:   resolveList(raw, ingredientAliases),
		Benefits:      resolveList(raw, benefitAliases),
		Usage:         strings.TrimSpace(resolveString(raw, usageAliases)),
		SideEffects:   strings.TrimSpace(resolveString(raw, sideEffectAliases)),
		PriceINR:      resolvePrice(raw, priceAliases),
		Raw:           raw,
	}

	if b.enableDebugLogging {
		log.Printf("[PARSE] Built record id=%s name=%q ingredients=%d benefits=%d price=%v",
			record.ID, record.Name, len(record.Ingredients), len(record.Benefits), formatPrice(record.PriceINR))
	}

	return record, nil
}

// resolveValue probes the alias list in order and returns the first present
// non-null value.
func resolveValue(raw map[string]interface{}, aliases []string) (interface{}, bool) {
	for _, key := range aliases {
		if v, ok := raw[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// resolveString resolves a field to its string form; non-string scalars are
// formatted, lists are rejected (empty string).
func resolveString(raw map[string]interface{}, aliases []string) string {
	v, ok := resolveValue(raw, aliases)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case float64, int, int64:
		return fmt.Sprintf("%v", s)
	default:
		return ""
	}
}

// resolveList accepts either an already-list value (filtered to non-empty
// trimmed strings) or a string split on "," or ";". Always returns a
// non-nil slice.
func resolveList(raw map[string]interface{}, aliases []string) []string {
	out := []string{}
	v, ok := resolveValue(raw, aliases)
	if !ok {
		return out
	}

	switch value := v.(type) {
	case []string:
		for _, item := range value {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	case []interface{}:
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	case string:
		out = append(out, splitListString(value)...)
	}

	return out
}

// splitListString splits a string field on "," or ";" into trimmed non-empty
// segments.
func splitListString(s string) []string {
	normalized := strings.ReplaceAll(s, ";", ",")
	parts := strings.Split(normalized, ",")

	out := []string{}
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// resolvePrice resolves heterogeneous price forms to a non-negative integer
// rupee amount, or nil when no usable value exists.
// Handles "₹699" -> 699, "1,299" -> 1299, "Rs. 2,499" -> 2499.
func resolvePrice(raw map[string]interface{}, aliases []string) *int {
	v, ok := resolveValue(raw, aliases)
	if !ok {
		return nil
	}

	switch value := v.(type) {
	case int:
		if value < 0 {
			return nil
		}
		p := value
		return &p
	case int64:
		if value < 0 {
			return nil
		}
		p := int(value)
		return &p
	case float64:
		// JSON numbers decode as float64
		if value < 0 {
			return nil
		}
		p := int(value)
		return &p
	case string:
		return parsePriceString(value)
	default:
		return nil
	}
}

// parsePriceString strips currency markers and thousands separators, then
// extracts the first run of digits.
func parsePriceString(s string) *int {
	cleaned := s
	for _, marker := range currencyMarkers {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	match := digitRunRegex.FindString(cleaned)
	if match == "" {
		return nil
	}

	price, err := strconv.Atoi(match)
	if err != nil || price < 0 {
		return nil
	}
	return &price
}

// formatPrice renders a nullable price for log output
func formatPrice(p *int) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *p)
}
