package usecase

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// Decision thresholds carried over from the original product rules. The
// constants are arbitrary (no documented rationale exists); flagged for
// product-owner confirmation rather than re-derived.
const (
	valueLabelThreshold = 0.5 // indicator >= this -> product A labelled better value
	priceRuleThreshold  = 0.6 // overall similarity >= this -> emit price-driven rule
)

// Fixed option tables for the deterministic comparator variant. Five
// independent indices into these tables are derived from the record
// identifier hash, so synthesis is a pure function of the identifier.
var (
	ingredientSwapTable = [][]string{
		{"glycerin", "niacinamide"},
		{"squalane", "glycerin"},
		{"panthenol", "glycerin"},
		{"betaine", "urea"},
	}
	benefitVariantTable = [][]string{
		{"hydration", "soothing"},
		{"anti-aging", "firming"},
		{"brightening", "even-tone"},
		{"hydration", "barrier-repair"},
	}
	concentrationTable = []string{"5% Vitamin C", "10% Vitamin C", "15% Vitamin C"}
	skinTypeTable      = [][]string{
		{"dry", "sensitive"},
		{"normal", "dry"},
		{"oily", "combination"},
		{"all skin types"},
	}
	priceMultiplierTable = []float64{0.8, 1.1, 1.25, 1.5}
)

// comparatorRawKeys are the raw-input keys probed for an explicitly
// supplied comparator object.
var comparatorRawKeys = []string{"product_b", "productB"}

const generatedComparatorNote = "Product B was deterministically generated for comparison (not a real SKU)."

// ComparisonService deterministically derives a comparator record and
// computes overlap, price-delta, and recommendation data against it.
// Compare never fails: scoring edge cases degrade to neutral defaults.
type ComparisonService struct {
	enableDebugLogging bool
}

// NewComparisonService creates a new comparison service
func NewComparisonService(enableDebugLogging bool) *ComparisonService {
	return &ComparisonService{
		enableDebugLogging: enableDebugLogging,
	}
}

// Compare builds the ComparisonResult for a record. An explicit comparator
// in the record's carried raw input is used verbatim; otherwise one is
// synthesized from the identifier hash.
func (s *ComparisonService) Compare(record *domain.ProductRecord) *domain.ComparisonResult {
	comparator, generated := s.resolveComparator(record)

	// Backfill descriptive fields missing on the comparator
	if comparator.Concentration == "" {
		comparator.Concentration = record.Concentration
	}
	if len(comparator.SkinTypes) == 0 {
		comparator.SkinTypes = append([]string{}, record.SkinTypes...)
	}
	if comparator.Usage == "" {
		comparator.Usage = record.Usage
	}
	if comparator.SideEffects == "" {
		comparator.SideEffects = record.SideEffects
	}

	aIngredients := normalizeList(record.Ingredients)
	bIngredients := normalizeList(comparator.Ingredients)
	aBenefits := normalizeList(record.Benefits)
	bBenefits := normalizeList(comparator.Benefits)

	sharedIngredients := sharedItems(aIngredients, bIngredients)
	uniqueToA := uniqueItems(aIngredients, bIngredients)
	uniqueToB := uniqueItems(bIngredients, aIngredients)

	sharedBenefits := sharedItems(aBenefits, bBenefits)
	uniqueBenefitsA := uniqueItems(aBenefits, bBenefits)
	uniqueBenefitsB := uniqueItems(bBenefits, aBenefits)

	ingredientOverlap := overlapScore(sharedIngredients, aIngredients, bIngredients)
	benefitOverlap := overlapScore(sharedBenefits, aBenefits, bBenefits)
	overall := round3((ingredientOverlap + benefitOverlap) / 2.0)

	priceDiff := priceDelta(record.PriceINR, comparator.PriceINR)

	summary := buildSummary(record.Name, comparator.Name, sharedIngredients, uniqueToA, uniqueToB, priceDiff)

	pros, cons := buildProsCons(record.PriceINR, comparator.PriceINR,
		sharedIngredients, uniqueToA, uniqueToB,
		sharedBenefits, uniqueBenefitsA, uniqueBenefitsB)

	indicator := valueIndicator(overall, record.PriceINR, comparator.PriceINR)
	label := "Product A offers better value"
	if indicator < valueLabelThreshold {
		label = "Product B may offer better value"
	}

	recommendation := buildRecommendation(record, &comparator,
		uniqueBenefitsA, uniqueBenefitsB, overall)

	result := &domain.ComparisonResult{
		ProductB:          comparator,
		SharedIngredients: titleCaseList(sharedIngredients),
		UniqueToA:         titleCaseList(uniqueToA),
		UniqueToB:         titleCaseList(uniqueToB),
		SharedBenefits:    titleCaseList(sharedBenefits),
		UniqueBenefitsA:   titleCaseList(uniqueBenefitsA),
		UniqueBenefitsB:   titleCaseList(uniqueBenefitsB),
		PriceA:            record.PriceINR,
		PriceB:            comparator.PriceINR,
		PriceDifference:   priceDiff,
		Score: domain.OverlapScore{
			IngredientOverlap: round3(ingredientOverlap),
			BenefitOverlap:    round3(benefitOverlap),
			Overall:           overall,
		},
		Summary:        summary,
		ValueIndicator: indicator,
		ValueLabel:     label,
		Recommendation: recommendation,
		Pros:           pros,
		Cons:           cons,
		Generated:      generated,
	}
	if generated {
		result.GeneratedNote = generatedComparatorNote
	}

	if s.enableDebugLogging {
		log.Printf("[COMPARE] a=%s b=%s generated=%v overall=%.3f indicator=%.3f",
			record.ID, comparator.ID, generated, overall, indicator)
	}

	return result
}

// resolveComparator returns the explicitly supplied comparator when the raw
// input carries one, otherwise a synthesized variant. The second return
// value reports whether the comparator was generated.
func (s *ComparisonService) resolveComparator(record *domain.ProductRecord) (domain.ComparatorRecord, bool) {
	for _, key := range comparatorRawKeys {
		v, ok := record.Raw[key]
		if !ok || v == nil {
			continue
		}
		supplied, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		return parseSuppliedComparator(supplied), false
	}
	return s.synthesizeComparator(record), true
}

// parseSuppliedComparator shallow-copies a user-supplied comparator object
// into the typed record shape. Supplied comparators use the canonical field
// keys; the price field additionally accepts the raw "price" spelling.
func parseSuppliedComparator(supplied map[string]interface{}) domain.ComparatorRecord {
	return domain.ComparatorRecord{
		ID:            resolveString(supplied, []string{"id"}),
		Name:          resolveString(supplied, []string{"name"}),
		Concentration: resolveString(supplied, []string{"concentration"}),
		SkinTypes:     resolveList(supplied, []string{"skin_type"}),
		Ingredients:   resolveList(supplied, []string{"ingredients"}),
		Benefits:      resolveList(supplied, []string{"benefits"}),
		Usage:         resolveString(supplied, []string{"usage"}),
		SideEffects:   resolveString(supplied, []string{"side_effects"}),
		PriceINR:      resolvePrice(supplied, []string{"price_inr", "price"}),
	}
}

// synthesizeComparator derives a clearly-labelled variant from a stable
// hash of the record identifier. The hash is reduced to five independent
// table indices, so calling it twice on the same record yields identical
// output without any stored state.
func (s *ComparisonService) synthesizeComparator(record *domain.ProductRecord) domain.ComparatorRecord {
	baseID := record.ID
	if baseID == "" {
		baseID = "product_a"
	}

	digest := md5.Sum([]byte(baseID))
	num64, err := strconv.ParseUint(hex.EncodeToString(digest[:])[:8], 16, 64)
	if err != nil {
		// unreachable for a hex digest; keep synthesis total anyway
		num64 = 0
	}
	num := uint(num64)

	idx1 := int(num % uint(len(ingredientSwapTable)))
	idx2 := int((num >> 3) % uint(len(benefitVariantTable)))
	idx3 := int((num >> 6) % uint(len(concentrationTable)))
	idx4 := int((num >> 9) % uint(len(skinTypeTable)))
	idx5 := int((num >> 12) % uint(len(priceMultiplierTable)))

	ingredients := blendWithSeed(record.Ingredients, ingredientSwapTable[idx1])
	benefits := blendWithSeed(record.Benefits, benefitVariantTable[idx2])

	var price *int
	if record.PriceINR != nil && *record.PriceINR != 0 {
		p := int(math.Round(float64(*record.PriceINR) * priceMultiplierTable[idx5]))
		price = &p
	}

	return domain.ComparatorRecord{
		// id is clearly generated, never resembling a real product code
		ID:            fmt.Sprintf("generated_variant_%d%d", idx1, idx2),
		Name:          fmt.Sprintf("%s (Generated Comparator)", record.Name),
		Concentration: concentrationTable[idx3],
		SkinTypes:     append([]string{}, skinTypeTable[idx4]...),
		Ingredients:   ingredients,
		Benefits:      benefits,
		Usage:         record.Usage,
		SideEffects:   record.SideEffects,
		PriceINR:      price,
		Metadata: domain.ComparatorMetadata{
			Generated: true,
			VariantReason: fmt.Sprintf("swap_idx=%d,ben_idx=%d,conc_idx=%d,skin_idx=%d,price_idx=%d",
				idx1, idx2, idx3, idx4, idx5),
		},
	}
}

// blendWithSeed carries over the first source item and appends the variant
// table entries, deduplicated case-insensitively.
func blendWithSeed(source []string, variants []string) []string {
	out := []string{}
	seen := map[string]bool{}

	if len(source) > 0 {
		out = append(out, source[0])
		seen[strings.ToLower(source[0])] = true
	}
	for _, v := range variants {
		if !seen[strings.ToLower(v)] {
			out = append(out, v)
			seen[strings.ToLower(v)] = true
		}
	}
	return out
}

// normalizeList trims and lowercases list entries, dropping empties
func normalizeList(items []string) []string {
	out := []string{}
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, strings.ToLower(trimmed))
		}
	}
	return out
}

// sharedItems returns the sorted intersection of two normalized lists
func sharedItems(a, b []string) []string {
	inB := map[string]bool{}
	for _, item := range b {
		inB[item] = true
	}

	seen := map[string]bool{}
	out := []string{}
	for _, item := range a {
		if inB[item] && !seen[item] {
			out = append(out, item)
			seen[item] = true
		}
	}
	sort.Strings(out)
	return out
}

// uniqueItems returns the sorted set difference a - b
func uniqueItems(a, b []string) []string {
	inB := map[string]bool{}
	for _, item := range b {
		inB[item] = true
	}

	seen := map[string]bool{}
	out := []string{}
	for _, item := range a {
		if !inB[item] && !seen[item] {
			out = append(out, item)
			seen[item] = true
		}
	}
	sort.Strings(out)
	return out
}

// overlapScore is |shared| / |union|, degrading to 0 on an empty union
func overlapScore(shared, a, b []string) float64 {
	union := map[string]bool{}
	for _, item := range a {
		union[item] = true
	}
	for _, item := range b {
		union[item] = true
	}
	if len(union) == 0 {
		return 0.0
	}
	return float64(len(shared)) / float64(len(union))
}

// priceDelta computes absolute and percent difference (B - A). Both fields
// are null when either price is unknown; percent is null when A's price is
// zero.
func priceDelta(priceA, priceB *int) domain.PriceDelta {
	if priceA == nil || priceB == nil {
		return domain.PriceDelta{}
	}

	absolute := float64(*priceB - *priceA)
	delta := domain.PriceDelta{Absolute: &absolute}
	if *priceA != 0 {
		percent := round2(absolute / float64(*priceA) * 100)
		delta.Percent = &percent
	}
	return delta
}

// valueIndicator is overall / (1 + |normalized price delta|). When either
// price is unknown the delta term defaults to 0, so the indicator equals
// the overall similarity.
func valueIndicator(overall float64, priceA, priceB *int) float64 {
	normalized := 0.0
	if priceA != nil && priceB != nil && *priceA != 0 {
		normalized = float64(*priceB-*priceA) / math.Max(1, float64(*priceA))
	}
	return round3(overall / (1 + math.Abs(normalized)))
}

// buildSummary assembles the human-readable comparison sentence. Each
// clause is included only when the corresponding data is non-empty; this is
// string concatenation, not free text generation.
func buildSummary(nameA, nameB string, sharedIngredients, uniqueToA, uniqueToB []string, priceDiff domain.PriceDelta) string {
	parts := []string{fmt.Sprintf("Comparing %s and %s.", nameA, nameB)}

	if len(sharedIngredients) > 0 {
		parts = append(parts, fmt.Sprintf("Both share ingredients: %s.", strings.Join(titleCaseList(sharedIngredients), ", ")))
	}
	if len(uniqueToA) > 0 {
		parts = append(parts, fmt.Sprintf("Unique to A: %s.", strings.Join(titleCaseList(uniqueToA), ", ")))
	}
	if len(uniqueToB) > 0 {
		parts = append(parts, fmt.Sprintf("Unique to B: %s.", strings.Join(titleCaseList(uniqueToB), ", ")))
	}
	if priceDiff.Absolute != nil && priceDiff.Percent != nil {
		parts = append(parts, fmt.Sprintf("Price difference (B - A): ₹%g (%g%%).", *priceDiff.Absolute, *priceDiff.Percent))
	}

	return strings.Join(parts, " ")
}

// buildProsCons populates the per-side pros/cons phrase lists
func buildProsCons(priceA, priceB *int,
	sharedIngredients, uniqueToA, uniqueToB,
	sharedBenefits, uniqueBenefitsA, uniqueBenefitsB []string) (domain.SideLists, domain.SideLists) {

	pros := domain.SideLists{ProductA: []string{}, ProductB: []string{}}
	cons := domain.SideLists{ProductA: []string{}, ProductB: []string{}}

	if priceA != nil && priceB != nil {
		if *priceA < *priceB {
			pros.ProductA = append(pros.ProductA, fmt.Sprintf("Lower price (₹%d)", *priceA))
			cons.ProductB = append(cons.ProductB, fmt.Sprintf("Higher price (₹%d)", *priceB))
		} else if *priceB < *priceA {
			pros.ProductB = append(pros.ProductB, fmt.Sprintf("Lower price (₹%d)", *priceB))
			cons.ProductA = append(cons.ProductA, fmt.Sprintf("Higher price (₹%d)", *priceA))
		}
	}

	for _, ing := range sharedIngredients {
		label := fmt.Sprintf("Provides %s", titleCase(ing))
		pros.ProductA = append(pros.ProductA, label)
		pros.ProductB = append(pros.ProductB, label)
	}

	for _, ing := range uniqueToA {
		pros.ProductA = append(pros.ProductA, fmt.Sprintf("Unique ingredient: %s", titleCase(ing)))
		cons.ProductB = append(cons.ProductB, fmt.Sprintf("Missing %s", titleCase(ing)))
	}
	for _, ing := range uniqueToB {
		pros.ProductB = append(pros.ProductB, fmt.Sprintf("Unique ingredient: %s", titleCase(ing)))
		cons.ProductA = append(cons.ProductA, fmt.Sprintf("Missing %s", titleCase(ing)))
	}

	for _, ben := range sharedBenefits {
		label := fmt.Sprintf("Provides %s", titleCase(ben))
		pros.ProductA = append(pros.ProductA, label)
		pros.ProductB = append(pros.ProductB, label)
	}
	for _, ben := range uniqueBenefitsA {
		pros.ProductA = append(pros.ProductA, fmt.Sprintf("Offers %s", titleCase(ben)))
	}
	for _, ben := range uniqueBenefitsB {
		pros.ProductB = append(pros.ProductB, fmt.Sprintf("Offers %s", titleCase(ben)))
	}

	return pros, cons
}

// buildRecommendation emits the ordered conditional rules: benefit rules
// (B's unique first, then A's), skin-type rules (B's then A's), and the
// price-driven rule last when the products are similar enough.
func buildRecommendation(record *domain.ProductRecord, comparator *domain.ComparatorRecord,
	uniqueBenefitsA, uniqueBenefitsB []string, overall float64) domain.Recommendation {

	rules := []domain.RecommendationRule{}

	for _, ben := range uniqueBenefitsB {
		rules = append(rules, domain.RecommendationRule{
			If:     fmt.Sprintf("you want %s", titleCase(ben)),
			Choose: "Product B",
			Reason: fmt.Sprintf("Product B lists %s while Product A does not.", titleCase(ben)),
		})
	}
	for _, ben := range uniqueBenefitsA {
		rules = append(rules, domain.RecommendationRule{
			If:     fmt.Sprintf("you want %s", titleCase(ben)),
			Choose: "Product A",
			Reason: fmt.Sprintf("Product A lists %s while Product B does not.", titleCase(ben)),
		})
	}

	aSkin := titleCaseList(normalizeList(record.SkinTypes))
	bSkin := titleCaseList(normalizeList(comparator.SkinTypes))
	for _, st := range uniqueItems(bSkin, aSkin) {
		rules = append(rules, domain.RecommendationRule{
			If:     fmt.Sprintf("your skin is %s", st),
			Choose: "Product B",
			Reason: fmt.Sprintf("Product B lists %s as suitable.", st),
		})
	}
	for _, st := range uniqueItems(aSkin, bSkin) {
		rules = append(rules, domain.RecommendationRule{
			If:     fmt.Sprintf("your skin is %s", st),
			Choose: "Product A",
			Reason: fmt.Sprintf("Product A lists %s as suitable.", st),
		})
	}

	if overall >= priceRuleThreshold && record.PriceINR != nil && comparator.PriceINR != nil {
		cheaper := "Product A"
		if *comparator.PriceINR < *record.PriceINR {
			cheaper = "Product B"
		}
		rules = append(rules, domain.RecommendationRule{
			If:     "you prioritize price and products are similar",
			Choose: cheaper,
			Reason: fmt.Sprintf("Products are similar (overall=%g). %s is cheaper.", overall, cheaper),
		})
	}

	defaultChoice := "Consider Product A"
	defaultReasons := []string{"No strong preference matched; defaulting to Product A."}
	if len(uniqueBenefitsB) > 0 && overall < valueLabelThreshold {
		defaultChoice = "Consider Product B"
		defaultReasons = []string{"Product B offers distinct benefits not present in Product A."}
	}

	var rationale []string
	if overall >= priceRuleThreshold {
		rationale = []string{fmt.Sprintf("Products are fairly similar (overall=%g). Consider price and specific preferences.", overall)}
	} else {
		rationale = []string{fmt.Sprintf("Products differ (overall=%g). Follow contextual rules above.", overall)}
	}

	return domain.Recommendation{
		Decision:          "Contextual",
		Default:           defaultChoice,
		DefaultReasons:    defaultReasons,
		Rules:             rules,
		DecisionRationale: rationale,
	}
}

// titleCase uppercases the first letter of each word, lowercasing the rest,
// matching the presentation casing of the option tables (so "anti-aging"
// renders as "Anti-Aging").
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && !prevLetter:
			b.WriteString(strings.ToUpper(string(r)))
		case isLetter:
			b.WriteString(strings.ToLower(string(r)))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}

// titleCaseList title-cases every entry, returning a new slice
func titleCaseList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, titleCase(item))
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
