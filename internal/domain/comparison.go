package domain

// ComparatorRecord is the second product in a comparison: either supplied
// explicitly in the raw input or synthesized deterministically. Synthesized
// comparators are clearly labelled and never resemble a real catalog item.
type ComparatorRecord struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Concentration string             `json:"concentration,omitempty"`
	SkinTypes     []string           `json:"skin_type"`
	Ingredients   []string           `json:"ingredients"`
	Benefits      []string           `json:"benefits"`
	Usage         string             `json:"usage,omitempty"`
	SideEffects   string             `json:"side_effects,omitempty"`
	PriceINR      *int               `json:"price_inr"`
	Metadata      ComparatorMetadata `json:"metadata"`
}

// ComparatorMetadata records how a synthesized comparator was derived.
// VariantReason lists the table indices chosen from the identifier hash;
// it exists for reproducibility debugging, not for end users.
type ComparatorMetadata struct {
	Generated     bool   `json:"generated"`
	VariantReason string `json:"variant_reason,omitempty"`
}

// PriceDelta is the price difference between comparator and source.
// Both fields are null when either price is unknown; Percent is also null
// when the source price is zero.
type PriceDelta struct {
	Absolute *float64 `json:"absolute"`
	Percent  *float64 `json:"percent"`
}

// OverlapScore holds the normalized ingredient/benefit overlap scores.
// Scores range 0-1; higher means more similarity.
type OverlapScore struct {
	IngredientOverlap float64 `json:"ingredient_overlap"`
	BenefitOverlap    float64 `json:"benefit_overlap"`
	Overall           float64 `json:"overall"`
}

// RecommendationRule is one conditional recommendation clause.
type RecommendationRule struct {
	If     string `json:"if"`
	Choose string `json:"choose"`
	Reason string `json:"reason"`
}

// Recommendation is the rule-based recommendation structure: a default
// choice plus ordered conditional rules.
type Recommendation struct {
	Decision          string               `json:"decision"`
	Default           string               `json:"default"`
	DefaultReasons    []string             `json:"default_reasons"`
	Rules             []RecommendationRule `json:"rules"`
	DecisionRationale []string             `json:"decision_rationale"`
}

// SideLists holds per-side phrase lists (pros or cons).
type SideLists struct {
	ProductA []string `json:"product_a"`
	ProductB []string `json:"product_b"`
}

// ComparisonResult is the full deterministic comparison between the source
// record (product A) and its comparator (product B).
type ComparisonResult struct {
	ProductB          ComparatorRecord `json:"product_b"`
	SharedIngredients []string         `json:"shared_ingredients"`
	UniqueToA         []string         `json:"unique_to_a"`
	UniqueToB         []string         `json:"unique_to_b"`
	SharedBenefits    []string         `json:"shared_benefits"`
	UniqueBenefitsA   []string         `json:"unique_benefits_a"`
	UniqueBenefitsB   []string         `json:"unique_benefits_b"`
	PriceA            *int             `json:"price_a"`
	PriceB            *int             `json:"price_b"`
	PriceDifference   PriceDelta       `json:"price_difference"`
	Score             OverlapScore     `json:"score"`
	Summary           string           `json:"summary"`
	ValueIndicator    float64          `json:"value_indicator"`
	ValueLabel        string           `json:"value_label"`
	GeneratedNote     string           `json:"generated_note,omitempty"`
	Recommendation    Recommendation   `json:"recommendation"`
	Pros              SideLists        `json:"pros"`
	Cons              SideLists        `json:"cons"`
	Generated         bool             `json:"generated"`
}
