package domain

// DefaultRecordID is assigned when the raw input carries no identifier
const DefaultRecordID = "product_001"

// ProductRecord is the validated, alias-resolved representation of one
// product's descriptive data. It is built once per pipeline run and never
// mutated afterwards; downstream services only read it.
type ProductRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Concentration string   `json:"concentration,omitempty"`
	SkinTypes     []string `json:"skin_type"`
	Ingredients   []string `json:"ingredients"`
	Benefits      []string `json:"benefits"`
	Usage         string   `json:"usage,omitempty"`
	SideEffects   string   `json:"side_effects,omitempty"`
	PriceINR      *int     `json:"price_inr"`

	// Raw keeps the original input mapping verbatim for traceability and
	// for comparator lookup. Excluded from serialized output.
	Raw map[string]interface{} `json:"-"`
}

// Intent is the category a question is classified into. It drives which
// answer template applies.
type Intent string

const (
	IntentUsage       Intent = "usage"
	IntentIngredients Intent = "ingredients"
	IntentSafety      Intent = "safety"
	IntentValue       Intent = "value"
	IntentOverview    Intent = "overview"
	IntentOther       Intent = "other"
)

// Question is one free-text question fed into the classifier. Category is a
// pipeline-assigned label and is not authoritative for classification.
type Question struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category,omitempty"`
	Text     string `json:"text"`
}

// FAQItem is one classified, answered question. Every word or number in the
// answer traces to a ProductRecord field or a fixed fallback string.
type FAQItem struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Answer   string `json:"answer"`
}
