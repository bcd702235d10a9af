package domain

// ProductPage is the rendered product page artifact.
type ProductPage struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	PriceINR       *int         `json:"price_inr"`
	HeroBlurb      string       `json:"hero_blurb"`
	Highlights     []string     `json:"highlights"`
	PriceStatement string       `json:"price_statement"`
	Metadata       PageMetadata `json:"metadata"`
}

// PageMetadata carries the descriptive fields shown alongside the page body.
type PageMetadata struct {
	Concentration string   `json:"concentration,omitempty"`
	SkinTypes     []string `json:"skin_type"`
}

// FAQPage is the rendered FAQ artifact.
type FAQPage struct {
	ProductID string    `json:"product_id"`
	Items     []FAQItem `json:"items"`
}

// ComparisonPage is the rendered comparison artifact.
type ComparisonPage struct {
	ProductA   *ProductRecord    `json:"product_a"`
	Comparison *ComparisonResult `json:"comparison"`
}

// GeneratedPages bundles the three output artifacts of one pipeline run.
type GeneratedPages struct {
	ProductPage ProductPage    `json:"product_page"`
	FAQ         FAQPage        `json:"faq"`
	Comparison  ComparisonPage `json:"comparison"`
}
