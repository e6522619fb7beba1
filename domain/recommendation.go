package domain

// RecommendationResult is what the storefront returns for a recommendation
// request: ranked products and whether the cold-start path produced them.
type RecommendationResult struct {
	Products  []Product `json:"products"`
	ColdStart bool      `json:"coldStart"`
}
