package recommendation

// Config holds the engine defaults and scoring constants.
type Config struct {
	DefaultLimit         int
	DefaultMaxPriceCents int64
	MinAverageRating     float64

	// store positioning: only these categories are ever recommended
	AllowedCategories []string

	DefaultContentWeight float64
	DefaultCollabWeight  float64

	// content similarity points
	CategoryPoints    float64
	SubCategoryPoints float64
	BrandPoints       float64
	KeywordPoints     float64

	// popularity signal weights; a purchase counts double a view
	ViewWeight  float64
	OrderWeight float64
}

const (
	defaultLimit             = 10
	defaultMaxPriceCents     = 15000
	defaultMinAverageRating  = 3.5
	defaultContentWeight     = 0.5
	defaultCollabWeight      = 0.5
	defaultCategoryPoints    = 2.0
	defaultSubCategoryPoints = 2.0
	defaultBrandPoints       = 1.0
	defaultKeywordPoints     = 2.0
	defaultViewWeight        = 1.0
	defaultOrderWeight       = 2.0
)

var defaultAllowedCategories = []string{
	"Clothing",
	"Shoes",
	"Kitchen",
	"Home",
	"Bathroom",
	"Electronics",
	"Accessories",
	"Lifestyle",
}

// DefaultConfig returns the storefront defaults.
func DefaultConfig() Config {
	allowed := make([]string, len(defaultAllowedCategories))
	copy(allowed, defaultAllowedCategories)

	return Config{
		DefaultLimit:         defaultLimit,
		DefaultMaxPriceCents: defaultMaxPriceCents,
		MinAverageRating:     defaultMinAverageRating,
		AllowedCategories:    allowed,

		DefaultContentWeight: defaultContentWeight,
		DefaultCollabWeight:  defaultCollabWeight,

		CategoryPoints:    defaultCategoryPoints,
		SubCategoryPoints: defaultSubCategoryPoints,
		BrandPoints:       defaultBrandPoints,
		KeywordPoints:     defaultKeywordPoints,

		ViewWeight:  defaultViewWeight,
		OrderWeight: defaultOrderWeight,
	}
}
