package recommendation

import (
	"storefront/domain"
)

// ScoredProduct pairs a product with the score one of the scorers gave it.
type ScoredProduct struct {
	Product domain.Product
	Score   float64
}

// Context is the per-call configuration of a recommendation. Nil pointers
// fall back to the engine defaults.
type Context struct {
	ReferenceProductID domain.ID
	ExcludedProductIDs []domain.ID
	MaxPriceCents      *int64
	Limit              *int
	ContentWeight      *float64
	CollabWeight       *float64
}

// Input is everything a single recommendation needs. The engine never
// fetches anything itself.
type Input struct {
	Products    []domain.Product
	ViewEvents  []domain.ProductView
	OrderCounts map[domain.ID]int
	Context     Context
}

// Result is the ranked products and whether the cold-start branch ran.
type Result struct {
	Products  []domain.Product
	ColdStart bool
}

// Engine is the hybrid recommender. It holds only configuration and is safe
// to share between goroutines.
type Engine struct {
	cfg     Config
	allowed map[string]struct{}
}

// NewEngine returns an engine that uses cfg for every call.
func NewEngine(cfg Config) *Engine {
	allowed := make(map[string]struct{}, len(cfg.AllowedCategories))
	for _, c := range cfg.AllowedCategories {
		allowed[c] = struct{}{}
	}

	return &Engine{
		cfg:     cfg,
		allowed: allowed,
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Recommend filters the catalog, then ranks it either by popularity (no
// reference product) or by a blend of content similarity and co-views with
// the reference product. Scores are dropped from the output.
func (e *Engine) Recommend(in Input) Result {
	rctx := in.Context
	coldStart := rctx.ReferenceProductID == ""
	result := Result{Products: []domain.Product{}, ColdStart: coldStart}

	limit := e.limit(rctx)
	if limit <= 0 {
		return result
	}

	eligible := e.Filter(in.Products, rctx)
	if len(eligible) == 0 {
		return result
	}

	var ranked []ScoredProduct
	if coldStart {
		ranked = e.ScoreByPopularity(eligible, in.ViewEvents, in.OrderCounts)
	} else {
		// the reference may be out of stock or excluded and still anchor similarity
		var reference *domain.Product
		if p, ok := domain.FindProduct(in.Products, rctx.ReferenceProductID); ok {
			reference = p
		}

		content := e.ScoreByContent(eligible, reference)
		collab := e.ScoreByCoViews(eligible, rctx.ReferenceProductID, in.ViewEvents)
		ranked = MergeAndRank(content, collab, e.contentWeight(rctx), e.collabWeight(rctx))
	}

	for _, sp := range TopN(ranked, limit) {
		result.Products = append(result.Products, sp.Product)
	}

	return result
}

func (e *Engine) limit(rctx Context) int {
	if rctx.Limit != nil {
		return *rctx.Limit
	}
	return e.cfg.DefaultLimit
}

func (e *Engine) maxPriceCents(rctx Context) int64 {
	if rctx.MaxPriceCents != nil {
		return *rctx.MaxPriceCents
	}
	return e.cfg.DefaultMaxPriceCents
}

func (e *Engine) contentWeight(rctx Context) float64 {
	if rctx.ContentWeight != nil {
		return *rctx.ContentWeight
	}
	return e.cfg.DefaultContentWeight
}

func (e *Engine) collabWeight(rctx Context) float64 {
	if rctx.CollabWeight != nil {
		return *rctx.CollabWeight
	}
	return e.cfg.DefaultCollabWeight
}
