package recommendation

import (
	"storefront/domain"
)

// Filter applies the store positioning rules and returns the eligible
// products in input order. It never scores or reorders.
func (e *Engine) Filter(products []domain.Product, rctx Context) []domain.Product {
	maxPrice := e.maxPriceCents(rctx)

	excluded := domain.IDSet(rctx.ExcludedProductIDs...)
	if rctx.ReferenceProductID != "" {
		excluded[rctx.ReferenceProductID] = struct{}{}
	}

	eligible := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Stock <= 0 {
			continue
		}
		if p.PriceCents > maxPrice {
			continue
		}
		if _, ok := e.allowed[p.Category]; !ok {
			continue
		}
		if _, ok := excluded[p.ID]; ok {
			continue
		}
		// products without a usable rating are not penalized
		if avg, ok := p.Rating.Average(); ok && avg < e.cfg.MinAverageRating {
			continue
		}

		eligible = append(eligible, p)
	}

	return eligible
}
