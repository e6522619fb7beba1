package recommendation

import (
	"sort"

	"storefront/domain"
)

// ScoreByPopularity is the cold-start scorer: views plus weighted purchased
// units. The result is stable-sorted by score, highest first.
func (e *Engine) ScoreByPopularity(eligible []domain.Product, views []domain.ProductView, orderCounts map[domain.ID]int) []ScoredProduct {
	viewCounts := ViewCounts(views)

	scored := make([]ScoredProduct, 0, len(eligible))
	for _, p := range eligible {
		score := e.cfg.ViewWeight*float64(viewCounts[p.ID]) + e.cfg.OrderWeight*float64(orderCounts[p.ID])
		scored = append(scored, ScoredProduct{Product: p, Score: score})
	}

	sortByScoreDesc(scored)

	return scored
}

// ViewCounts counts views per product, anonymous views included.
func ViewCounts(views []domain.ProductView) map[domain.ID]int {
	counts := make(map[domain.ID]int)
	for _, v := range views {
		counts[v.ProductID]++
	}
	return counts
}

// OrderCounts sums purchased units per product across all order lines.
func OrderCounts(orders []domain.Order) map[domain.ID]int {
	counts := make(map[domain.ID]int)
	for _, o := range orders {
		for _, line := range o.Products {
			counts[line.ProductID] += line.Quantity.Units()
		}
	}
	return counts
}

func sortByScoreDesc(scored []ScoredProduct) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}
