package recommendation

import (
	"storefront/domain"
)

// ScoreByCoViews scores eligible products by "viewers of the reference also
// viewed": for every identified user who viewed the reference, each other
// eligible product they viewed gains one point. Anonymous views are ignored.
func (e *Engine) ScoreByCoViews(eligible []domain.Product, referenceID domain.ID, views []domain.ProductView) []ScoredProduct {
	scored := make([]ScoredProduct, 0, len(eligible))

	if referenceID == "" || len(views) == 0 {
		for _, p := range eligible {
			scored = append(scored, ScoredProduct{Product: p})
		}
		return scored
	}

	eligibleIDs := make(map[domain.ID]struct{}, len(eligible))
	for _, p := range eligible {
		eligibleIDs[p.ID] = struct{}{}
	}

	byUser := viewedByUser(views)

	counts := make(map[domain.ID]int, len(eligible))
	for _, viewed := range byUser {
		if _, ok := viewed[referenceID]; !ok {
			continue
		}
		for pid := range viewed {
			if pid == referenceID {
				continue
			}
			if _, ok := eligibleIDs[pid]; ok {
				counts[pid]++
			}
		}
	}

	for _, p := range eligible {
		scored = append(scored, ScoredProduct{Product: p, Score: float64(counts[p.ID])})
	}

	return scored
}

// viewedByUser groups identified views into per-user sets of product IDs.
func viewedByUser(views []domain.ProductView) map[domain.ID]map[domain.ID]struct{} {
	byUser := make(map[domain.ID]map[domain.ID]struct{})
	for _, v := range views {
		if v.UserID == nil {
			continue
		}
		uid := *v.UserID

		viewed, ok := byUser[uid]
		if !ok {
			viewed = make(map[domain.ID]struct{})
			byUser[uid] = viewed
		}
		viewed[v.ProductID] = struct{}{}
	}
	return byUser
}
