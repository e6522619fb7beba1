package recommendation

import (
	"storefront/domain"
)

// NormalizeMinMax maps values onto [0, 1]. When every value is the same
// there is no signal to discriminate on and each maps to 0.5.
func NormalizeMinMax(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	gap := hi - lo
	for i, v := range values {
		if gap == 0 {
			out[i] = 0.5
			continue
		}
		out[i] = (v - lo) / gap
	}

	return out
}

// MergeAndRank joins content and collaborative scores by product ID,
// normalizes each independently and ranks by the weighted sum. Weights are
// used as given. Ties keep the order products were first seen in.
func MergeAndRank(content, collab []ScoredProduct, contentWeight, collabWeight float64) []ScoredProduct {
	type pair struct {
		product domain.Product
		content float64
		collab  float64
	}

	order := make([]domain.ID, 0, len(content)+len(collab))
	byID := make(map[domain.ID]*pair, len(content)+len(collab))

	upsert := func(p domain.Product) *pair {
		entry, ok := byID[p.ID]
		if !ok {
			entry = &pair{product: p}
			byID[p.ID] = entry
			order = append(order, p.ID)
		}
		return entry
	}

	for _, sp := range content {
		upsert(sp.Product).content = sp.Score
	}
	for _, sp := range collab {
		upsert(sp.Product).collab = sp.Score
	}

	contentScores := make([]float64, len(order))
	collabScores := make([]float64, len(order))
	for i, id := range order {
		contentScores[i] = byID[id].content
		collabScores[i] = byID[id].collab
	}
	normContent := NormalizeMinMax(contentScores)
	normCollab := NormalizeMinMax(collabScores)

	merged := make([]ScoredProduct, 0, len(order))
	for i, id := range order {
		merged = append(merged, ScoredProduct{
			Product: byID[id].product,
			Score:   contentWeight*normContent[i] + collabWeight*normCollab[i],
		})
	}

	sortByScoreDesc(merged)

	return merged
}

// TopN returns at most n leading entries. Non-positive n yields nothing.
func TopN(scored []ScoredProduct, n int) []ScoredProduct {
	if n <= 0 {
		return []ScoredProduct{}
	}
	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n]
}
