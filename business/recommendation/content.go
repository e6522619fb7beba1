package recommendation

import (
	"strings"

	"storefront/domain"
)

// ScoreByContent scores every eligible product by attribute similarity to
// the reference product. Without a reference all scores are zero.
func (e *Engine) ScoreByContent(eligible []domain.Product, reference *domain.Product) []ScoredProduct {
	scored := make([]ScoredProduct, 0, len(eligible))

	if reference == nil {
		for _, p := range eligible {
			scored = append(scored, ScoredProduct{Product: p})
		}
		return scored
	}

	refCategory := strings.TrimSpace(reference.Category)
	refSubCategory := strings.TrimSpace(reference.SubCategory)
	refBrand := strings.TrimSpace(reference.Brand)
	refTokens := keywordTokens(reference.Keywords)

	for _, p := range eligible {
		var score float64
		if refCategory != "" && strings.TrimSpace(p.Category) == refCategory {
			score += e.cfg.CategoryPoints
		}
		if refSubCategory != "" && strings.TrimSpace(p.SubCategory) == refSubCategory {
			score += e.cfg.SubCategoryPoints
		}
		if refBrand != "" && strings.TrimSpace(p.Brand) == refBrand {
			score += e.cfg.BrandPoints
		}
		score += e.cfg.KeywordPoints * jaccardSets(keywordTokens(p.Keywords), refTokens)

		scored = append(scored, ScoredProduct{Product: p, Score: score})
	}

	return scored
}

// Jaccard is |a∩b| / |a∪b| over case-insensitive keyword sets. Two empty
// sets are identical, so their similarity is 1.
func Jaccard(a, b []string) float64 {
	return jaccardSets(keywordTokens(a), keywordTokens(b))
}

func jaccardSets(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

// keywordTokens lowercases, trims and deduplicates keywords, dropping blanks.
func keywordTokens(keywords []string) map[string]struct{} {
	tokens := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		tokens[k] = struct{}{}
	}
	return tokens
}
