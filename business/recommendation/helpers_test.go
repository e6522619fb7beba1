package recommendation

import (
	"storefront/domain"
)

func product(id string, mods ...func(*domain.Product)) domain.Product {
	p := domain.Product{
		ID:          domain.ID(id),
		Name:        "Product " + id,
		Category:    "Kitchen",
		SubCategory: "General",
		Brand:       "Acme",
		Stock:       5,
		PriceCents:  1000,
		Rating:      domain.NumberRating(4),
		Keywords:    domain.Keywords{},
	}
	for _, mod := range mods {
		mod(&p)
	}
	return p
}

func view(userID, productID string) domain.ProductView {
	v := domain.ProductView{ProductID: domain.ID(productID)}
	if userID != "" {
		uid := domain.ID(userID)
		v.UserID = &uid
	}
	return v
}

func views(userID, productID string, n int) []domain.ProductView {
	out := make([]domain.ProductView, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, view(userID, productID))
	}
	return out
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, string(p.ID))
	}
	return out
}

func scoredIDs(scored []ScoredProduct) []string {
	out := make([]string, 0, len(scored))
	for _, sp := range scored {
		out = append(out, string(sp.Product.ID))
	}
	return out
}

func scoreOf(scored []ScoredProduct, id string) float64 {
	for _, sp := range scored {
		if sp.Product.ID == domain.ID(id) {
			return sp.Score
		}
	}
	return -1
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }
