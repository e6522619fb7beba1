package domain

// CategorySummary describes one catalog category as derived from the
// products table. Recommendable is true when the category is on the
// recommendation allow-list.
type CategorySummary struct {
	Name          string   `json:"name"`
	SubCategories []string `json:"subCategories"`
	ProductCount  int      `json:"productCount"`
	Recommendable bool     `json:"recommendable"`
}

// CategoryCount is one (category, sub-category) bucket of the catalog.
type CategoryCount struct {
	Category    string `gorm:"column:category"`
	SubCategory string `gorm:"column:sub_category"`
	Count       int    `gorm:"column:count"`
}
