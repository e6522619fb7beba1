package postgres

import (
	"context"
	"fmt"

	"storefront/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		DB: db,
	}
}

// CountByCategory groups the catalog by category and sub-category.
func (r *CategoryRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.CategoryCount
	err := r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Select("category, sub_category, COUNT(*) AS count").
		Group("category, sub_category").
		Order("category ASC, sub_category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	return rows, nil
}
