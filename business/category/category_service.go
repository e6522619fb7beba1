package category

import (
	"context"
	"fmt"

	"storefront/domain"
	"storefront/pkg/logger"
)

// CategoryRepository contract interface
type CategoryRepository interface {
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
}

type categoryService struct {
	categoryRepo CategoryRepository
	allowed      map[string]struct{}
}

// NewCategoryService builds the service. allowed is the recommendation
// category allow-list.
func NewCategoryService(categoryRepo CategoryRepository, allowed []string) *categoryService {
	set := make(map[string]struct{}, len(allowed))
	for _, c := range allowed {
		set[c] = struct{}{}
	}
	return &categoryService{
		categoryRepo: categoryRepo,
		allowed:      set,
	}
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all categories")
		return nil, fmt.Errorf("context error: %w", err)
	}

	rows, err := s.categoryRepo.CountByCategory(ctx)
	if err != nil {
		logger.Error("Failed to find all categories", err)
		return nil, err
	}

	summaries := make([]domain.CategorySummary, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			_, allowed := s.allowed[row.Category]
			i = len(summaries)
			index[row.Category] = i
			summaries = append(summaries, domain.CategorySummary{
				Name:          row.Category,
				SubCategories: []string{},
				Recommendable: allowed,
			})
		}
		summaries[i].ProductCount += row.Count
		if row.SubCategory != "" {
			summaries[i].SubCategories = append(summaries[i].SubCategories, row.SubCategory)
		}
	}

	return summaries, nil
}
