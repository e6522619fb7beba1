package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront/domain"

	"gorm.io/gorm"
)

type ProductViewRepository struct {
	DB *gorm.DB
}

func NewProductViewRepository(db *gorm.DB) *ProductViewRepository {
	return &ProductViewRepository{
		DB: db,
	}
}

func (r *ProductViewRepository) Create(ctx context.Context, view *domain.ProductView) error {
	if err := r.DB.WithContext(ctx).Create(view).Error; err != nil {
		return fmt.Errorf("failed to create product view: %w", err)
	}
	return nil
}

func (r *ProductViewRepository) FindAll(ctx context.Context) ([]domain.ProductView, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var views []domain.ProductView
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to find product views: %w", err)
	}

	return views, nil
}

// LatestByUser returns the most recent view of the user, if any.
func (r *ProductViewRepository) LatestByUser(ctx context.Context, userID domain.ID) (domain.ProductView, bool, error) {
	var view domain.ProductView

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		Order("id DESC").
		First(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ProductView{}, false, nil
	}
	if err != nil {
		return domain.ProductView{}, false, fmt.Errorf("failed to find latest product view: %w", err)
	}

	return view, true, nil
}
