package postgres

import (
	"context"
	"fmt"

	"storefront/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		DB: db,
	}
}

// Upsert adds the item, summing quantities when the product is already in
// the user's cart.
func (r *CartRepository) Upsert(ctx context.Context, item *domain.CartItem) error {
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).
		Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}

	// reload so the caller sees the merged quantity
	var merged domain.CartItem
	err = r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID.String()).
		First(&merged).Error
	if err != nil {
		return fmt.Errorf("failed to reload cart item: %w", err)
	}
	*item = merged
	return nil
}

func (r *CartRepository) FindByUser(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.CartItem
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}

	return items, nil
}

func (r *CartRepository) Delete(ctx context.Context, userID uint, productID domain.ID) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID.String()).
		Delete(&domain.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}

	return nil
}
