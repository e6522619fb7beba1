package postgres

import (
	"context"
	"fmt"

	"storefront/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// Place stores the order, decrements stock for every line and removes the
// ordered products from the user's cart, all in one transaction. A line
// whose product no longer has enough stock aborts the order with
// domain.ErrOutOfStock.
func (r *OrdersRepository) Place(ctx context.Context, order *domain.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productIDs := make([]string, 0, len(order.Products))
		for _, line := range order.Products {
			units := line.Quantity.Units()
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID.String(), units).
				Update("stock", gorm.Expr("stock - ?", units))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", domain.ErrOutOfStock, line.ProductID)
			}
			productIDs = append(productIDs, line.ProductID.String())
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		err := tx.Where("user_id = ? AND product_id IN ?", order.UserID, productIDs).
			Delete(&domain.CartItem{}).Error
		if err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		return nil
	})
}

func (r *OrdersRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	if err := r.DB.WithContext(ctx).Where("status <> ?", domain.OrderStatusCancelled).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}
