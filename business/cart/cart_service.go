package cart

import (
	"context"
	"fmt"

	"storefront/domain"
	"storefront/pkg/logger"
)

type CartRepository interface {
	Upsert(ctx context.Context, item *domain.CartItem) error
	FindByUser(ctx context.Context, userID uint) ([]domain.CartItem, error)
	Delete(ctx context.Context, userID uint, productID domain.ID) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id domain.ID) (domain.Product, error)
}

type CartService struct {
	cartRepo    CartRepository
	productRepo ProductRepository
}

func NewCartService(cartRepo CartRepository, productRepo ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts a product into the user's cart. Adding a product that is
// already there increases its quantity. A non-positive quantity adds one.
func (s *CartService) AddItem(ctx context.Context, userID uint, productID domain.ID, quantity int) (domain.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.CartItem{}, fmt.Errorf("context error: %w", err)
	}
	if productID == "" {
		return domain.CartItem{}, domain.ErrInvalidProductID
	}
	if quantity <= 0 {
		quantity = 1
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		logger.Error("failed to find product for cart", "product_id", productID.String(), "error", err)
		return domain.CartItem{}, err
	}

	item := domain.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Upsert(ctx, &item); err != nil {
		logger.Error("failed to add cart item", "user_id", userID, "error", err)
		return domain.CartItem{}, err
	}

	return item, nil
}

func (s *CartService) GetCart(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("failed to get cart", "user_id", userID, "error", err)
		return nil, err
	}
	return items, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID uint, productID domain.ID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if productID == "" {
		return domain.ErrInvalidProductID
	}

	if err := s.cartRepo.Delete(ctx, userID, productID); err != nil {
		logger.Error("failed to remove cart item", "user_id", userID, "product_id", productID.String(), "error", err)
		return err
	}
	return nil
}
