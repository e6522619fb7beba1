package orders

import (
	"context"
	"fmt"

	"storefront/domain"
	"storefront/pkg/logger"

	"github.com/google/uuid"
)

type OrdersRepository interface {
	Place(ctx context.Context, order *domain.Order) error
	FindByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, id domain.ID) (domain.Product, error)
}

// CatalogCache is dropped after an order because stock changed.
type CatalogCache interface {
	Invalidate(ctx context.Context) error
}

type OrdersService struct {
	orderRepo    OrdersRepository
	productsRepo ProductRepository
	cache        CatalogCache
}

func NewOrdersService(orderRepo OrdersRepository, productsRepo ProductRepository, cache CatalogCache) *OrdersService {
	return &OrdersService{
		orderRepo:    orderRepo,
		productsRepo: productsRepo,
		cache:        cache,
	}
}

// PlaceOrder prices every line from the catalog and stores the order.
// Lines for the same product are merged.
func (s *OrdersService) PlaceOrder(ctx context.Context, userID uint, lines []domain.OrderLine) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	merged := mergeLines(lines)
	if len(merged) == 0 {
		return domain.Order{}, domain.ErrEmptyOrder
	}

	order := domain.Order{
		ID:       domain.ID(uuid.NewString()),
		UserID:   userID,
		Products: make([]domain.OrderLine, 0, len(merged)),
		Status:   domain.OrderStatusPlaced,
	}

	for _, line := range merged {
		units := line.Quantity.Units()
		if units <= 0 {
			return domain.Order{}, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidProduct)
		}

		product, err := s.productsRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			logger.Error("failed to load ordered product", "product_id", line.ProductID.String(), "error", err)
			return domain.Order{}, err
		}
		if product.Stock < units {
			return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrOutOfStock, product.ID)
		}

		order.Products = append(order.Products, domain.OrderLine{
			ProductID:  product.ID,
			Quantity:   domain.Qty(units),
			PriceCents: product.PriceCents,
		})
		order.TotalCents += product.PriceCents * int64(units)
	}

	if err := s.orderRepo.Place(ctx, &order); err != nil {
		logger.Error("failed to place order", "user_id", userID, "error", err)
		return domain.Order{}, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Warn("failed to invalidate catalog cache", "error", err)
		}
	}

	logger.Info("order placed", "order_id", order.ID.String(), "user_id", userID, "total_cents", order.TotalCents)

	return order, nil
}

func (s *OrdersService) GetUserOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *OrdersService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.orderRepo.FindAll(ctx)
}

func mergeLines(lines []domain.OrderLine) []domain.OrderLine {
	index := make(map[domain.ID]int, len(lines))
	out := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" {
			continue
		}
		if i, ok := index[line.ProductID]; ok {
			prev, next := out[i].Quantity.Units(), line.Quantity.Units()
			if prev == 0 || next == 0 {
				// a negative line poisons the merged line
				out[i].Quantity = domain.Qty(-1)
			} else {
				out[i].Quantity = domain.Qty(prev + next)
			}
			continue
		}
		index[line.ProductID] = len(out)
		out = append(out, domain.OrderLine{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return out
}
