package product

import (
	"context"
	"fmt"
	"strings"

	"storefront/domain"
	"storefront/pkg/logger"

	"github.com/google/uuid"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id domain.ID) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id domain.ID) error
}

type ProductViewRepository interface {
	Create(ctx context.Context, view *domain.ProductView) error
}

// CatalogCache is dropped whenever the catalog changes.
type CatalogCache interface {
	Invalidate(ctx context.Context) error
}

type productService struct {
	productRepo ProductRepository
	viewRepo    ProductViewRepository
	cache       CatalogCache
}

func NewProductService(productRepo ProductRepository, viewRepo ProductViewRepository, cache CatalogCache) *productService {
	return &productService{
		productRepo: productRepo,
		viewRepo:    viewRepo,
		cache:       cache,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all product", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	if strings.TrimSpace(id.String()) == "" {
		logger.Error("invalid product id")
		return nil, domain.ErrInvalidProductID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", "product_id", id.String(), "error", err)
		return nil, err
	}

	return &product, nil
}

// RecordView stores a product page view. userID is nil for anonymous visitors.
func (s *productService) RecordView(ctx context.Context, productID domain.ID, userID *uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	view := &domain.ProductView{ProductID: productID}
	if userID != nil {
		uid := domain.IDFromUint(*userID)
		view.UserID = &uid
	}

	if err := s.viewRepo.Create(ctx, view); err != nil {
		logger.Error("failed to record product view", "product_id", productID.String(), "error", err)
		return fmt.Errorf("failed to record product view: %w", err)
	}

	return nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateProduct(product); err != nil {
		logger.Error("Invalid product data", err)
		return nil, err
	}

	if product.ID == "" {
		product.ID = domain.ID(uuid.NewString())
	}
	if product.Keywords == nil {
		product.Keywords = domain.Keywords{}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidateCatalog(ctx)
	logger.Info("product created successfully", "product_id", product.ID.String())

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == "" {
		logger.Error("Invalid product data: ID is required")
		return nil, domain.ErrInvalidProductID
	}

	if err := validateProduct(product); err != nil {
		logger.Error("Invalid product data", err)
		return nil, err
	}

	// Verify product exists
	if _, err := s.productRepo.FindByID(ctx, product.ID); err != nil {
		logger.Error("product not found", err)
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	s.invalidateCatalog(ctx)
	logger.Info("product updated success", "product_id", product.ID.String())

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id domain.ID) error {
	if id == "" {
		logger.Error("Invalid product id when deleting product")
		return domain.ErrInvalidProductID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		logger.Error("product not found", err)
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidateCatalog(ctx)
	logger.Info("product deleted success", "product_id", id.String())

	return nil
}

func (s *productService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate catalog cache", "error", err)
	}
}

func validateProduct(p *domain.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidProduct)
	case strings.TrimSpace(p.Category) == "":
		return fmt.Errorf("%w: category is required", domain.ErrInvalidProduct)
	case p.PriceCents <= 0:
		return fmt.Errorf("%w: price must be greater than 0", domain.ErrInvalidProduct)
	case p.Stock < 0:
		return fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidProduct)
	}
	return nil
}
