package recommendation

import (
	"context"
	"fmt"
	"time"

	"storefront/domain"
	"storefront/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ---- Repository interfaces ----

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type ProductViewRepository interface {
	FindAll(ctx context.Context) ([]domain.ProductView, error)
	LatestByUser(ctx context.Context, userID domain.ID) (domain.ProductView, bool, error)
}

type CartRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.CartItem, error)
}

type OrdersRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
}

// CatalogCache keeps a snapshot of the product catalog. It is optional.
type CatalogCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, bool, error)
	SetProducts(ctx context.Context, products []domain.Product) error
}

// ---- Usecase / Service ----

type ServiceConfig struct {
	DefaultLimit  int
	MaxLimit      int
	MaxPriceCents int64
	ContentWeight float64
	CollabWeight  float64
	FetchTimeout  time.Duration
}

func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		DefaultLimit:  20,
		MaxLimit:      50,
		MaxPriceCents: defaultMaxPriceCents,
		ContentWeight: defaultContentWeight,
		CollabWeight:  defaultCollabWeight,
		FetchTimeout:  5 * time.Second,
	}
}

// Request is a storefront recommendation request. UserID is nil for
// anonymous visitors.
type Request struct {
	UserID             *uint
	CurrentProductID   domain.ID
	ExcludedProductIDs []domain.ID
	Limit              int
}

type Service struct {
	engine      *Engine
	productRepo ProductRepository
	viewRepo    ProductViewRepository
	cartRepo    CartRepository
	ordersRepo  OrdersRepository
	cache       CatalogCache
	cfg         ServiceConfig
}

func NewService(
	engine *Engine,
	productRepo ProductRepository,
	viewRepo ProductViewRepository,
	cartRepo CartRepository,
	ordersRepo OrdersRepository,
	cache CatalogCache,
	cfg ServiceConfig,
) *Service {
	return &Service{
		engine:      engine,
		productRepo: productRepo,
		viewRepo:    viewRepo,
		cartRepo:    cartRepo,
		ordersRepo:  ordersRepo,
		cache:       cache,
		cfg:         cfg,
	}
}

// Recommend gathers the catalog, view history, the visitor's cart and order
// history, then runs the engine over them.
func (s *Service) Recommend(ctx context.Context, req Request) (domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}

	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	currentID := req.CurrentProductID
	if currentID == "" && req.UserID != nil {
		last, ok, err := s.viewRepo.LatestByUser(ctx, domain.IDFromUint(*req.UserID))
		if err != nil {
			return domain.RecommendationResult{}, fmt.Errorf("load last viewed product: %w", err)
		}
		if ok {
			currentID = last.ProductID
		}
	}

	var (
		products []domain.Product
		views    []domain.ProductView
		cart     []domain.CartItem
		orders   []domain.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.loadCatalog(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if views, err = s.viewRepo.FindAll(gctx); err != nil {
			return fmt.Errorf("load product views: %w", err)
		}
		return nil
	})
	if req.UserID != nil {
		g.Go(func() error {
			var err error
			if cart, err = s.cartRepo.FindByUser(gctx, *req.UserID); err != nil {
				return fmt.Errorf("load cart items: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		if orders, err = s.ordersRepo.FindAll(gctx); err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.RecommendationResult{}, err
	}

	excluded := make([]domain.ID, 0, len(req.ExcludedProductIDs)+len(cart))
	seen := make(map[domain.ID]struct{}, cap(excluded))
	for _, id := range req.ExcludedProductIDs {
		if _, ok := seen[id]; !ok && id != "" {
			seen[id] = struct{}{}
			excluded = append(excluded, id)
		}
	}
	for _, item := range cart {
		if _, ok := seen[item.ProductID]; !ok {
			seen[item.ProductID] = struct{}{}
			excluded = append(excluded, item.ProductID)
		}
	}

	limit := s.resolveLimit(req.Limit)
	maxPrice := s.cfg.MaxPriceCents
	contentWeight := s.cfg.ContentWeight
	collabWeight := s.cfg.CollabWeight

	res := s.run(ctx, Input{
		Products:    products,
		ViewEvents:  views,
		OrderCounts: OrderCounts(orders),
		Context: Context{
			ReferenceProductID: currentID,
			ExcludedProductIDs: excluded,
			MaxPriceCents:      &maxPrice,
			Limit:              &limit,
			ContentWeight:      &contentWeight,
			CollabWeight:       &collabWeight,
		},
	})

	return res, nil
}

// Evaluate runs the engine on a caller-supplied input without touching any
// repository.
func (s *Service) Evaluate(ctx context.Context, in Input) domain.RecommendationResult {
	return s.run(ctx, in)
}

func (s *Service) run(ctx context.Context, in Input) domain.RecommendationResult {
	start := time.Now()
	res := s.engine.Recommend(in)
	observeResult(res)

	logger.Debug("recommendation_served",
		"trace_id", TraceIDFromContext(ctx),
		"reference_product_id", in.Context.ReferenceProductID.String(),
		"cold_start", res.ColdStart,
		"catalog_size", len(in.Products),
		"view_count", len(in.ViewEvents),
		"excluded_count", len(in.Context.ExcludedProductIDs),
		"result_count", len(res.Products),
		"elapsed", time.Since(start),
	)

	return domain.RecommendationResult{
		Products:  res.Products,
		ColdStart: res.ColdStart,
	}
}

func (s *Service) resolveLimit(requested int) int {
	limit := requested
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	return limit
}

func (s *Service) loadCatalog(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		products, ok, err := s.cache.GetProducts(ctx)
		if err != nil {
			logger.Warn("catalog cache read failed", "error", err)
		} else if ok {
			return products, nil
		}
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil {
			logger.Warn("catalog cache write failed", "error", err)
		}
	}

	return products, nil
}
