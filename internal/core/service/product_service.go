package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/auth"
	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

const topProductsLimit = 5

// AnalyticsCache stores a short-lived snapshot of the analytics summary.
// Implementations must tolerate concurrent use; a nil cache disables caching.
type AnalyticsCache interface {
	Get(ctx context.Context) (*ports.AnalyticsResult, bool)
	Set(ctx context.Context, result *ports.AnalyticsResult)
}

// ProductService implements product CRUD, listings, and admin analytics.
type ProductService struct {
	repo   ports.ProductRepository
	users  ports.UserRepository
	cache  AnalyticsCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, users ports.UserRepository, cache AnalyticsCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, users: users, cache: cache, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, claims auth.Claims, input ports.CreateProductInput) (int64, error) {
	if input.Quantity < 0 {
		return 0, domain.ErrInvalidQuantity
	}
	if input.Price < 0 {
		return 0, domain.ErrInvalidPrice
	}

	product := &domain.Product{
		Name:        input.Name,
		Type:        input.Type,
		SKU:         input.SKU,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		Quantity:    input.Quantity,
		Price:       input.Price,
		CreatedBy:   claims.UserID,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("product_id", id).Str("sku", input.SKU).Int64("created_by", claims.UserID).Msg("product created")
	return id, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateQuantity sets a product's quantity after verifying the caller is the
// creator or an admin. The ownership check reads the stored record first so a
// forbidden caller cannot learn anything beyond the product's existence.
func (s *ProductService) UpdateQuantity(ctx context.Context, claims auth.Claims, id int64, quantity int) (*domain.Product, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !product.CanBeModifiedBy(claims.UserID, claims.Role) {
		return nil, domain.ErrForbidden
	}

	return s.repo.UpdateQuantity(ctx, id, quantity)
}

func (s *ProductService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *ProductService) ListPage(ctx context.Context, page domain.Page) (*ports.ProductPage, error) {
	products, err := s.repo.ListPage(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.ProductPage{Products: products, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

// Mine branches the query shape rather than post-filtering: an admin reads
// the full collection, everyone else only rows they created.
func (s *ProductService) Mine(ctx context.Context, claims auth.Claims) ([]domain.Product, error) {
	if claims.Role == domain.RoleAdmin {
		return s.repo.ListRecentAll(ctx)
	}
	return s.repo.ListByCreator(ctx, claims.UserID)
}

func (s *ProductService) Recent(ctx context.Context, page domain.Page) (*ports.ProductPage, error) {
	products, total, err := s.repo.ListRecent(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	return &ports.ProductPage{Products: products, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

func (s *ProductService) Valuable(ctx context.Context, page domain.Page) (*ports.ValuedProductPage, error) {
	products, total, err := s.repo.ListValuable(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	return &ports.ValuedProductPage{Products: products, Total: total}, nil
}

func (s *ProductService) CategoryBreakdown(ctx context.Context) ([]ports.CategoryStat, error) {
	return s.repo.CategoryBreakdown(ctx)
}

// Analytics assembles the admin dashboard summary, consulting the snapshot
// cache first when one is configured.
func (s *ProductService) Analytics(ctx context.Context) (*ports.AnalyticsResult, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	top, err := s.repo.TopProductsByQuantity(ctx, topProductsLimit)
	if err != nil {
		return nil, err
	}
	totalQty, err := s.repo.TotalQuantity(ctx)
	if err != nil {
		return nil, err
	}
	productCount, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	result := &ports.AnalyticsResult{
		TopProducts:   top,
		TotalQuantity: totalQty,
		ProductCount:  productCount,
		UserCount:     userCount,
	}

	if s.cache != nil {
		s.cache.Set(ctx, result)
	}
	return result, nil
}
