package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// ValuedProduct is a product annotated with its inventory value
// (price * quantity), produced by the valuable listing query.
type ValuedProduct struct {
	domain.Product
	Value float64 `json:"value"`
}

// CategoryStat aggregates products of one type.
type CategoryStat struct {
	Type          string `json:"type"`
	ProductCount  int64  `json:"product_count"`
	TotalQuantity int64  `json:"total_quantity"`
}

// TopProduct is a name-level quantity aggregate for the analytics view.
type TopProduct struct {
	Name          string `json:"name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.Product, error)

	// ListAll returns the entire collection ordered by id, for the strict
	// pagination fallback.
	ListAll(ctx context.Context) ([]domain.Product, error)
	ListPage(ctx context.Context, limit, offset int) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)

	// ListByCreator and ListRecentAll back the ownership-scoped listing:
	// both order newest first, the latter without a creator filter.
	ListByCreator(ctx context.Context, creatorID int64) ([]domain.Product, error)
	ListRecentAll(ctx context.Context) ([]domain.Product, error)

	// ListRecent and ListValuable report the total matching row count
	// alongside the page, computed by the same query.
	ListRecent(ctx context.Context, limit, offset int) ([]domain.Product, int64, error)
	ListValuable(ctx context.Context, limit, offset int) ([]ValuedProduct, int64, error)

	CategoryBreakdown(ctx context.Context) ([]CategoryStat, error)
	TopProductsByQuantity(ctx context.Context, limit int) ([]TopProduct, error)
	TotalQuantity(ctx context.Context) (int64, error)
}
