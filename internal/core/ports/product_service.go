package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/auth"
	"github.com/stocklane/inventory-system/internal/core/domain"
)

// CreateProductInput carries all data needed to create a new product.
type CreateProductInput struct {
	Name        string
	Type        string
	SKU         string
	ImageURL    string
	Description string
	Quantity    int
	Price       float64
}

// ProductPage is a paginated product listing with the true collection total.
type ProductPage struct {
	Products []domain.Product
	Total    int64
	Page     int
	Limit    int
}

// ValuedProductPage is a paginated listing of value-annotated products.
type ValuedProductPage struct {
	Products []ValuedProduct
	Total    int64
}

// AnalyticsResult is the admin dashboard summary.
type AnalyticsResult struct {
	TopProducts   []TopProduct `json:"topProducts"`
	TotalQuantity int64        `json:"totalQuantity"`
	ProductCount  int64        `json:"productCount"`
	UserCount     int64        `json:"userCount"`
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, claims auth.Claims, input CreateProductInput) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)

	// UpdateQuantity enforces the ownership rule: only the creator or an
	// admin may change a product's quantity.
	UpdateQuantity(ctx context.Context, claims auth.Claims, id int64, quantity int) (*domain.Product, error)

	// ListAll backs the strict pagination fallback: the whole collection,
	// ordered by id.
	ListAll(ctx context.Context) ([]domain.Product, error)
	ListPage(ctx context.Context, page domain.Page) (*ProductPage, error)

	// Mine returns the caller's own products; admins see every product.
	Mine(ctx context.Context, claims auth.Claims) ([]domain.Product, error)

	Recent(ctx context.Context, page domain.Page) (*ProductPage, error)
	Valuable(ctx context.Context, page domain.Page) (*ValuedProductPage, error)
	CategoryBreakdown(ctx context.Context) ([]CategoryStat, error)
	Analytics(ctx context.Context) (*AnalyticsResult, error)
}
