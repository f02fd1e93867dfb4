package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

const productColumns = `id, name, type, sku, image_url, description, quantity, price, created_by, created_at`

// ProductRepository provides Postgres-backed persistence for products.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (int64, error) {
	const query = `
		INSERT INTO products (name, type, sku, image_url, description, quantity, price, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		p.Name, p.Type, p.SKU, p.ImageURL, p.Description, p.Quantity, p.Price, p.CreatedBy, p.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, domain.ErrSKUExists
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.Product, error) {
	query := `
		UPDATE products SET quantity = $1
		WHERE id = $2
		RETURNING ` + productColumns + `;`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, quantity, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update quantity: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY id ASC;`)
}

func (r *ProductRepository) ListPage(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id ASC LIMIT $1 OFFSET $2;`
	return r.queryProducts(ctx, query, limit, offset)
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (r *ProductRepository) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE created_by = $1 ORDER BY created_at DESC;`
	return r.queryProducts(ctx, query, creatorID)
}

func (r *ProductRepository) ListRecentAll(ctx context.Context) ([]domain.Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC;`)
}

// ListRecent pages products newest first, computing the full row count in the
// same query with a window aggregate.
func (r *ProductRepository) ListRecent(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	query := `
		SELECT ` + productColumns + `, COUNT(*) OVER() AS total_count
		FROM products
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list recent products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	var total int64
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.SKU, &p.ImageURL, &p.Description,
			&p.Quantity, &p.Price, &p.CreatedBy, &p.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

// ListValuable pages products by inventory value (price * quantity), highest
// first, with the same window-aggregate total.
func (r *ProductRepository) ListValuable(ctx context.Context, limit, offset int) ([]ports.ValuedProduct, int64, error) {
	query := `
		SELECT ` + productColumns + `, (price * quantity) AS value, COUNT(*) OVER() AS total_count
		FROM products
		ORDER BY value DESC
		LIMIT $1 OFFSET $2;`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list valuable products: %w", err)
	}
	defer rows.Close()

	var products []ports.ValuedProduct
	var total int64
	for rows.Next() {
		var p ports.ValuedProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.SKU, &p.ImageURL, &p.Description,
			&p.Quantity, &p.Price, &p.CreatedBy, &p.CreatedAt, &p.Value, &total); err != nil {
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) CategoryBreakdown(ctx context.Context) ([]ports.CategoryStat, error) {
	const query = `
		SELECT type, COUNT(*) AS product_count, COALESCE(SUM(quantity), 0) AS total_quantity
		FROM products
		GROUP BY type
		ORDER BY total_quantity DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	defer rows.Close()

	var stats []ports.CategoryStat
	for rows.Next() {
		var s ports.CategoryStat
		if err := rows.Scan(&s.Type, &s.ProductCount, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *ProductRepository) TopProductsByQuantity(ctx context.Context, limit int) ([]ports.TopProduct, error) {
	const query = `
		SELECT name, SUM(quantity) AS total_quantity
		FROM products
		GROUP BY name
		ORDER BY total_quantity DESC
		LIMIT $1;`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var top []ports.TopProduct
	for rows.Next() {
		var t ports.TopProduct
		if err := rows.Scan(&t.Name, &t.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan top product row: %w", err)
		}
		top = append(top, t)
	}
	return top, rows.Err()
}

func (r *ProductRepository) TotalQuantity(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM products;`).Scan(&total); err != nil {
		return 0, fmt.Errorf("total quantity: %w", err)
	}
	return total, nil
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.SKU, &p.ImageURL, &p.Description,
			&p.Quantity, &p.Price, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.SKU, &p.ImageURL, &p.Description,
		&p.Quantity, &p.Price, &p.CreatedBy, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
