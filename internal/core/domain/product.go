package domain

import "time"

// Product is the core inventory record.
// Invariants: Quantity >= 0, Price >= 0, SKU unique across the store.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	SKU         string    `json:"sku"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// CanBeModifiedBy reports whether the given actor may mutate this product.
// Only the creator or an admin qualifies.
func (p *Product) CanBeModifiedBy(userID int64, role string) bool {
	return p.CreatedBy == userID || role == RoleAdmin
}
