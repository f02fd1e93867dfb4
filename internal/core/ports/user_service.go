package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// UserPage is a paginated user listing with the true collection total.
type UserPage struct {
	Users []domain.User
	Total int64
	Page  int
	Limit int
}

// UserService defines use-case operations for user administration.
type UserService interface {
	List(ctx context.Context, page domain.Page) (*UserPage, error)
}
