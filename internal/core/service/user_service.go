package service

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

// UserService implements user administration use cases.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns one page of users plus the full row count.
func (s *UserService) List(ctx context.Context, page domain.Page) (*ports.UserPage, error) {
	users, err := s.repo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.UserPage{Users: users, Total: total, Page: page.Page, Limit: page.Limit}, nil
}
