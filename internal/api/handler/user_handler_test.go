package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

type stubUserService struct {
	listFn func(ctx context.Context, page domain.Page) (*ports.UserPage, error)
}

func (s *stubUserService) List(ctx context.Context, page domain.Page) (*ports.UserPage, error) {
	return s.listFn(ctx, page)
}

func TestUserHandler_List_DefaultedPagination(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listFn: func(ctx context.Context, page domain.Page) (*ports.UserPage, error) {
			if page.Page != domain.DefaultPage || page.Limit != domain.DefaultLimit {
				t.Fatalf("expected defaults for missing params, got %+v", page)
			}
			return &ports.UserPage{
				Users: []domain.User{{ID: 1, Username: "alice", Role: domain.RoleUser}},
				Total: 1,
				Page:  page.Page,
				Limit: page.Limit,
			}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 9, domain.RoleAdmin)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(1) || resp["page"] != float64(1) || resp["limit"] != float64(10) {
		t.Fatalf("unexpected metadata: %+v", resp)
	}
	users, ok := resp["users"].([]any)
	if !ok || len(users) != 1 {
		t.Fatalf("unexpected users payload: %+v", resp["users"])
	}
	// Password hashes must never serialize.
	if _, leaked := users[0].(map[string]any)["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestUserHandler_List_InvalidParamsFallBack(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listFn: func(ctx context.Context, page domain.Page) (*ports.UserPage, error) {
			if page.Page != domain.DefaultPage || page.Limit != domain.DefaultLimit {
				t.Fatalf("expected defaults for invalid params, got %+v", page)
			}
			return &ports.UserPage{Page: page.Page, Limit: page.Limit}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users?page=abc&limit=-1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 9, domain.RoleAdmin)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
