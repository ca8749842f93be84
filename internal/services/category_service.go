package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"dompet/internal/core"
	"dompet/internal/ledger"
)

// CategoryService manages the catalog transactions and budgets post
// against. Types are fixed at creation; there is no rename or retype.
type CategoryService struct {
	store ledger.CategoryStore
}

func NewCategoryService(store ledger.CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List(ctx context.Context) ([]core.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Create stores a custom category. A blank ID gets one.
func (s *CategoryService) Create(ctx context.Context, c core.Category) (core.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}

	if err := s.store.CreateCategory(ctx, c); err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}

	slog.InfoContext(ctx, "Category created",
		"category_id", c.ID,
		"name", c.Name,
		"type", string(c.Type))
	return c, nil
}
