package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	// List retrieves all categories ordered by type
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)

	// Create creates a category, keeping an existing one with the same ID
	Create(ctx context.Context, category *Category) error
}

// Category represents a question topic
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
