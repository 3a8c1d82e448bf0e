// Package repository maps catalog entities to the backing store.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/javajoker/catalog-backend/internal/models"
)

var ErrNotFound = errors.New("record not found")

// ProductRepository is the storage contract used by the catalog service.
// Every adapter must honour Transaction: when fn returns an error nothing
// fn did through the repo it was handed may remain visible.
type ProductRepository interface {
	Transaction(ctx context.Context, fn func(repo ProductRepository) error) error

	// Create inserts the product and all of its images as one unit.
	Create(ctx context.Context, product *models.Product) error
	// Save updates the product columns and inserts images that have no id yet.
	Save(ctx context.Context, product *models.Product) error
	DeleteImages(ctx context.Context, productID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error

	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByTitleOrSlug(ctx context.Context, title, slug string) (*models.Product, error)
	List(ctx context.Context, limit, offset int) ([]models.Product, error)

	Ping(ctx context.Context) error
}

// DuplicateError reports a uniqueness-constraint violation. Detail carries
// the store's own description of the colliding key.
type DuplicateError struct {
	Detail string
	Err    error
}

func (e *DuplicateError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("duplicate key: %s", e.Detail)
	}
	return "duplicate key"
}

func (e *DuplicateError) Unwrap() error {
	return e.Err
}

// IsUniqueViolation reports whether err was caused by a uniqueness
// constraint and returns the store detail when it was.
func IsUniqueViolation(err error) (string, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup.Detail, true
	}
	return "", false
}
