package repository

import (
	"context"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations.
// Every mutation rewrites the whole products document.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	// Update replaces the product with the same id. It reports false when the id is unknown.
	Update(ctx context.Context, product *entity.Product) (bool, error)
	// Modify applies fn to the stored product inside the document write, so no
	// other mutation can interleave. An error from fn aborts the write. It
	// returns the stored result, or nil when the id is unknown.
	Modify(ctx context.Context, id string, fn func(*entity.Product) error) (*entity.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	// DecrementStockBatch subtracts quantities keyed by product id in a single write.
	// Unknown ids are ignored and stock may go negative.
	DecrementStockBatch(ctx context.Context, decrements map[string]int) error
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
