package repository

import (
	"context"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
)

// SaleRepository is append-only: there is no update or delete.
type SaleRepository interface {
	// List returns all sales, newest first
	List(ctx context.Context) ([]entity.Sale, error)
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// Prepend stores sale at the head of the history
	Prepend(ctx context.Context, sale *entity.Sale) error
}
