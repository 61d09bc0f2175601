package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-terminal/internal/domain/repository"
)

type saleRepository struct {
	doc *document[[]entity.Sale]
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(store domainRepo.KVStore, log *zap.Logger) domainRepo.SaleRepository {
	return &saleRepository{
		doc: newDocument(store, domainRepo.KeySales, func() []entity.Sale { return []entity.Sale{} }, cloneSales, log),
	}
}

func (r *saleRepository) List(ctx context.Context) ([]entity.Sale, error) {
	return r.doc.Read(ctx)
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	sales, err := r.doc.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].ID == id {
			return &sales[i], nil
		}
	}
	return nil, nil
}

func (r *saleRepository) Prepend(ctx context.Context, sale *entity.Sale) error {
	return r.doc.Mutate(ctx, func(sales []entity.Sale) ([]entity.Sale, error) {
		out := make([]entity.Sale, 0, len(sales)+1)
		out = append(out, *sale)
		return append(out, sales...), nil
	})
}

// cloneSales copies the history including each sale's item lines
func cloneSales(sales []entity.Sale) []entity.Sale {
	out := make([]entity.Sale, len(sales))
	for i, sale := range sales {
		if sale.Items != nil {
			sale.Items = cloneSlice(sale.Items)
		}
		out[i] = sale
	}
	return out
}
