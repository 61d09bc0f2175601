package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-terminal/internal/domain/repository"
)

type productRepository struct {
	doc *document[[]entity.Product]
}

// NewProductRepository creates a new product repository
func NewProductRepository(store domainRepo.KVStore, log *zap.Logger) domainRepo.ProductRepository {
	return &productRepository{
		doc: newDocument(store, domainRepo.KeyProducts, func() []entity.Product { return []entity.Product{} }, cloneSlice[entity.Product], log),
	}
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	return r.doc.Read(ctx)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := r.doc.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.doc.Mutate(ctx, func(products []entity.Product) ([]entity.Product, error) {
		return append(products, *product), nil
	})
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) (bool, error) {
	found := false
	err := r.doc.Mutate(ctx, func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].ID == product.ID {
				products[i] = *product
				found = true
				break
			}
		}
		return products, nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (r *productRepository) Modify(ctx context.Context, id string, fn func(*entity.Product) error) (*entity.Product, error) {
	var result *entity.Product
	err := r.doc.Mutate(ctx, func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}
			if err := fn(&products[i]); err != nil {
				return nil, err
			}
			updated := products[i]
			result = &updated
			break
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.doc.Mutate(ctx, func(products []entity.Product) ([]entity.Product, error) {
		kept := products[:0]
		for _, p := range products {
			if p.ID == id {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (r *productRepository) DecrementStockBatch(ctx context.Context, decrements map[string]int) error {
	return r.doc.Mutate(ctx, func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if qty, ok := decrements[products[i].ID]; ok {
				products[i].Stock -= qty
			}
		}
		return products, nil
	})
}
