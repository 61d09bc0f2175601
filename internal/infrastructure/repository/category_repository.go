package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-terminal/internal/domain/repository"
)

type categoryRepository struct {
	doc *document[[]entity.Category]
}

// NewCategoryRepository creates a new category repository. The reserved
// "all" category is seeded when nothing has been stored yet.
func NewCategoryRepository(store domainRepo.KVStore, log *zap.Logger) domainRepo.CategoryRepository {
	return &categoryRepository{
		doc: newDocument(store, domainRepo.KeyCategories, entity.DefaultCategories, cloneSlice[entity.Category], log),
	}
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	return r.doc.Read(ctx)
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	categories, err := r.doc.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.doc.Mutate(ctx, func(categories []entity.Category) ([]entity.Category, error) {
		return append(categories, *category), nil
	})
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) (bool, error) {
	found := false
	err := r.doc.Mutate(ctx, func(categories []entity.Category) ([]entity.Category, error) {
		for i := range categories {
			if categories[i].ID == category.ID {
				categories[i] = *category
				found = true
				break
			}
		}
		return categories, nil
	})
	return found && err == nil, err
}

func (r *categoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.doc.Mutate(ctx, func(categories []entity.Category) ([]entity.Category, error) {
		kept := categories[:0]
		for _, c := range categories {
			if c.ID == id {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		return kept, nil
	})
	return found && err == nil, err
}
