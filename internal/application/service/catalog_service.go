package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/pkg/apperror"
	"github.com/sangkips/pos-terminal/pkg/utils"
)

// CatalogService owns the product and category collections and the active
// category filter.
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	log          *zap.Logger

	mu       sync.RWMutex
	selected string
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	log *zap.Logger,
) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		log:          log.Named("catalog"),
		selected:     entity.AllCategoryID,
	}
}

// productFields holds the validated, sanitized fields of a product. Stock is
// only checked when the caller sets it, since sales may drive it negative.
type productFields struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Price    float64 `json:"price" validate:"gt=0"`
	Category string  `json:"category" validate:"max=64"`
	Stock    *int    `json:"stock" validate:"omitempty,gte=0"`
	Image    string  `json:"image" validate:"omitempty,max=2048"`
	Barcode  string  `json:"barcode" validate:"omitempty,max=64"`
}

func (f *productFields) clean() {
	f.Name = utils.CleanText(f.Name)
	f.Category = strings.TrimSpace(f.Category)
	f.Image = strings.TrimSpace(f.Image)
	f.Barcode = strings.TrimSpace(f.Barcode)
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	Price    float64
	Category string
	Stock    int
	Image    string
	Barcode  string
}

// AddProduct validates the input, assigns a new id and persists the product.
func (s *CatalogService) AddProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	fields := productFields{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Stock:    &input.Stock,
		Image:    input.Image,
		Barcode:  input.Barcode,
	}
	fields.clean()
	if err := validateInput(&fields); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:       utils.NewUUID(),
		Name:     fields.Name,
		Price:    entity.CentsFromDecimal(fields.Price),
		Category: fields.Category,
		Stock:    input.Stock,
		Image:    fields.Image,
		Barcode:  fields.Barcode,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("product added", zap.String("product_id", product.ID), zap.String("name", product.Name))
	return product, nil
}

// UpdateProductInput represents a partial product update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name     *string
	Price    *float64
	Category *string
	Stock    *int
	Image    *string
	Barcode  *string
}

// UpdateProduct merges the given fields into the product. The merge runs
// inside the catalog write so concurrent stock decrements are kept. An
// unknown id is a no-op and returns (nil, nil).
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error) {
	return s.productRepo.Modify(ctx, id, func(product *entity.Product) error {
		fields := productFields{
			Name:     product.Name,
			Price:    product.Price.Decimal(),
			Category: product.Category,
			Stock:    input.Stock,
			Image:    product.Image,
			Barcode:  product.Barcode,
		}
		if input.Name != nil {
			fields.Name = *input.Name
		}
		if input.Price != nil {
			fields.Price = *input.Price
		}
		if input.Category != nil {
			fields.Category = *input.Category
		}
		if input.Image != nil {
			fields.Image = *input.Image
		}
		if input.Barcode != nil {
			fields.Barcode = *input.Barcode
		}
		fields.clean()
		if err := validateInput(&fields); err != nil {
			return err
		}

		product.Name = fields.Name
		if input.Price != nil {
			product.Price = entity.CentsFromDecimal(fields.Price)
		}
		product.Category = fields.Category
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		product.Image = fields.Image
		product.Barcode = fields.Barcode
		return nil
	})
}

// DeleteProduct removes the product; absent ids are not an error
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	found, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if found {
		s.log.Info("product deleted", zap.String("product_id", id))
	}
	return nil
}

// ListProducts returns every product in catalog order
func (s *CatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// FindByBarcode returns the first product whose barcode matches code exactly.
func (s *CatalogService) FindByBarcode(ctx context.Context, code string) (*entity.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperror.NewFieldError("barcode", "barcode is required")
	}
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Barcode == code {
			return &products[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Product")
}

// ProductFilter narrows the product list
type ProductFilter struct {
	CategoryID string
	Search     string
	// MatchBarcode also matches Search against barcodes, as the product
	// management view does.
	MatchBarcode bool
}

// FilteredProducts returns the products in the given category (all when
// empty or "all") whose name contains the search text, ignoring case.
func (s *CatalogService) FilteredProducts(ctx context.Context, filter ProductFilter) ([]entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterProducts(products, filter), nil
}

func filterProducts(products []entity.Product, filter ProductFilter) []entity.Product {
	category := strings.TrimSpace(filter.CategoryID)
	search := strings.TrimSpace(filter.Search)

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != entity.AllCategoryID && p.Category != category {
			continue
		}
		if search != "" {
			match := utils.ContainsFold(p.Name, search)
			if !match && filter.MatchBarcode && p.Barcode != "" {
				match = utils.ContainsFold(p.Barcode, search)
			}
			if !match {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// VisibleProducts applies the active category selection and search text
func (s *CatalogService) VisibleProducts(ctx context.Context, search string) ([]entity.Product, error) {
	return s.FilteredProducts(ctx, ProductFilter{CategoryID: s.SelectedCategory(), Search: search})
}

// CategoryInput represents the category create/update input
type CategoryInput struct {
	Name string `json:"name" validate:"required,max=60"`
	Icon string `json:"icon" validate:"required,max=40"`
}

func (in *CategoryInput) clean() {
	in.Name = utils.CleanText(in.Name)
	in.Icon = strings.TrimSpace(in.Icon)
}

// ListCategories returns every category, "all" included
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// AddCategory creates a new category with a generated id
func (s *CatalogService) AddCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error) {
	in := *input
	in.clean()
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	category := &entity.Category{ID: utils.NewUUID(), Name: in.Name, Icon: in.Icon}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	s.log.Info("category added", zap.String("category_id", category.ID))
	return category, nil
}

// UpdateCategory replaces name and icon. Unknown ids and the reserved "all"
// category are no-ops returning (nil, nil).
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, input *CategoryInput) (*entity.Category, error) {
	if id == entity.AllCategoryID {
		return nil, nil
	}
	in := *input
	in.clean()
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	category := &entity.Category{ID: id, Name: in.Name, Icon: in.Icon}
	found, err := s.categoryRepo.Update(ctx, category)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return category, nil
}

// DeleteCategory removes a category. Deleting "all" is a no-op; deleting the
// selected category resets the selection to "all". Products keep their
// category value.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if id == entity.AllCategoryID {
		return nil
	}

	s.mu.Lock()
	found, err := s.categoryRepo.Delete(ctx, id)
	if err == nil && s.selected == id {
		s.selected = entity.AllCategoryID
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if found {
		s.log.Info("category deleted", zap.String("category_id", id))
	}
	return nil
}

// SelectCategory sets the active filter category. The lookup and the
// assignment hold mu so a concurrent delete cannot leave a stale selection.
func (s *CatalogService) SelectCategory(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		id = entity.AllCategoryID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id != entity.AllCategoryID {
		category, err := s.categoryRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return apperror.NewNotFoundError("Category")
		}
	}

	s.selected = id
	return nil
}

// SelectedCategory returns the active filter category id
func (s *CatalogService) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}
