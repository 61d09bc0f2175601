package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/pkg/apperror"
)

// CartService manages the session cart. The cart lives in memory only.
type CartService struct {
	catalog      *CatalogService
	settingsRepo repository.SettingsRepository
	log          *zap.Logger

	mu   sync.Mutex
	cart *entity.Cart
}

// NewCartService creates a new cart service
func NewCartService(catalog *CatalogService, settingsRepo repository.SettingsRepository, log *zap.Logger) *CartService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartService{
		catalog:      catalog,
		settingsRepo: settingsRepo,
		log:          log.Named("cart"),
		cart:         entity.NewCart(),
	}
}

// AddToCart adds one unit of product. Stock is not checked.
func (s *CartService) AddToCart(product entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(product)
}

// AddProductByID looks the product up in the catalog and adds it
func (s *CartService) AddProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	s.AddToCart(*product)
	return product, nil
}

// ScanBarcode adds the product with an exactly matching barcode. A miss
// returns a not-found error and leaves the cart unchanged.
func (s *CartService) ScanBarcode(ctx context.Context, code string) (*entity.Product, error) {
	product, err := s.catalog.FindByBarcode(ctx, code)
	if err != nil {
		if apperror.IsNotFound(err) {
			s.log.Info("barcode not found", zap.String("barcode", code))
		}
		return nil, err
	}
	s.AddToCart(*product)
	return product, nil
}

// UpdateQuantity sets the quantity of a line; quantity <= 0 removes it
func (s *CartService) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(productID, quantity)
}

// RemoveFromCart removes a line; absent ids are ignored
func (s *CartService) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
}

// ClearCart empties the cart
func (s *CartService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Items returns a snapshot of the cart lines
func (s *CartService) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// Summary computes live totals from the cart and current tax settings
func (s *CartService) Summary(ctx context.Context) (*entity.CartSummary, error) {
	tax, err := s.settingsRepo.GetTax(ctx)
	if err != nil {
		return nil, err
	}
	summary := ComputeSummary(s.Items(), *tax)
	return &summary, nil
}

// CartView is the cart contents with its live totals
type CartView struct {
	Items   []entity.CartItem  `json:"items"`
	Summary entity.CartSummary `json:"summary"`
}

// View returns items and summary computed from the same snapshot
func (s *CartService) View(ctx context.Context) (*CartView, error) {
	tax, err := s.settingsRepo.GetTax(ctx)
	if err != nil {
		return nil, err
	}
	items := s.Items()
	return &CartView{Items: items, Summary: ComputeSummary(items, *tax)}, nil
}

// checkout runs fn with the cart locked. The cart is cleared only when fn
// succeeds; no other cart operation can interleave.
func (s *CartService) checkout(fn func(items []entity.CartItem) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.cart.Items()); err != nil {
		return err
	}
	s.cart.Clear()
	return nil
}
