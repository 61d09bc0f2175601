package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/domain/enum"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/pkg/apperror"
	"github.com/sangkips/pos-terminal/pkg/pagination"
	"github.com/sangkips/pos-terminal/pkg/utils"
)

// SaleService commits carts into sale history and serves the history back.
type SaleService struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	cart         *CartService
	log          *zap.Logger
	now          func() time.Time

	commitMu sync.Mutex
}

// NewSaleService creates a new sale service
func NewSaleService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	cart *CartService,
	log *zap.Logger,
) *SaleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SaleService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		cart:         cart,
		log:          log.Named("sales"),
		now:          time.Now,
	}
}

// WithClock replaces the time source used for timestamps and receipt numbers
func (s *SaleService) WithClock(now func() time.Time) *SaleService {
	s.now = now
	return s
}

// CompleteSale turns the current cart into a sale.
//
// Totals are recomputed from the live cart and tax settings. The catalog with
// decremented stock is persisted first, then the sale is prepended to the
// history, and only then is the cart cleared. Any persistence failure is
// returned and the cart is left as it was. An empty cart returns (nil, nil).
// Once started, a commit is not affected by ctx cancellation.
func (s *SaleService) CompleteSale(ctx context.Context, method enum.PaymentMethod) (*entity.Sale, error) {
	if !method.IsValid() {
		return nil, apperror.NewFieldError("paymentMethod", "paymentMethod must be one of: cash card mobile")
	}
	ctx = context.WithoutCancel(ctx)

	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	var sale *entity.Sale
	err := s.cart.checkout(func(items []entity.CartItem) error {
		if len(items) == 0 {
			return nil
		}

		tax, err := s.settingsRepo.GetTax(ctx)
		if err != nil {
			return err
		}
		summary := ComputeSummary(items, *tax)

		now := s.now()
		candidate := &entity.Sale{
			ID:            utils.NewSaleID(now),
			Items:         items,
			Subtotal:      summary.Subtotal,
			Tax:           summary.Tax,
			Total:         summary.Total,
			PaymentMethod: method,
			Timestamp:     now,
			ReceiptNumber: utils.GenerateReceiptNo(now),
		}
		if tax.Enabled {
			candidate.TaxName = tax.Name
			candidate.TaxRate = tax.Rate
		}

		decrements := make(map[string]int, len(items))
		for _, item := range items {
			decrements[item.Product.ID] += item.Quantity
		}
		if err := s.productRepo.DecrementStockBatch(ctx, decrements); err != nil {
			s.log.Error("stock update failed, sale aborted", zap.Error(err))
			return err
		}
		if err := s.saleRepo.Prepend(ctx, candidate); err != nil {
			// stock is already decremented at this point
			s.log.Error("sale record failed after stock update",
				zap.String("sale_id", candidate.ID),
				zap.String("receipt_number", candidate.ReceiptNumber),
				zap.Error(err))
			return err
		}

		sale = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	if sale != nil {
		s.log.Info("sale committed",
			zap.String("sale_id", sale.ID),
			zap.String("receipt_number", sale.ReceiptNumber),
			zap.String("payment_method", sale.PaymentMethod.String()),
			zap.Int("items", sale.ItemCount()),
			zap.String("total", sale.Total.String()))
	}
	return sale, nil
}

// ListSales returns the full history, newest first
func (s *SaleService) ListSales(ctx context.Context) ([]entity.Sale, error) {
	return s.saleRepo.List(ctx)
}

// ListSalesPage returns one page of the history, newest first
func (s *SaleService) ListSalesPage(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return pagination.Paginate(sales, params), nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// TodaySales returns sales made since local midnight
func (s *SaleService) TodaySales(ctx context.Context) ([]entity.Sale, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return salesSince(sales, enum.PeriodToday.Start(s.now())), nil
}

// TodayTotal sums the totals of today's sales
func (s *SaleService) TodayTotal(ctx context.Context) (entity.Cents, error) {
	sales, err := s.TodaySales(ctx)
	if err != nil {
		return 0, err
	}
	var total entity.Cents
	for _, sale := range sales {
		total += sale.Total
	}
	return total, nil
}

// salesSince keeps sales with timestamp >= start; a zero start keeps all
func salesSince(sales []entity.Sale, start time.Time) []entity.Sale {
	if start.IsZero() {
		return sales
	}
	out := make([]entity.Sale, 0, len(sales))
	for _, sale := range sales {
		if !sale.Timestamp.Before(start) {
			out = append(out, sale)
		}
	}
	return out
}
