package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/domain/enum"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
)

const (
	// DefaultLowStockThreshold flags products with fewer units than this
	DefaultLowStockThreshold = 10
	topProductsLimit         = 5
)

// ReportService provides read-only business statistics
type ReportService struct {
	saleRepo          repository.SaleRepository
	productRepo       repository.ProductRepository
	lowStockThreshold int
	now               func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	lowStockThreshold int,
) *ReportService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &ReportService{
		saleRepo:          saleRepo,
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}
}

// WithClock replaces the time source used to anchor periods
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// ReportStats represents the aggregates shown on the business screen
type ReportStats struct {
	Period             enum.Period   `json:"period"`
	PeriodStart        *time.Time    `json:"periodStart,omitempty"`
	GeneratedAt        time.Time     `json:"generatedAt"`
	TotalRevenue       entity.Cents  `json:"totalRevenue"`
	TotalTransactions  int           `json:"totalTransactions"`
	AverageTransaction entity.Cents  `json:"averageTransaction"`
	TotalItemsSold     int           `json:"totalItemsSold"`
	TopProducts        []TopProduct  `json:"topProducts"`
	TotalProducts      int           `json:"totalProducts"`
	LowStockCount      int           `json:"lowStockCount"`
	LowStockThreshold  int           `json:"lowStockThreshold"`
	InventoryValue     entity.Cents  `json:"inventoryValue"`
	Sales              []entity.Sale `json:"-"`
}

// TopProduct is a product's share of revenue within the period
type TopProduct struct {
	ProductID string       `json:"productId"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	Revenue   entity.Cents `json:"revenue"`
}

// Report computes statistics for the period. Sale aggregates use only sales in
// the period; inventory aggregates always cover the whole catalog.
func (s *ReportService) Report(ctx context.Context, period enum.Period) (*ReportStats, error) {
	if !period.IsValid() {
		period = enum.PeriodToday
	}
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := period.Start(now)
	stats := buildReport(salesSince(sales, start), products, s.lowStockThreshold)
	stats.Period = period
	stats.GeneratedAt = now
	if !start.IsZero() {
		stats.PeriodStart = &start
	}
	return stats, nil
}

func buildReport(sales []entity.Sale, products []entity.Product, lowStockThreshold int) *ReportStats {
	stats := &ReportStats{
		TopProducts:       topProducts(sales, topProductsLimit),
		TotalProducts:     len(products),
		LowStockThreshold: lowStockThreshold,
		Sales:             sales,
	}

	for _, sale := range sales {
		stats.TotalRevenue += sale.Total
		stats.TotalItemsSold += sale.ItemCount()
	}
	stats.TotalTransactions = len(sales)
	if stats.TotalTransactions > 0 {
		stats.AverageTransaction = entity.Cents(math.Round(float64(stats.TotalRevenue) / float64(stats.TotalTransactions)))
	}

	for _, p := range products {
		if p.Stock < lowStockThreshold {
			stats.LowStockCount++
		}
		stats.InventoryValue += p.InventoryValue()
	}
	return stats
}

// topProducts groups line items by product id and ranks them by revenue at
// sale-time prices. Ties keep first-encounter order.
func topProducts(sales []entity.Sale, limit int) []TopProduct {
	index := make(map[string]int)
	var ranked []TopProduct
	for _, sale := range sales {
		for _, item := range sale.Items {
			i, ok := index[item.Product.ID]
			if !ok {
				i = len(ranked)
				index[item.Product.ID] = i
				ranked = append(ranked, TopProduct{ProductID: item.Product.ID, Name: item.Product.Name})
			}
			ranked[i].Quantity += item.Quantity
			ranked[i].Revenue += item.LineTotal()
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Revenue > ranked[b].Revenue
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		ranked = []TopProduct{}
	}
	return ranked
}
