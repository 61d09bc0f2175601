package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/domain/enum"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/pkg/apperror"
	"github.com/sangkips/pos-terminal/pkg/pagination"
)

func TestCompleteSaleDecrementsStockAndRecordsSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Bagel", 10, 10, "", "")

	f.terminal.Cart.AddToCart(*p)
	f.terminal.Cart.UpdateQuantity(p.ID, 3)

	sale, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
	require.NoError(t, err)
	require.NotNil(t, sale)

	got, err := f.terminal.Catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)

	sales, err := f.terminal.Sales.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, sale.ID, sales[0].ID)
	assert.Empty(t, f.terminal.Cart.Items())

	assert.Equal(t, entity.Cents(3000), sale.Subtotal)
	assert.Equal(t, entity.Cents(600), sale.Tax)
	assert.Equal(t, entity.Cents(3600), sale.Total)
	assert.Equal(t, "VAT", sale.TaxName)
	assert.Equal(t, 20.0, sale.TaxRate)
	assert.Equal(t, f.clock.Now(), sale.Timestamp)
	assert.Regexp(t, regexp.MustCompile(`^RCP\d{8}$`), sale.ReceiptNumber)
	assert.Len(t, sale.ID, 26)
}

func TestCompleteSaleEmptyCartIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "Bagel", 10, 10, "", "")

	sale, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCard)
	require.NoError(t, err)
	assert.Nil(t, sale)

	sales, err := f.terminal.Sales.ListSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCompleteSaleRejectsInvalidPaymentMethod(t *testing.T) {
	f := newFixture(t)
	f.terminal.Cart.AddToCart(entity.Product{ID: "x", Price: 100})

	for _, m := range []enum.PaymentMethod{"", "cheque"} {
		_, err := f.terminal.Sales.CompleteSale(context.Background(), m)
		assert.True(t, apperror.IsValidation(err))
	}
	assert.Len(t, f.terminal.Cart.Items(), 1)
}

func TestCompleteSaleDistinctProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addProduct(t, "A", 1, 5, "", "")
	b := f.addProduct(t, "B", 2, 5, "", "")
	c := f.addProduct(t, "C", 3, 5, "", "")

	f.terminal.Cart.AddToCart(*a)
	f.terminal.Cart.AddToCart(*b)
	f.terminal.Cart.AddToCart(*a)

	_, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodMobile)
	require.NoError(t, err)

	products, err := f.terminal.Catalog.ListProducts(ctx)
	require.NoError(t, err)
	stock := map[string]int{}
	for _, p := range products {
		stock[p.ID] = p.Stock
	}
	assert.Equal(t, 3, stock[a.ID])
	assert.Equal(t, 4, stock[b.ID])
	assert.Equal(t, 5, stock[c.ID])
}

func TestCompleteSaleAllowsNegativeStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Rare", 5, 1, "", "")
	f.terminal.Cart.AddToCart(*p)
	f.terminal.Cart.UpdateQuantity(p.ID, 4)

	_, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
	require.NoError(t, err)

	got, err := f.terminal.Catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, -3, got.Stock)
}

func TestCompleteSaleUsesLiveTaxSettings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.terminal.Cart.AddToCart(entity.Product{ID: "x", Price: 1000})

	before, err := f.terminal.Cart.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Cents(1200), before.Total)

	f.setTax(t, false, 20)
	sale, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
	require.NoError(t, err)
	assert.Equal(t, entity.Cents(1000), sale.Total)
	assert.Empty(t, sale.TaxName)
}

func TestCompleteSaleCatalogWriteFailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Bagel", 10, 10, "", "")
	f.terminal.Cart.AddToCart(*p)

	f.store.failWrites(repository.KeyProducts)
	sale, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
	require.Error(t, err)
	assert.Nil(t, sale)
	assert.Equal(t, 503, apperror.GetAppError(err).Code)

	f.store.failWrites()
	assert.Len(t, f.terminal.Cart.Items(), 1)
	sales, err := f.terminal.Sales.ListSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
	got, err := f.terminal.Catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)
}

func TestCompleteSaleHistoryWriteFailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Bagel", 10, 10, "", "")
	f.terminal.Cart.AddToCart(*p)

	f.store.failWrites(repository.KeySales)
	_, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
	require.Error(t, err)

	f.store.failWrites()
	assert.Len(t, f.terminal.Cart.Items(), 1)
	sales, err := f.terminal.Sales.ListSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)

	// retry succeeds and the cart is cleared
	sale, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Empty(t, f.terminal.Cart.Items())
}

func TestCompleteSaleIgnoresCancelledContext(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Bagel", 10, 10, "", "")
	f.terminal.Cart.AddToCart(*p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sale, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
	require.NoError(t, err)
	assert.NotNil(t, sale)
}

func TestSalesAreNewestFirstWithUniqueIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Gum", 1, 100, "", "")

	var ids []string
	for i := 0; i < 5; i++ {
		f.terminal.Cart.AddToCart(*p)
		sale, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
		require.NoError(t, err)
		ids = append(ids, sale.ID)
	}

	sales, err := f.terminal.Sales.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 5)
	for i, sale := range sales {
		assert.Equal(t, ids[len(ids)-1-i], sale.ID)
	}
	// same clock instant, still strictly increasing
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestGetSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.terminal.Cart.AddToCart(entity.Product{ID: "x", Price: 100})
	sale, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCard)
	require.NoError(t, err)

	got, err := f.terminal.Sales.GetSale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ReceiptNumber, got.ReceiptNumber)

	_, err = f.terminal.Sales.GetSale(ctx, "missing")
	assert.True(t, apperror.IsNotFound(err))
}

func TestTodaySalesAndTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Gum", 1, 100, "", "")
	f.setTax(t, false, 0)

	sell := func(at time.Time, qty int) {
		f.clock.Set(at)
		f.terminal.Cart.AddToCart(*p)
		f.terminal.Cart.UpdateQuantity(p.ID, qty)
		_, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
		require.NoError(t, err)
	}
	sell(time.Date(2024, 6, 14, 22, 0, 0, 0, time.Local), 1)
	sell(time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local), 2)
	sell(time.Date(2024, 6, 15, 17, 0, 0, 0, time.Local), 3)
	f.clock.Set(time.Date(2024, 6, 15, 18, 0, 0, 0, time.Local))

	today, err := f.terminal.Sales.TodaySales(ctx)
	require.NoError(t, err)
	assert.Len(t, today, 2)

	total, err := f.terminal.Sales.TodayTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Cents(500), total)
}

func TestListSalesPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		f.terminal.Cart.AddToCart(entity.Product{ID: "x", Price: 100})
		_, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
		require.NoError(t, err)
	}

	page, err := f.terminal.Sales.ListSalesPage(ctx, &pagination.PaginationParams{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}
