package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/domain/enum"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/pkg/apperror"
)

func TestAddProduct(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "  <b>Cold Brew</b> ", 4.5, 12, "drinks", "5012345678900")

	assert.Len(t, p.ID, 36)
	assert.Equal(t, "Cold Brew", p.Name)
	assert.Equal(t, entity.Cents(450), p.Price)

	list, err := f.terminal.Catalog.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *p, list[0])
}

func TestAddProductValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]*CreateProductInput{
		"empty name":     {Name: "", Price: 1},
		"markup only":    {Name: "<i></i>", Price: 1},
		"zero price":     {Name: "Tea", Price: 0},
		"negative price": {Name: "Tea", Price: -2},
		"negative stock": {Name: "Tea", Price: 2, Stock: -1},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.terminal.Catalog.AddProduct(ctx, input)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}

	list, err := f.terminal.Catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddProductValidationReportsJSONFields(t *testing.T) {
	f := newFixture(t)
	_, err := f.terminal.Catalog.AddProduct(context.Background(), &CreateProductInput{Name: "", Price: 0})
	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 2)
	assert.Equal(t, "name", appErr.Errors[0].Field)
	assert.Equal(t, "price", appErr.Errors[1].Field)
}

func TestUpdateProductMergesFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Latte", 3.2, 5, "drinks", "")

	updated, err := f.terminal.Catalog.UpdateProduct(ctx, p.ID, &UpdateProductInput{Stock: ptr(40), Barcode: ptr("111")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Latte", updated.Name)
	assert.Equal(t, entity.Cents(320), updated.Price)
	assert.Equal(t, 40, updated.Stock)
	assert.Equal(t, "111", updated.Barcode)

	got, err := f.terminal.Catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

func TestUpdateProductRejectsInvalidValues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Latte", 3.2, 5, "", "")

	_, err := f.terminal.Catalog.UpdateProduct(ctx, p.ID, &UpdateProductInput{Price: ptr(0.0)})
	assert.True(t, apperror.IsValidation(err))

	_, err = f.terminal.Catalog.UpdateProduct(ctx, p.ID, &UpdateProductInput{Name: ptr("  ")})
	assert.True(t, apperror.IsValidation(err))

	got, err := f.terminal.Catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Cents(320), got.Price)
}

func TestUpdateOversoldProductWithoutStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Cola", 2, 1, "", "")

	f.terminal.Cart.AddToCart(*p)
	f.terminal.Cart.UpdateQuantity(p.ID, 3)
	_, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
	require.NoError(t, err)

	updated, err := f.terminal.Catalog.UpdateProduct(ctx, p.ID, &UpdateProductInput{Name: ptr("Cola Zero")})
	require.NoError(t, err)
	assert.Equal(t, "Cola Zero", updated.Name)
	assert.Equal(t, -2, updated.Stock)

	_, err = f.terminal.Catalog.UpdateProduct(ctx, p.ID, &UpdateProductInput{Stock: ptr(-1)})
	assert.True(t, apperror.IsValidation(err))

	restocked, err := f.terminal.Catalog.UpdateProduct(ctx, p.ID, &UpdateProductInput{Stock: ptr(24)})
	require.NoError(t, err)
	assert.Equal(t, 24, restocked.Stock)
}

func TestUpdateProductKeepsConcurrentStockDecrements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.setTax(t, false, 0)
	p := f.addProduct(t, "Cola", 2, 1000, "", "")
	const rounds = 200

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, err := f.terminal.Catalog.UpdateProduct(ctx, p.ID, &UpdateProductInput{Name: ptr("Cola Classic")})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			f.terminal.Cart.AddToCart(*p)
			_, err := f.terminal.Sales.CompleteSale(ctx, enum.PaymentMethodCash)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	got, err := f.terminal.Catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000-rounds, got.Stock)
	assert.Equal(t, "Cola Classic", got.Name)

	sales, err := f.terminal.Sales.ListSales(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, rounds)
}

func TestUpdateAndDeleteUnknownProductAreNoops(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	updated, err := f.terminal.Catalog.UpdateProduct(ctx, "missing", &UpdateProductInput{Name: ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	assert.NoError(t, f.terminal.Catalog.DeleteProduct(ctx, "missing"))
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Scone", 2, 3, "", "")

	require.NoError(t, f.terminal.Catalog.DeleteProduct(ctx, p.ID))
	_, err := f.terminal.Catalog.GetProduct(ctx, p.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAddProductPersistenceFailure(t *testing.T) {
	f := newFixture(t)
	f.store.failWrites(repository.KeyProducts)

	_, err := f.terminal.Catalog.AddProduct(context.Background(), &CreateProductInput{Name: "Tea", Price: 1})
	require.Error(t, err)
	assert.Equal(t, 503, apperror.GetAppError(err).Code)

	f.store.failWrites()
	list, err := f.terminal.Catalog.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFilteredProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "Espresso", 2.5, 10, "coffee", "100")
	f.addProduct(t, "Iced Espresso", 3, 10, "cold", "200")
	f.addProduct(t, "Croissant", 2, 10, "bakery", "300")

	all, err := f.terminal.Catalog.FilteredProducts(ctx, ProductFilter{CategoryID: entity.AllCategoryID})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := f.terminal.Catalog.FilteredProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, empty, 3)

	coffee, err := f.terminal.Catalog.FilteredProducts(ctx, ProductFilter{CategoryID: "coffee"})
	require.NoError(t, err)
	require.Len(t, coffee, 1)
	assert.Equal(t, "Espresso", coffee[0].Name)

	search, err := f.terminal.Catalog.FilteredProducts(ctx, ProductFilter{CategoryID: entity.AllCategoryID, Search: "ESPRESSO"})
	require.NoError(t, err)
	assert.Len(t, search, 2)

	both, err := f.terminal.Catalog.FilteredProducts(ctx, ProductFilter{CategoryID: "cold", Search: "espresso"})
	require.NoError(t, err)
	assert.Len(t, both, 1)

	byBarcode, err := f.terminal.Catalog.FilteredProducts(ctx, ProductFilter{Search: "30"})
	require.NoError(t, err)
	assert.Empty(t, byBarcode)

	byBarcode, err = f.terminal.Catalog.FilteredProducts(ctx, ProductFilter{Search: "30", MatchBarcode: true})
	require.NoError(t, err)
	require.Len(t, byBarcode, 1)
	assert.Equal(t, "Croissant", byBarcode[0].Name)
}

func TestFindByBarcode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	want := f.addProduct(t, "Water", 1, 10, "", "4006381333931")

	got, err := f.terminal.Catalog.FindByBarcode(ctx, "4006381333931")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)

	_, err = f.terminal.Catalog.FindByBarcode(ctx, "400638133393")
	assert.True(t, apperror.IsNotFound(err))

	_, err = f.terminal.Catalog.FindByBarcode(ctx, " ")
	assert.True(t, apperror.IsValidation(err))
}

func TestCategories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cats, err := f.terminal.Catalog.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, entity.AllCategoryID, cats[0].ID)

	c, err := f.terminal.Catalog.AddCategory(ctx, &CategoryInput{Name: "Coffee", Icon: "Coffee"})
	require.NoError(t, err)
	assert.NotEqual(t, entity.AllCategoryID, c.ID)

	_, err = f.terminal.Catalog.AddCategory(ctx, &CategoryInput{Name: "", Icon: "Coffee"})
	assert.True(t, apperror.IsValidation(err))

	renamed, err := f.terminal.Catalog.UpdateCategory(ctx, c.ID, &CategoryInput{Name: "Hot Drinks", Icon: "Flame"})
	require.NoError(t, err)
	assert.Equal(t, "Hot Drinks", renamed.Name)

	missing, err := f.terminal.Catalog.UpdateCategory(ctx, "nope", &CategoryInput{Name: "X", Icon: "Y"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReservedCategoryCannotChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	updated, err := f.terminal.Catalog.UpdateCategory(ctx, entity.AllCategoryID, &CategoryInput{Name: "Everything", Icon: "Star"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	require.NoError(t, f.terminal.Catalog.DeleteCategory(ctx, entity.AllCategoryID))

	cats, err := f.terminal.Catalog.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCategories(), cats)
}

func TestDeleteSelectedCategoryResetsFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.terminal.Catalog.AddCategory(ctx, &CategoryInput{Name: "Bakery", Icon: "Croissant"})
	require.NoError(t, err)
	f.addProduct(t, "Bagel", 1.5, 4, c.ID, "")
	f.addProduct(t, "Soda", 1, 4, "drinks", "")

	require.NoError(t, f.terminal.Catalog.SelectCategory(ctx, c.ID))
	visible, err := f.terminal.Catalog.VisibleProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	require.NoError(t, f.terminal.Catalog.DeleteCategory(ctx, c.ID))
	assert.Equal(t, entity.AllCategoryID, f.terminal.Catalog.SelectedCategory())

	visible, err = f.terminal.Catalog.VisibleProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestSelectRacingDeleteNeverLeavesStaleFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		c, err := f.terminal.Catalog.AddCategory(ctx, &CategoryInput{Name: "Seasonal", Icon: "Leaf"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = f.terminal.Catalog.SelectCategory(ctx, c.ID)
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, f.terminal.Catalog.DeleteCategory(ctx, c.ID))
		}()
		wg.Wait()

		require.Equal(t, entity.AllCategoryID, f.terminal.Catalog.SelectedCategory())
	}
}

func TestSelectCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.terminal.Catalog.SelectCategory(ctx, "ghost")
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, entity.AllCategoryID, f.terminal.Catalog.SelectedCategory())

	require.NoError(t, f.terminal.Catalog.SelectCategory(ctx, ""))
	assert.Equal(t, entity.AllCategoryID, f.terminal.Catalog.SelectedCategory())
}
