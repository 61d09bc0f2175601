package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/pos-terminal/internal/application/service"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/request"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/response"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	catalog *service.CatalogService
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List handles listing every product in catalog order
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// Filter handles listing products narrowed by category and search text
func (h *ProductHandler) Filter(c *gin.Context) {
	var req request.ProductFilterRequest
	if !bindQuery(c, &req) {
		return
	}

	categoryID := req.CategoryID
	if req.Selected {
		categoryID = h.catalog.SelectedCategory()
	}
	products, err := h.catalog.FilteredProducts(c.Request.Context(), service.ProductFilter{
		CategoryID:   categoryID,
		Search:       req.Search,
		MatchBarcode: req.Barcodes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalog.AddProduct(c.Request.Context(), &service.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
		Image:    req.Image,
		Barcode:  req.Barcode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// Update handles partial product updates
func (h *ProductHandler) Update(c *gin.Context) {
	var req request.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), &service.UpdateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
		Image:    req.Image,
		Barcode:  req.Barcode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if product == nil {
		response.NotFound(c, "Product not found")
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// Delete handles product deletion; unknown ids succeed
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
