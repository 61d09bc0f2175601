package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/pos-terminal/internal/application/service"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/request"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/response"
)

// CartHandler handles requests against the session cart
type CartHandler struct {
	cart *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

func (h *CartHandler) respond(c *gin.Context, message string) {
	view, err := h.cart.View(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, message, view)
}

// Get returns the cart lines and live totals
func (h *CartHandler) Get(c *gin.Context) {
	h.respond(c, "Cart retrieved successfully")
}

// AddItem adds one unit of a catalog product
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.cart.AddProductByID(c.Request.Context(), req.ProductID); err != nil {
		response.Error(c, err)
		return
	}
	h.respond(c, "Item added to cart")
}

// Scan adds the product matching a barcode
func (h *CartHandler) Scan(c *gin.Context) {
	var req request.ScanRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.cart.ScanBarcode(c.Request.Context(), req.Barcode); err != nil {
		response.Error(c, err)
		return
	}
	h.respond(c, "Item added to cart")
}

// UpdateItem sets the quantity of a line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req request.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	h.cart.UpdateQuantity(c.Param("productId"), *req.Quantity)
	h.respond(c, "Cart updated")
}

// RemoveItem removes a line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.RemoveFromCart(c.Param("productId"))
	h.respond(c, "Item removed from cart")
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.ClearCart()
	h.respond(c, "Cart cleared")
}
