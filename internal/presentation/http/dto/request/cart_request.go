package request

// AddCartItemRequest adds one unit of a catalog product
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// UpdateCartItemRequest sets a line quantity; zero or less removes the line
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// ScanRequest adds the product matching a scanned barcode
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// CompleteSaleRequest commits the cart
type CompleteSaleRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// SaleListRequest represents sale history query parameters
type SaleListRequest struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// ReportRequest represents report query parameters
type ReportRequest struct {
	Period string `form:"period"`
	Format string `form:"format"`
}
