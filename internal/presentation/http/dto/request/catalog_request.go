package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	Image    string  `json:"image"`
	Barcode  string  `json:"barcode"`
}

// UpdateProductRequest represents a partial product update request
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
	Stock    *int     `json:"stock"`
	Image    *string  `json:"image"`
	Barcode  *string  `json:"barcode"`
}

// ProductFilterRequest represents product filter query parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	// Selected applies the terminal's active category instead of CategoryID
	Selected bool `form:"selected"`
	Barcodes bool `form:"barcodes"`
}

// CategoryRequest represents a category create or update request
type CategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SelectCategoryRequest selects the active category filter
type SelectCategoryRequest struct {
	CategoryID string `json:"categoryId"`
}
