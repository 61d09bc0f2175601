package entity

// AllCategoryID is the reserved category meaning "no filter". It is seeded
// into the category collection and can never be created, edited or deleted.
const AllCategoryID = "all"

// Product represents a product in the catalog
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Cents  `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Image    string `json:"image"`
	Barcode  string `json:"barcode,omitempty"`
}

// InventoryValue returns price x stock for the product
func (p Product) InventoryValue() Cents {
	return p.Price.Mul(p.Stock)
}

// Category represents a product category
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// IsReserved reports whether the category is the "all" sentinel
func (c Category) IsReserved() bool {
	return c.ID == AllCategoryID
}

// DefaultCategories returns the categories seeded on first load.
func DefaultCategories() []Category {
	return []Category{
		{ID: AllCategoryID, Name: "All", Icon: "Grid3x3"},
	}
}
