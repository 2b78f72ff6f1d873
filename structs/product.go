package structs

// ProductRequest is the body accepted when creating or updating a product.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Brand       string   `json:"brand"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description string   `json:"description"`
	InStock     *bool    `json:"inStock"`
}
