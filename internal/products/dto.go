package products

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Category    Category `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Unit        string   `json:"unit,omitempty" validate:"omitempty,max=50"`
	Description string   `json:"description,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	Category    *Category `json:"category,omitempty"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Unit        *string   `json:"unit,omitempty" validate:"omitempty,max=50"`
	Description *string   `json:"description,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

type ListProductsRequest struct {
	Category Category `json:"category,omitempty"`
	Search   string   `json:"search,omitempty"`
	Limit    int      `json:"limit" validate:"gte=0,lte=1000"`
	Offset   int      `json:"offset" validate:"gte=0"`
}
