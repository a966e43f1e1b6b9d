package products

import "time"

// Category is one of the fixed print-shop service categories.
type Category string

const (
	CategoryDigitalPrint    Category = "digital-print"
	CategoryOffsetPrint     Category = "offset-print"
	CategoryFinishing       Category = "finishing"
	CategoryDesign          Category = "design"
	CategoryMaterials       Category = "materials"
	CategorySpecialServices Category = "special-services"
)

// Categories lists every valid product category.
func Categories() []Category {
	return []Category{
		CategoryDigitalPrint,
		CategoryOffsetPrint,
		CategoryFinishing,
		CategoryDesign,
		CategoryMaterials,
		CategorySpecialServices,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryDigitalPrint, CategoryOffsetPrint, CategoryFinishing,
		CategoryDesign, CategoryMaterials, CategorySpecialServices:
		return true
	}
	return false
}

// Product is a sellable print-shop service or material. Quote items keep
// their own name/price snapshot, so deleting a product never rewrites
// historical quotes.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit,omitempty"`
	Description string    `json:"description,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
