package quotes

import "time"

// QuoteItemRequest carries one line of a create or update request.
// Quantity and price are normalized by the service before persisting, so
// out-of-range values degrade to the documented defaults instead of
// failing the whole request.
type QuoteItemRequest struct {
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type CreateQuoteRequest struct {
	ClientID    string             `json:"clientId" validate:"required"`
	Description string             `json:"description,omitempty"`
	Items       []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount    float64            `json:"discount"`
	ValidUntil  *time.Time         `json:"validUntil,omitempty"`
	Notes       string             `json:"notes,omitempty"`
}

type UpdateQuoteRequest struct {
	ClientID    *string             `json:"clientId,omitempty"`
	Description *string             `json:"description,omitempty"`
	Items       *[]QuoteItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	Discount    *float64            `json:"discount,omitempty"`
	Status      *Status             `json:"status,omitempty"`
	ValidUntil  *time.Time          `json:"validUntil,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}

type ListQuotesRequest struct {
	Status   Status `json:"status,omitempty"`
	ClientID string `json:"clientId,omitempty"`
	Search   string `json:"search,omitempty"`
	Limit    int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset   int    `json:"offset" validate:"gte=0"`
}
