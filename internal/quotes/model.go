package quotes

import "time"

// Status of a quote. Transitions are unconstrained beyond the three-value
// enumeration; a quote starts as pending.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// QuoteItem is a priced line owned by exactly one quote. ProductName and
// Price are snapshots taken when the product was selected; they are the
// source of truth for historical display and may diverge from the live
// product. Total is always Quantity * Price, recomputed on every write.
type QuoteItem struct {
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// Quote is a priced offer for a client. Total is derived from the items
// and discount and persisted alongside them; it is never edited directly.
type Quote struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"clientId"`
	ClientName  string      `json:"clientName"`
	Description string      `json:"description,omitempty"`
	Items       []QuoteItem `json:"items"`
	Discount    float64     `json:"discount"`
	Total       float64     `json:"total"`
	Status      Status      `json:"status"`
	ValidUntil  *time.Time  `json:"validUntil,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
