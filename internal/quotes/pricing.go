package quotes

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/printdesk/printdesk/internal/products"
)

// ErrLastItem indicates an attempt to remove the only remaining line of a
// quote. A valid quote always carries at least one item.
var ErrLastItem = errors.New("cannot remove final item")

// ErrItemIndex indicates an out-of-range line index.
var ErrItemIndex = errors.New("item index out of range")

// ItemTotal returns the line total for a quantity at a unit price.
func ItemTotal(quantity int, price float64) float64 {
	return float64(quantity) * price
}

// ParseQuantity leniently parses a quantity entered as text. Unparseable or
// non-positive input degrades to 1; the second return reports whether the
// default was substituted so callers can surface a warning.
func ParseQuantity(raw string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return 1, true
	}
	return v, false
}

// ParsePrice leniently parses a unit price entered as text. Unparseable,
// negative or non-finite input degrades to 0. ParseFloat accepts "NaN"
// and "Inf" spellings, so finiteness has to be checked explicitly.
func ParsePrice(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true
	}
	return v, false
}

// ParseDiscount leniently parses a discount percentage entered as text.
// Unparseable input degrades to 0; out-of-range values are clamped into
// [0, 100]. The second return reports whether the value was adjusted.
func ParseDiscount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0, true
	}
	clamped := ClampDiscount(v)
	return clamped, clamped != v
}

// ClampDiscount clamps a discount percentage into [0, 100]. Non-finite
// values collapse to 0; NaN in particular compares false against both
// bounds and would otherwise pass through.
func ClampDiscount(d float64) float64 {
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	if d > 100 {
		return 100
	}
	return d
}

// QuoteTotal computes the grand total: the item subtotal reduced by the
// discount percentage. The discount is clamped at this boundary so an
// out-of-range value can never pass through unclamped.
func QuoteTotal(items []QuoteItem, discount float64) float64 {
	discount = ClampDiscount(discount)
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}
	return subtotal - subtotal*discount/100
}

// NewItem returns the default blank line appended by AddItem.
func NewItem() QuoteItem {
	return QuoteItem{ProductID: "", ProductName: "", Quantity: 1, Price: 0, Total: 0}
}

// AddItem appends a default blank line.
func AddItem(items []QuoteItem) []QuoteItem {
	return append(items, NewItem())
}

// RemoveItem removes the line at index. Removing the final remaining line
// is rejected with ErrLastItem.
func RemoveItem(items []QuoteItem, index int) ([]QuoteItem, error) {
	if index < 0 || index >= len(items) {
		return items, ErrItemIndex
	}
	if len(items) == 1 {
		return items, ErrLastItem
	}
	out := make([]QuoteItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out, nil
}

// ApplyProductSelection overwrites the line's name and price with the
// product's current values and recomputes the total. A nil product leaves
// the line untouched, so stale snapshots survive product deletion.
func ApplyProductSelection(item QuoteItem, product *products.Product) QuoteItem {
	if product == nil {
		return item
	}
	item.ProductID = product.ID
	item.ProductName = product.Name
	item.Price = product.Price
	item.Total = ItemTotal(item.Quantity, item.Price)
	return item
}

// NormalizeItems enforces the line invariants on a whole slice: quantity
// at least 1, price non-negative, total equal to quantity times price.
func NormalizeItems(items []QuoteItem) []QuoteItem {
	out := make([]QuoteItem, len(items))
	for i, item := range items {
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		if item.Price < 0 {
			item.Price = 0
		}
		item.Total = ItemTotal(item.Quantity, item.Price)
		out[i] = item
	}
	return out
}
