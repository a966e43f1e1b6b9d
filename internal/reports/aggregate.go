package reports

import (
	"sort"

	"github.com/printdesk/printdesk/internal/clients"
	"github.com/printdesk/printdesk/internal/products"
	"github.com/printdesk/printdesk/internal/quotes"
)

// DefaultTopN is the ranking depth used when the caller does not ask for
// a specific one.
const DefaultTopN = 5

// KPISummary contains the headline indicators for a report window.
type KPISummary struct {
	TotalQuotes       int     `json:"totalQuotes"`
	ApprovedQuotes    int     `json:"approvedQuotes"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageQuoteValue float64 `json:"averageQuoteValue"`
	ConversionRate    float64 `json:"conversionRate"`
}

// ComputeKPIs aggregates the windowed quotes. Revenue counts approved
// quotes only; the average spans every status. Both ratios short-circuit
// to 0 on an empty window.
func ComputeKPIs(filtered []quotes.Quote) KPISummary {
	summary := KPISummary{TotalQuotes: len(filtered)}

	var totalValue float64
	for _, q := range filtered {
		totalValue += q.Total
		if q.Status == quotes.StatusApproved {
			summary.ApprovedQuotes++
			summary.TotalRevenue += q.Total
		}
	}

	if summary.TotalQuotes > 0 {
		summary.AverageQuoteValue = totalValue / float64(summary.TotalQuotes)
		summary.ConversionRate = float64(summary.ApprovedQuotes) / float64(summary.TotalQuotes) * 100
	}
	return summary
}

// ClientRank is one row of the top-clients breakdown.
type ClientRank struct {
	ClientID   string  `json:"clientId"`
	Name       string  `json:"name"`
	Company    string  `json:"company,omitempty"`
	QuoteCount int     `json:"quoteCount"`
	TotalValue float64 `json:"totalValue"`
}

// TopClients ranks clients by the summed value of their approved quotes in
// the window. The quote count spans every status; clients with no quotes
// in the window are dropped. Ties keep input order.
func TopClients(clientList []clients.Client, filtered []quotes.Quote, n int) []ClientRank {
	if n <= 0 {
		n = DefaultTopN
	}

	ranks := make([]ClientRank, 0, len(clientList))
	for _, client := range clientList {
		rank := ClientRank{ClientID: client.ID, Name: client.Name, Company: client.Company}
		for _, q := range filtered {
			if q.ClientID != client.ID {
				continue
			}
			rank.QuoteCount++
			if q.Status == quotes.StatusApproved {
				rank.TotalValue += q.Total
			}
		}
		if rank.QuoteCount == 0 {
			continue
		}
		ranks = append(ranks, rank)
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].TotalValue > ranks[j].TotalValue
	})
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// ProductRank is one row of the top-products breakdown.
type ProductRank struct {
	ProductID     string            `json:"productId"`
	Name          string            `json:"name"`
	Category      products.Category `json:"category"`
	TotalQuantity int               `json:"totalQuantity"`
	TotalValue    float64           `json:"totalValue"`
}

// TopProducts ranks products by the accumulated value of matching quote
// lines across the window, regardless of quote status. Products that never
// appear on a line are dropped. Ties keep input order.
func TopProducts(productList []products.Product, filtered []quotes.Quote, n int) []ProductRank {
	if n <= 0 {
		n = DefaultTopN
	}

	ranks := make([]ProductRank, 0, len(productList))
	for _, product := range productList {
		rank := ProductRank{ProductID: product.ID, Name: product.Name, Category: product.Category}
		for _, q := range filtered {
			for _, item := range q.Items {
				if item.ProductID != product.ID {
					continue
				}
				rank.TotalQuantity += item.Quantity
				rank.TotalValue += item.Total
			}
		}
		if rank.TotalQuantity == 0 {
			continue
		}
		ranks = append(ranks, rank)
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].TotalValue > ranks[j].TotalValue
	})
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// DashboardSummary is the all-time snapshot shown on the landing screen.
type DashboardSummary struct {
	TotalQuotes   int            `json:"totalQuotes"`
	TotalClients  int            `json:"totalClients"`
	TotalValue    float64        `json:"totalValue"`
	PendingQuotes int            `json:"pendingQuotes"`
	RecentQuotes  []quotes.Quote `json:"recentQuotes"`
}

// ComputeDashboard aggregates the full collections: quote and client
// counts, the summed value of every quote, the pending backlog and the
// five most recently stored quotes, newest first.
func ComputeDashboard(quoteList []quotes.Quote, clientList []clients.Client) DashboardSummary {
	summary := DashboardSummary{
		TotalQuotes:  len(quoteList),
		TotalClients: len(clientList),
	}
	for _, q := range quoteList {
		summary.TotalValue += q.Total
		if q.Status == quotes.StatusPending {
			summary.PendingQuotes++
		}
	}

	recent := make([]quotes.Quote, 0, DefaultTopN)
	for i := len(quoteList) - 1; i >= 0 && len(recent) < DefaultTopN; i-- {
		recent = append(recent, quoteList[i])
	}
	summary.RecentQuotes = recent
	return summary
}
