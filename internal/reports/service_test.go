package reports

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printdesk/printdesk/internal/clients"
	"github.com/printdesk/printdesk/internal/platform/kvstore"
	"github.com/printdesk/printdesk/internal/products"
	"github.com/printdesk/printdesk/internal/quotes"
)

// countingQuoteRepo tracks how often the quote collection is actually
// loaded, so the tests can tell a cache hit from a recompute.
type countingQuoteRepo struct {
	quotes.Repository
	listCalls int
}

func (r *countingQuoteRepo) List(ctx context.Context) ([]quotes.Quote, error) {
	r.listCalls++
	return r.Repository.List(ctx)
}

func seedCollections(t *testing.T, store kvstore.Store, now time.Time) {
	t.Helper()
	ctx := context.Background()

	clientRepo := clients.NewRepository(store)
	require.NoError(t, clientRepo.Insert(ctx, clients.Client{ID: "c1", Name: "Gráfica Sul"}))

	productRepo := products.NewRepository(store)
	require.NoError(t, productRepo.Insert(ctx, products.Product{
		ID: "p1", Name: "Flyer A5", Category: products.CategoryDigitalPrint, Price: 0.35,
	}))

	quoteRepo := quotes.NewRepository(store)
	require.NoError(t, quoteRepo.Insert(ctx, quotes.Quote{
		ID:         "q1",
		ClientID:   "c1",
		ClientName: "Gráfica Sul",
		Items:      []quotes.QuoteItem{{ProductID: "p1", ProductName: "Flyer A5", Quantity: 100, Price: 0.35, Total: 35}},
		Total:      35,
		Status:     quotes.StatusApproved,
		CreatedAt:  now.AddDate(0, 0, -3),
	}))
	require.NoError(t, quoteRepo.Insert(ctx, quotes.Quote{
		ID:         "q2",
		ClientID:   "c1",
		ClientName: "Gráfica Sul",
		Items:      []quotes.QuoteItem{{ProductName: "Rush surcharge", Quantity: 1, Price: 20, Total: 20}},
		Total:      20,
		Status:     quotes.StatusPending,
		CreatedAt:  now.AddDate(0, 0, -2),
	}))
	// Outside every window shorter than a year.
	require.NoError(t, quoteRepo.Insert(ctx, quotes.Quote{
		ID:        "q3",
		ClientID:  "c1",
		Total:     999,
		Status:    quotes.StatusApproved,
		CreatedAt: now.AddDate(0, -6, 0),
	}))
}

func TestServiceBuild(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	store := kvstore.NewMemoryStore()
	seedCollections(t, store, now)

	svc := NewService(quotes.NewRepository(store), clients.NewRepository(store), products.NewRepository(store), nil)
	svc.now = func() time.Time { return now }

	report, err := svc.Build(context.Background(), PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, PeriodMonth, report.Period)
	assert.Equal(t, now, report.Window.End)
	assert.Equal(t, 2, report.KPIs.TotalQuotes)
	assert.Equal(t, 1, report.KPIs.ApprovedQuotes)
	assert.InDelta(t, 35.0, report.KPIs.TotalRevenue, 1e-9)
	assert.InDelta(t, 27.5, report.KPIs.AverageQuoteValue, 1e-9)
	assert.InDelta(t, 50.0, report.KPIs.ConversionRate, 1e-9)

	require.Len(t, report.TopClients, 1)
	assert.Equal(t, 2, report.TopClients[0].QuoteCount)
	assert.InDelta(t, 35.0, report.TopClients[0].TotalValue, 1e-9)

	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "p1", report.TopProducts[0].ProductID)
	assert.Equal(t, 100, report.TopProducts[0].TotalQuantity)
}

func TestServiceBuildYearIncludesOldQuotes(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	store := kvstore.NewMemoryStore()
	seedCollections(t, store, now)

	svc := NewService(quotes.NewRepository(store), clients.NewRepository(store), products.NewRepository(store), nil)
	svc.now = func() time.Time { return now }

	report, err := svc.Build(context.Background(), PeriodYear)
	require.NoError(t, err)
	assert.Equal(t, 3, report.KPIs.TotalQuotes)
	assert.InDelta(t, 1034.0, report.KPIs.TotalRevenue, 1e-9)
}

func TestServiceBuildCachesUntilBump(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	store := kvstore.NewMemoryStore()
	seedCollections(t, store, now)

	quoteRepo := &countingQuoteRepo{Repository: quotes.NewRepository(store)}
	cache := NewCache(client, time.Minute)
	svc := NewService(quoteRepo, clients.NewRepository(store), products.NewRepository(store), cache)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	first, err := svc.Build(ctx, PeriodMonth)
	require.NoError(t, err)
	require.Equal(t, 1, quoteRepo.listCalls)

	// Second call is served from the cache.
	second, err := svc.Build(ctx, PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, 1, quoteRepo.listCalls)
	assert.Equal(t, first.KPIs, second.KPIs)

	// A version bump forces a recompute on the next read.
	require.NoError(t, cache.Bump(ctx))
	_, err = svc.Build(ctx, PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, 2, quoteRepo.listCalls)
}

func TestServiceDashboard(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	store := kvstore.NewMemoryStore()
	seedCollections(t, store, now)

	quoteRepo := &countingQuoteRepo{Repository: quotes.NewRepository(store)}
	svc := NewService(quoteRepo, clients.NewRepository(store), products.NewRepository(store), NewCache(client, time.Minute))
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	summary, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalQuotes)
	assert.Equal(t, 1, summary.TotalClients)
	assert.InDelta(t, 1054.0, summary.TotalValue, 1e-9)
	assert.Equal(t, 1, summary.PendingQuotes)
	require.Len(t, summary.RecentQuotes, 3)
	assert.Equal(t, "q3", summary.RecentQuotes[0].ID)

	_, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, quoteRepo.listCalls)
}
