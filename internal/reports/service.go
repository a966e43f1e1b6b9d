package reports

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/printdesk/printdesk/internal/clients"
	"github.com/printdesk/printdesk/internal/products"
	"github.com/printdesk/printdesk/internal/quotes"
)

// Report is the full payload for one period: the resolved window, the
// KPI card and both rankings.
type Report struct {
	Period      Period        `json:"period"`
	Window      Window        `json:"window"`
	KPIs        KPISummary    `json:"kpis"`
	TopClients  []ClientRank  `json:"topClients"`
	TopProducts []ProductRank `json:"topProducts"`
}

// Service recomputes reports on demand from the stored collections,
// fronted by the versioned cache. The aggregation itself is pure; given
// the same collections and the same now, the output is identical.
type Service struct {
	quoteRepo   quotes.Repository
	clientRepo  clients.Repository
	productRepo products.Repository
	cache       *Cache
	now         func() time.Time
}

// NewService wires the collection repositories with the cache helper.
func NewService(quoteRepo quotes.Repository, clientRepo clients.Repository, productRepo products.Repository, cache *Cache) *Service {
	return &Service{
		quoteRepo:   quoteRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		cache:       cache,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Build computes the report for one period using cache-aware lookups.
func (s *Service) Build(ctx context.Context, period Period) (Report, error) {
	now := s.now()
	loader := func(ctx context.Context) (interface{}, error) {
		return s.build(ctx, period, now)
	}

	if s.cache == nil {
		value, err := loader(ctx)
		if err != nil {
			return Report{}, err
		}
		return value.(Report), nil
	}

	key, err := s.cache.BuildKey(ctx, keyReport(period, now)...)
	if err != nil {
		return Report{}, err
	}
	var report Report
	if err := s.cache.FetchJSON(ctx, key, &report, loader); err != nil {
		return Report{}, err
	}
	return report, nil
}

// Dashboard resolves the all-time summary using cache-aware lookups.
func (s *Service) Dashboard(ctx context.Context) (DashboardSummary, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		quoteList, clientList, _, err := s.loadCollections(ctx, false)
		if err != nil {
			return DashboardSummary{}, err
		}
		return ComputeDashboard(quoteList, clientList), nil
	}

	if s.cache == nil {
		value, err := loader(ctx)
		if err != nil {
			return DashboardSummary{}, err
		}
		return value.(DashboardSummary), nil
	}

	key, err := s.cache.BuildKey(ctx, keyDashboard()...)
	if err != nil {
		return DashboardSummary{}, err
	}
	var summary DashboardSummary
	if err := s.cache.FetchJSON(ctx, key, &summary, loader); err != nil {
		return DashboardSummary{}, err
	}
	return summary, nil
}

func (s *Service) build(ctx context.Context, period Period, now time.Time) (Report, error) {
	quoteList, clientList, productList, err := s.loadCollections(ctx, true)
	if err != nil {
		return Report{}, err
	}

	window := ResolveWindow(period, now)
	filtered := FilterByWindow(quoteList, window)

	return Report{
		Period:      period,
		Window:      window,
		KPIs:        ComputeKPIs(filtered),
		TopClients:  TopClients(clientList, filtered, DefaultTopN),
		TopProducts: TopProducts(productList, filtered, DefaultTopN),
	}, nil
}

// loadCollections reads the source collections concurrently; products are
// skipped when the caller does not rank them.
func (s *Service) loadCollections(ctx context.Context, withProducts bool) ([]quotes.Quote, []clients.Client, []products.Product, error) {
	var (
		quoteList   []quotes.Quote
		clientList  []clients.Client
		productList []products.Product
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quoteList, err = s.quoteRepo.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		clientList, err = s.clientRepo.List(ctx)
		return err
	})
	if withProducts {
		g.Go(func() error {
			var err error
			productList, err = s.productRepo.List(ctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return quoteList, clientList, productList, nil
}
