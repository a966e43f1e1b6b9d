package quotes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/printdesk/printdesk/internal/clients"
	"github.com/printdesk/printdesk/internal/products"
	"github.com/printdesk/printdesk/internal/shared"
)

// Service is the single write path for quotes. Every mutation that touches
// items or discount runs through recompute before persisting, so the stored
// line totals and grand total can never drift from their factors.
type Service struct {
	repo        Repository
	clientRepo  clients.Repository
	productRepo products.Repository
	validate    *validator.Validate
	invalidate  shared.Invalidator
	now         func() time.Time
}

// NewService wires the quote repository with its collaborators.
func NewService(repo Repository, clientRepo clients.Repository, productRepo products.Repository, invalidate shared.Invalidator) *Service {
	return &Service{
		repo:        repo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		validate:    validator.New(),
		invalidate:  invalidate,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Create(ctx context.Context, req CreateQuoteRequest) (*Quote, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}

	client, err := s.clientRepo.Get(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("verify client: %w", err)
	}

	now := s.now()
	quote := Quote{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		Description: req.Description,
		Items:       s.buildItems(ctx, req.Items),
		Discount:    ClampDiscount(req.Discount),
		Status:      StatusPending,
		ValidUntil:  req.ValidUntil,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	quote.Total = QuoteTotal(quote.Items, quote.Discount)

	if err := s.repo.Insert(ctx, quote); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	s.bump(ctx)
	return &quote, nil
}

// Update applies a partial edit and re-derives every total before the quote
// is written back.
func (s *Service) Update(ctx context.Context, id string, req UpdateQuoteRequest) (*Quote, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", shared.ErrValidation, *req.Status)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	quote := *existing
	if req.ClientID != nil && *req.ClientID != quote.ClientID {
		client, err := s.clientRepo.Get(ctx, *req.ClientID)
		if err != nil {
			return nil, fmt.Errorf("verify client: %w", err)
		}
		quote.ClientID = client.ID
		quote.ClientName = client.Name
	}
	if req.Description != nil {
		quote.Description = *req.Description
	}
	if req.Items != nil {
		quote.Items = s.buildItems(ctx, *req.Items)
	}
	if req.Discount != nil {
		quote.Discount = ClampDiscount(*req.Discount)
	}
	if req.Status != nil {
		quote.Status = *req.Status
	}
	if req.ValidUntil != nil {
		quote.ValidUntil = req.ValidUntil
	}
	if req.Notes != nil {
		quote.Notes = *req.Notes
	}

	return s.persist(ctx, quote)
}

// AppendItem adds a default blank line to the quote.
func (s *Service) AppendItem(ctx context.Context, id string) (*Quote, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	quote := *existing
	quote.Items = AddItem(quote.Items)
	return s.persist(ctx, quote)
}

// RemoveItem drops the line at index. The final remaining line cannot be
// removed.
func (s *Service) RemoveItem(ctx context.Context, id string, index int) (*Quote, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	quote := *existing
	items, err := RemoveItem(quote.Items, index)
	if err != nil {
		return nil, err
	}
	quote.Items = items
	return s.persist(ctx, quote)
}

func (s *Service) Get(ctx context.Context, id string) (*Quote, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListQuotesRequest) ([]Quote, int, error) {
	collection, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	if req.Status != "" || req.ClientID != "" || req.Search != "" {
		needle := strings.ToLower(req.Search)
		filtered := collection[:0:0]
		for _, q := range collection {
			if req.Status != "" && q.Status != req.Status {
				continue
			}
			if req.ClientID != "" && q.ClientID != req.ClientID {
				continue
			}
			if needle != "" &&
				!strings.Contains(strings.ToLower(q.ClientName), needle) &&
				!strings.Contains(strings.ToLower(q.Description), needle) {
				continue
			}
			filtered = append(filtered, q)
		}
		collection = filtered
	}

	total := len(collection)
	start, end := shared.PageBounds(req.Limit, req.Offset, total)
	return collection[start:end], total, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	s.bump(ctx)
	return nil
}

// buildItems turns request lines into snapshot lines. A line that names a
// known product but carries no name of its own is pre-filled from the
// product's current values; a line pointing at a deleted product keeps
// whatever snapshot the caller sent.
func (s *Service) buildItems(ctx context.Context, reqs []QuoteItemRequest) []QuoteItem {
	items := make([]QuoteItem, 0, len(reqs))
	for _, lineReq := range reqs {
		item := QuoteItem{
			ProductID:   lineReq.ProductID,
			ProductName: lineReq.ProductName,
			Quantity:    lineReq.Quantity,
			Price:       lineReq.Price,
		}
		if item.ProductID != "" && item.ProductName == "" {
			if product, err := s.productRepo.Get(ctx, item.ProductID); err == nil {
				item = ApplyProductSelection(item, product)
			}
		}
		items = append(items, item)
	}
	return NormalizeItems(items)
}

func (s *Service) persist(ctx context.Context, quote Quote) (*Quote, error) {
	quote.Items = NormalizeItems(quote.Items)
	quote.Total = QuoteTotal(quote.Items, quote.Discount)
	quote.UpdatedAt = s.now()

	if err := s.repo.Replace(ctx, quote); err != nil {
		return nil, fmt.Errorf("update quote: %w", err)
	}
	s.bump(ctx)
	return &quote, nil
}

func (s *Service) bump(ctx context.Context) {
	if s.invalidate != nil {
		_ = s.invalidate.Bump(ctx)
	}
}
