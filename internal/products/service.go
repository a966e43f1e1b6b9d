package products

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/printdesk/printdesk/internal/shared"
)

// Service owns product lifecycle rules. Prices are stored as numbers from
// creation onward; lenient parsing of user input happens at the pricing
// layer, never here.
type Service struct {
	repo       Repository
	validate   *validator.Validate
	invalidate shared.Invalidator
	now        func() time.Time
}

// NewService wires the repository with validation and cache invalidation.
func NewService(repo Repository, invalidate shared.Invalidator) *Service {
	return &Service{
		repo:       repo,
		validate:   validator.New(),
		invalidate: invalidate,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", shared.ErrValidation, req.Category)
	}

	now := s.now()
	product := Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        req.Unit,
		Description: req.Description,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.bump(ctx)
	return &product, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}
	if req.Category != nil && !req.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", shared.ErrValidation, *req.Category)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	product := *existing
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Notes != nil {
		product.Notes = *req.Notes
	}
	product.UpdatedAt = s.now()

	if err := s.repo.Replace(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.bump(ctx)
	return &product, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListProductsRequest) ([]Product, int, error) {
	collection, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	if req.Category != "" || req.Search != "" {
		needle := strings.ToLower(req.Search)
		filtered := collection[:0:0]
		for _, p := range collection {
			if req.Category != "" && p.Category != req.Category {
				continue
			}
			if needle != "" &&
				!strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
			filtered = append(filtered, p)
		}
		collection = filtered
	}

	total := len(collection)
	start, end := shared.PageBounds(req.Limit, req.Offset, total)
	return collection[start:end], total, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.bump(ctx)
	return nil
}

func (s *Service) bump(ctx context.Context) {
	if s.invalidate != nil {
		_ = s.invalidate.Bump(ctx)
	}
}
