package clients

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/printdesk/printdesk/internal/shared"
)

// Service owns client lifecycle rules: identity assignment, timestamp
// upkeep and validation. Deleting a client does not cascade to quotes;
// their snapshots stay intact.
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

func (s *Service) Create(ctx context.Context, req CreateClientRequest) (*Client, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}

	now := s.now()
	client := Client{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	s.bump(ctx)
	return &client, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateClientRequest) (*Client, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	client := *existing
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Company != nil {
		client.Company = *req.Company
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.State != nil {
		client.State = *req.State
	}
	if req.ZipCode != nil {
		client.ZipCode = *req.ZipCode
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	client.UpdatedAt = s.now()

	if err := s.repo.Replace(ctx, client); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	s.bump(ctx)
	return &client, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Client, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListClientsRequest) ([]Client, int, error) {
	collection, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	if req.Search != "" {
		needle := strings.ToLower(req.Search)
		filtered := collection[:0:0]
		for _, c := range collection {
			if strings.Contains(strings.ToLower(c.Name), needle) ||
				strings.Contains(strings.ToLower(c.Email), needle) ||
				strings.Contains(strings.ToLower(c.Company), needle) {
				filtered = append(filtered, c)
			}
		}
		collection = filtered
	}

	total := len(collection)
	start, end := shared.PageBounds(req.Limit, req.Offset, total)
	return collection[start:end], total, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	s.bump(ctx)
	return nil
}

func (s *Service) bump(ctx context.Context) {
	if s.invalidate != nil {
		_ = s.invalidate.Bump(ctx)
	}
}
