package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/printdesk/printdesk/internal/platform/kvstore"
)

var ErrNotFound = errors.New("quote not found")

// Repository persists the quote collection through the key-value store.
type Repository interface {
	List(ctx context.Context) ([]Quote, error)
	Get(ctx context.Context, id string) (*Quote, error)
	Insert(ctx context.Context, quote Quote) error
	Replace(ctx context.Context, quote Quote) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store kvstore.Store
}

// NewRepository builds a Repository backed by the given store.
func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context) ([]Quote, error) {
	var collection []Quote
	if err := r.store.Get(ctx, kvstore.KeyQuotes, &collection); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return []Quote{}, nil
		}
		return nil, fmt.Errorf("load quotes: %w", err)
	}
	return collection, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Quote, error) {
	collection, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range collection {
		if collection[i].ID == id {
			return &collection[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repository) Insert(ctx context.Context, quote Quote) error {
	collection, err := r.List(ctx)
	if err != nil {
		return err
	}
	collection = append(collection, quote)
	return r.save(ctx, collection)
}

func (r *repository) Replace(ctx context.Context, quote Quote) error {
	collection, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range collection {
		if collection[i].ID == quote.ID {
			collection[i] = quote
			return r.save(ctx, collection)
		}
	}
	return ErrNotFound
}

func (r *repository) Delete(ctx context.Context, id string) error {
	collection, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range collection {
		if collection[i].ID == id {
			collection = append(collection[:i], collection[i+1:]...)
			return r.save(ctx, collection)
		}
	}
	return ErrNotFound
}

func (r *repository) save(ctx context.Context, collection []Quote) error {
	if err := r.store.Set(ctx, kvstore.KeyQuotes, collection); err != nil {
		return fmt.Errorf("save quotes: %w", err)
	}
	return nil
}
