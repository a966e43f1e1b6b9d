package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/printdesk/printdesk/internal/platform/kvstore"
)

var ErrNotFound = errors.New("product not found")

// Repository persists the product collection through the key-value store.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Insert(ctx context.Context, product Product) error
	Replace(ctx context.Context, product Product) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store kvstore.Store
}

// NewRepository builds a Repository backed by the given store.
func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	var collection []Product
	if err := r.store.Get(ctx, kvstore.KeyProducts, &collection); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return []Product{}, nil
		}
		return nil, fmt.Errorf("load products: %w", err)
	}
	return collection, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Product, error) {
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

func (r *repository) Insert(ctx context.Context, product Product) error {
	collection, err := r.List(ctx)
	if err != nil {
		return err
	}
	collection = append(collection, product)
	return r.save(ctx, collection)
}

func (r *repository) Replace(ctx context.Context, product Product) error {
	collection, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range collection {
		if collection[i].ID == product.ID {
			collection[i] = product
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

func (r *repository) save(ctx context.Context, collection []Product) error {
	if err := r.store.Set(ctx, kvstore.KeyProducts, collection); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}
