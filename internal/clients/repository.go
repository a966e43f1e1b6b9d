package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/printdesk/printdesk/internal/platform/kvstore"
)

var ErrNotFound = errors.New("client not found")

// Repository persists the client collection through the key-value store.
// The collection is read whole and written whole on every mutation.
type Repository interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id string) (*Client, error)
	Insert(ctx context.Context, client Client) error
	Replace(ctx context.Context, client Client) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store kvstore.Store
}

// NewRepository builds a Repository backed by the given store.
func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context) ([]Client, error) {
	var collection []Client
	if err := r.store.Get(ctx, kvstore.KeyClients, &collection); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return []Client{}, nil
		}
		return nil, fmt.Errorf("load clients: %w", err)
	}
	return collection, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Client, error) {
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

func (r *repository) Insert(ctx context.Context, client Client) error {
	collection, err := r.List(ctx)
	if err != nil {
		return err
	}
	collection = append(collection, client)
	return r.save(ctx, collection)
}

func (r *repository) Replace(ctx context.Context, client Client) error {
	collection, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range collection {
		if collection[i].ID == client.ID {
			collection[i] = client
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

func (r *repository) save(ctx context.Context, collection []Client) error {
	if err := r.store.Set(ctx, kvstore.KeyClients, collection); err != nil {
		return fmt.Errorf("save clients: %w", err)
	}
	return nil
}
