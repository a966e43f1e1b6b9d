package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printdesk/printdesk/internal/platform/kvstore"
	"github.com/printdesk/printdesk/internal/shared"
)

func TestCreateClient(t *testing.T) {
	svc := NewService(NewRepository(kvstore.NewMemoryStore()), nil)
	ctx := context.Background()

	client, err := svc.Create(ctx, CreateClientRequest{
		Name:    "Padaria Central",
		Email:   "contato@padaria.example",
		Company: "Padaria Central ME",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.False(t, client.CreatedAt.IsZero())
	assert.Equal(t, client.CreatedAt, client.UpdatedAt)

	fetched, err := svc.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.Name, fetched.Name)
}

func TestCreateClientValidates(t *testing.T) {
	svc := NewService(NewRepository(kvstore.NewMemoryStore()), nil)

	tests := []struct {
		name string
		req  CreateClientRequest
	}{
		{"missing name", CreateClientRequest{Email: "a@b.example"}},
		{"missing email", CreateClientRequest{Name: "Alpha"}},
		{"malformed email", CreateClientRequest{Name: "Alpha", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, shared.ErrValidation)
		})
	}
}

func TestUpdateClientPartial(t *testing.T) {
	svc := NewService(NewRepository(kvstore.NewMemoryStore()), nil)
	ctx := context.Background()

	client, err := svc.Create(ctx, CreateClientRequest{Name: "Alpha", Email: "alpha@example.com", Phone: "11 99999-0000"})
	require.NoError(t, err)

	name := "Alpha Impressos"
	updated, err := svc.Update(ctx, client.ID, UpdateClientRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alpha Impressos", updated.Name)
	// Untouched fields survive a partial update.
	assert.Equal(t, "alpha@example.com", updated.Email)
	assert.Equal(t, "11 99999-0000", updated.Phone)

	_, err = svc.Update(ctx, "missing", UpdateClientRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListClientsSearchAndPaging(t *testing.T) {
	svc := NewService(NewRepository(kvstore.NewMemoryStore()), nil)
	ctx := context.Background()

	seed := []CreateClientRequest{
		{Name: "Padaria Central", Email: "p@example.com"},
		{Name: "Mercado Azul", Email: "m@example.com", Company: "Azul Ltda"},
		{Name: "Estudio Verde", Email: "contato@verde.example"},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	listed, total, err := svc.List(ctx, ListClientsRequest{Search: "azul"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, "Mercado Azul", listed[0].Name)

	listed, total, err = svc.List(ctx, ListClientsRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, listed, 2)

	listed, total, err = svc.List(ctx, ListClientsRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, listed, 1)
}

func TestDeleteClient(t *testing.T) {
	svc := NewService(NewRepository(kvstore.NewMemoryStore()), nil)
	ctx := context.Background()

	client, err := svc.Create(ctx, CreateClientRequest{Name: "Alpha", Email: "alpha@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, client.ID))
	_, err = svc.Get(ctx, client.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, client.ID), ErrNotFound)
}
