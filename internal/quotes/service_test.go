package quotes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printdesk/printdesk/internal/clients"
	"github.com/printdesk/printdesk/internal/platform/kvstore"
	"github.com/printdesk/printdesk/internal/products"
)

type countingInvalidator struct {
	bumps int
}

func (c *countingInvalidator) Bump(context.Context) error {
	c.bumps++
	return nil
}

func newTestService(t *testing.T) (*Service, *countingInvalidator, clients.Client, products.Product) {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	clientRepo := clients.NewRepository(store)
	client := clients.Client{ID: "c1", Name: "Padaria Central", Email: "contact@padaria.example"}
	require.NoError(t, clientRepo.Insert(ctx, client))

	productRepo := products.NewRepository(store)
	product := products.Product{ID: "p1", Name: "Flyer A5", Category: products.CategoryDigitalPrint, Price: 0.35}
	require.NoError(t, productRepo.Insert(ctx, product))

	invalidator := &countingInvalidator{}
	svc := NewService(NewRepository(store), clientRepo, productRepo, invalidator)
	return svc, invalidator, client, product
}

func TestCreateQuoteComputesTotals(t *testing.T) {
	svc, invalidator, client, product := newTestService(t)
	ctx := context.Background()

	quote, err := svc.Create(ctx, CreateQuoteRequest{
		ClientID: client.ID,
		Items: []QuoteItemRequest{
			{ProductID: product.ID, Quantity: 1000},
			{ProductName: "Setup fee", Quantity: 1, Price: 50},
		},
		Discount: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, quote.Status)
	assert.Equal(t, client.Name, quote.ClientName)
	require.Len(t, quote.Items, 2)

	// Selecting a product snapshots its current name and price.
	assert.Equal(t, product.Name, quote.Items[0].ProductName)
	assert.InDelta(t, 350.0, quote.Items[0].Total, 1e-9)
	assert.InDelta(t, 50.0, quote.Items[1].Total, 1e-9)
	assert.InDelta(t, 360.0, quote.Total, 1e-9)

	assert.Equal(t, 1, invalidator.bumps)
}

func TestCreateQuoteRequiresKnownClient(t *testing.T) {
	svc, _, _, product := newTestService(t)

	_, err := svc.Create(context.Background(), CreateQuoteRequest{
		ClientID: "missing",
		Items:    []QuoteItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, clients.ErrNotFound)
}

func TestCreateQuoteRequiresItems(t *testing.T) {
	svc, _, client, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateQuoteRequest{ClientID: client.ID})
	require.Error(t, err)
}

func TestUpdateQuoteRecomputesTotal(t *testing.T) {
	svc, invalidator, client, product := newTestService(t)
	ctx := context.Background()

	quote, err := svc.Create(ctx, CreateQuoteRequest{
		ClientID: client.ID,
		Items:    []QuoteItemRequest{{ProductID: product.ID, Quantity: 100}},
	})
	require.NoError(t, err)
	require.InDelta(t, 35.0, quote.Total, 1e-9)

	discount := 50.0
	updated, err := svc.Update(ctx, quote.ID, UpdateQuoteRequest{Discount: &discount})
	require.NoError(t, err)
	assert.InDelta(t, 17.5, updated.Total, 1e-9)

	// Discounts outside [0, 100] are clamped at the boundary.
	tooBig := 400.0
	updated, err = svc.Update(ctx, quote.ID, UpdateQuoteRequest{Discount: &tooBig})
	require.NoError(t, err)
	assert.Zero(t, updated.Total)
	assert.Equal(t, 100.0, updated.Discount)

	assert.Equal(t, 3, invalidator.bumps)
}

func TestUpdateQuoteStatusUnconstrained(t *testing.T) {
	svc, _, client, product := newTestService(t)
	ctx := context.Background()

	quote, err := svc.Create(ctx, CreateQuoteRequest{
		ClientID: client.ID,
		Items:    []QuoteItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, status := range []Status{StatusApproved, StatusRejected, StatusPending, StatusApproved} {
		s := status
		updated, err := svc.Update(ctx, quote.ID, UpdateQuoteRequest{Status: &s})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	bogus := Status("archived")
	_, err = svc.Update(ctx, quote.ID, UpdateQuoteRequest{Status: &bogus})
	require.Error(t, err)
}

func TestAppendAndRemoveItem(t *testing.T) {
	svc, _, client, product := newTestService(t)
	ctx := context.Background()

	quote, err := svc.Create(ctx, CreateQuoteRequest{
		ClientID: client.ID,
		Items:    []QuoteItemRequest{{ProductID: product.ID, Quantity: 10}},
	})
	require.NoError(t, err)

	quote, err = svc.AppendItem(ctx, quote.ID)
	require.NoError(t, err)
	require.Len(t, quote.Items, 2)
	assert.Equal(t, NewItem(), quote.Items[1])

	quote, err = svc.RemoveItem(ctx, quote.ID, 1)
	require.NoError(t, err)
	require.Len(t, quote.Items, 1)

	_, err = svc.RemoveItem(ctx, quote.ID, 0)
	assert.True(t, errors.Is(err, ErrLastItem))
}

func TestOrphanedProductKeepsSnapshot(t *testing.T) {
	svc, _, client, _ := newTestService(t)
	ctx := context.Background()

	// Line references a product that no longer exists; the caller-provided
	// snapshot survives untouched.
	quote, err := svc.Create(ctx, CreateQuoteRequest{
		ClientID: client.ID,
		Items: []QuoteItemRequest{
			{ProductID: "deleted", ProductName: "Old catalog item", Quantity: 2, Price: 30},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Old catalog item", quote.Items[0].ProductName)
	assert.InDelta(t, 60.0, quote.Items[0].Total, 1e-9)
}

func TestListQuotesFilters(t *testing.T) {
	svc, _, client, product := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateQuoteRequest{
		ClientID: client.ID,
		Items:    []QuoteItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateQuoteRequest{
		ClientID:    client.ID,
		Description: "banner reprint",
		Items:       []QuoteItemRequest{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	approved := StatusApproved
	_, err = svc.Update(ctx, first.ID, UpdateQuoteRequest{Status: &approved})
	require.NoError(t, err)

	listed, total, err := svc.List(ctx, ListQuotesRequest{Status: StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, first.ID, listed[0].ID)

	listed, total, err = svc.List(ctx, ListQuotesRequest{Search: "banner"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "banner reprint", listed[0].Description)
}
