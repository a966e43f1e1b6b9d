package quotes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printdesk/printdesk/internal/clients"
	"github.com/printdesk/printdesk/internal/platform/kvstore"
	"github.com/printdesk/printdesk/internal/products"
)

func newTestServer(t *testing.T) (*httptest.Server, clients.Client, products.Product) {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	clientRepo := clients.NewRepository(store)
	client := clients.Client{ID: "c1", Name: "Padaria Central"}
	require.NoError(t, clientRepo.Insert(ctx, client))

	productRepo := products.NewRepository(store)
	product := products.Product{ID: "p1", Name: "Flyer A5", Category: products.CategoryDigitalPrint, Price: 0.35}
	require.NoError(t, productRepo.Insert(ctx, product))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(NewRepository(store), clientRepo, productRepo, nil))

	r := chi.NewRouter()
	r.Route("/quotes", handler.MountRoutes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, client, product
}

func doJSON(t *testing.T, method, url string, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, payload
}

func TestQuoteLifecycleOverHTTP(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/quotes", `{
		"clientId": "c1",
		"items": [{"productId": "p1", "quantity": 1000}],
		"discount": 10
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created Quote
	require.NoError(t, json.Unmarshal(payload, &created))
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, "Padaria Central", created.ClientName)
	assert.InDelta(t, 315.0, created.Total, 1e-9)

	resp, payload = doJSON(t, http.MethodGet, srv.URL+"/quotes/"+created.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched Quote
	require.NoError(t, json.Unmarshal(payload, &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	resp, payload = doJSON(t, http.MethodPut, srv.URL+"/quotes/"+created.ID, `{"status": "approved"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated Quote
	require.NoError(t, json.Unmarshal(payload, &updated))
	assert.Equal(t, StatusApproved, updated.Status)

	resp, payload = doJSON(t, http.MethodGet, srv.URL+"/quotes?status=approved", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed struct {
		Quotes []Quote `json:"quotes"`
		Total  int     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(payload, &listed))
	assert.Equal(t, 1, listed.Total)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/quotes/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/quotes/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuoteItemRoutes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/quotes", `{
		"clientId": "c1",
		"items": [{"productId": "p1", "quantity": 10}]
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Quote
	require.NoError(t, json.Unmarshal(payload, &created))

	resp, payload = doJSON(t, http.MethodPost, srv.URL+"/quotes/"+created.ID+"/items", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var withItem Quote
	require.NoError(t, json.Unmarshal(payload, &withItem))
	require.Len(t, withItem.Items, 2)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/quotes/"+created.ID+"/items/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The final remaining line cannot be removed.
	resp, payload = doJSON(t, http.MethodDelete, srv.URL+"/quotes/"+created.ID+"/items/0", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.True(t, strings.Contains(string(payload), "final item"), "payload = %s", payload)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/quotes/"+created.ID+"/items/9", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateQuoteBadRequests(t *testing.T) {
	srv, _, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"no items", `{"clientId": "c1", "items": []}`, http.StatusBadRequest},
		{"unknown client", `{"clientId": "ghost", "items": [{"quantity": 1}]}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, http.MethodPost, srv.URL+"/quotes", tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
