//go:build unit

package adapter

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"chinook-browser/internal/core/model"
	"chinook-browser/pkg/http_client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))
	return NewClient(srv.URL, http_client.CreateHTTPClient(5*time.Second), logger), srv
}

func TestList_SerializesPageAndDeclaredFilters(t *testing.T) {
	var got url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	_, err := c.Invoices(context.Background(), model.PageRequest{
		Skip:    20,
		Limit:   10,
		Filters: []model.Filter{model.ByCustomer(5)},
	})
	require.NoError(t, err)

	assert.Equal(t, "20", got.Get("skip"))
	assert.Equal(t, "10", got.Get("limit"))
	assert.Equal(t, "5", got.Get("customer_id"))
}

func TestList_OmittedFilterNeverSerialized(t *testing.T) {
	var got url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	}))

	_, err := c.Invoices(context.Background(), model.PageRequest{Skip: 0, Limit: 100})
	require.NoError(t, err)

	_, present := got["customer_id"]
	assert.False(t, present, "absent filter must not appear in the query at all")
}

func TestList_UndeclaredFilterIsCallerError(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[]`))
	}))

	// Customers declare no filters; customer_id belongs to invoices.
	_, err := c.Customers(context.Background(), model.PageRequest{
		Limit:   10,
		Filters: []model.Filter{model.ByCustomer(5)},
	})
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Zero(t, hits.Load(), "caller errors must not reach the network")
}

func TestList_InvalidPageRejectedBeforeRequest(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := c.Artists(context.Background(), model.PageRequest{Skip: -1, Limit: 10})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = c.Artists(context.Background(), model.PageRequest{Skip: 0, Limit: 0})
	require.ErrorIs(t, err, model.ErrValidation)

	assert.Zero(t, hits.Load())
}

func TestGetByID_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := c.CustomerByID(context.Background(), 999)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetByID_UpstreamFailure(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.CustomerByID(context.Background(), 1)
	require.ErrorIs(t, err, model.ErrUpstream)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

func TestGetByID_ShapeMismatch(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"customer_id": "not an object close brace`))
	}))

	_, err := c.CustomerByID(context.Background(), 1)
	require.ErrorIs(t, err, model.ErrShape)
}

func TestGetByID_DecodesEmbeddedRelations(t *testing.T) {
	// unit_price as a quoted string and total as a number both decode.
	body := `{
		"invoice_id": 7,
		"customer_id": 3,
		"invoice_date": "2009-01-03T00:00:00",
		"total": 5.94,
		"customer": {"customer_id": 3, "first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com"},
		"invoice_lines": [
			{"invoice_line_id": 1, "invoice_id": 7, "track_id": 10, "unit_price": "0.99", "quantity": 2,
			 "track": {"track_id": 10, "name": "Fast As a Shark", "media_type_id": 1, "milliseconds": 230619, "unit_price": 0.99}}
		]
	}`
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/invoices/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))

	inv, err := c.InvoiceByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, model.Money(5.94), inv.Total)
	require.NotNil(t, inv.Customer)
	assert.Equal(t, "Ada", inv.Customer.FirstName)
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, model.Money(0.99), inv.Lines[0].UnitPrice)
	require.NotNil(t, inv.Lines[0].Track)
	assert.Equal(t, "Fast As a Shark", inv.Lines[0].Track.Name)
}

func TestGetByID_Idempotent(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"artist_id": 1, "name": "AC/DC"}`))
	}))

	first, err := c.ArtistByID(context.Background(), 1)
	require.NoError(t, err)
	second, err := c.ArtistByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRequestHeaders(t *testing.T) {
	var contentType, requestID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))

	_, err := c.Genres(context.Background(), model.DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.NotEmpty(t, requestID)
}

func TestList_OrderIsPassThrough(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"genre_id": 3, "name": "Metal"}, {"genre_id": 1, "name": "Rock"}]`))
	}))

	genres, err := c.Genres(context.Background(), model.DefaultPage())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, 3, genres[0].GenreID)
	assert.Equal(t, 1, genres[1].GenreID)
}
