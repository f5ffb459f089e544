package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"chinook-browser/internal/core/model"

	"github.com/google/uuid"
)

// Client fetches typed catalog records from the Chinook REST API. Every call
// issues exactly one request: reads are idempotent and are neither retried
// nor cached, so a failure surfaces to the caller immediately.
type Client struct {
	BaseURL string
	Client  *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL: baseURL,
		Client:  httpClient,
		log:     logger,
	}
}

// list fetches one page of a collection. Only filters the resource declares
// are serialized; an undeclared filter key is a caller error. Record order is
// whatever the API returned, passed through untouched.
func list[T any](ctx context.Context, c *Client, res resource, page model.PageRequest) ([]T, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("skip", strconv.Itoa(page.Skip))
	q.Set("limit", strconv.Itoa(page.Limit))
	for _, f := range page.Filters {
		if !res.supports(f.Key()) {
			return nil, fmt.Errorf("%w: resource %q does not recognize filter %q", model.ErrValidation, res.name, f.Key())
		}
		q.Set(f.Key(), strconv.Itoa(f.Value()))
	}

	var out []T
	if err := c.get(ctx, res.basePath+"?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getByID fetches a single record. A 404 from the API becomes ErrNotFound so
// screens can tell "no such record" apart from a failed fetch.
func getByID[T any](ctx context.Context, c *Client, res resource, id int) (T, error) {
	var out T
	if err := c.get(ctx, fmt.Sprintf("%s/%d", res.basePath, id), &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", model.ErrUpstream, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "catalog fetch", "path", path, "status", resp.StatusCode, "request_id", reqID)

	if resp.StatusCode == http.StatusNotFound {
		return model.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", model.ErrUpstream, resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", model.ErrShape, path, err)
	}
	return nil
}

func (c *Client) Artists(ctx context.Context, page model.PageRequest) ([]model.Artist, error) {
	return list[model.Artist](ctx, c, resArtists, page)
}

func (c *Client) ArtistByID(ctx context.Context, id int) (model.Artist, error) {
	return getByID[model.Artist](ctx, c, resArtists, id)
}

func (c *Client) Albums(ctx context.Context, page model.PageRequest) ([]model.Album, error) {
	return list[model.Album](ctx, c, resAlbums, page)
}

func (c *Client) AlbumByID(ctx context.Context, id int) (model.Album, error) {
	return getByID[model.Album](ctx, c, resAlbums, id)
}

func (c *Client) Tracks(ctx context.Context, page model.PageRequest) ([]model.Track, error) {
	return list[model.Track](ctx, c, resTracks, page)
}

func (c *Client) TrackByID(ctx context.Context, id int) (model.Track, error) {
	return getByID[model.Track](ctx, c, resTracks, id)
}

func (c *Client) Customers(ctx context.Context, page model.PageRequest) ([]model.Customer, error) {
	return list[model.Customer](ctx, c, resCustomers, page)
}

func (c *Client) CustomerByID(ctx context.Context, id int) (model.Customer, error) {
	return getByID[model.Customer](ctx, c, resCustomers, id)
}

func (c *Client) Invoices(ctx context.Context, page model.PageRequest) ([]model.Invoice, error) {
	return list[model.Invoice](ctx, c, resInvoices, page)
}

func (c *Client) InvoiceByID(ctx context.Context, id int) (model.Invoice, error) {
	return getByID[model.Invoice](ctx, c, resInvoices, id)
}

// Employees and genres expose collection endpoints only.

func (c *Client) Employees(ctx context.Context, page model.PageRequest) ([]model.Employee, error) {
	return list[model.Employee](ctx, c, resEmployees, page)
}

func (c *Client) Genres(ctx context.Context, page model.PageRequest) ([]model.Genre, error) {
	return list[model.Genre](ctx, c, resGenres, page)
}

func (c *Client) Playlists(ctx context.Context, page model.PageRequest) ([]model.Playlist, error) {
	return list[model.Playlist](ctx, c, resPlaylists, page)
}

func (c *Client) PlaylistByID(ctx context.Context, id int) (model.Playlist, error) {
	return getByID[model.Playlist](ctx, c, resPlaylists, id)
}
