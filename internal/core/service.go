package core

import (
	"context"
	"fmt"

	"chinook-browser/internal/core/model"
	"chinook-browser/pkg/format"

	"golang.org/x/sync/errgroup"
)

// CatalogClient is the typed resource access the assemblers run on. The
// adapter package implements it against the remote Chinook API.
type CatalogClient interface {
	Artists(ctx context.Context, page model.PageRequest) ([]model.Artist, error)
	ArtistByID(ctx context.Context, id int) (model.Artist, error)
	Albums(ctx context.Context, page model.PageRequest) ([]model.Album, error)
	AlbumByID(ctx context.Context, id int) (model.Album, error)
	Tracks(ctx context.Context, page model.PageRequest) ([]model.Track, error)
	TrackByID(ctx context.Context, id int) (model.Track, error)
	Customers(ctx context.Context, page model.PageRequest) ([]model.Customer, error)
	CustomerByID(ctx context.Context, id int) (model.Customer, error)
	Invoices(ctx context.Context, page model.PageRequest) ([]model.Invoice, error)
	InvoiceByID(ctx context.Context, id int) (model.Invoice, error)
	Employees(ctx context.Context, page model.PageRequest) ([]model.Employee, error)
	Genres(ctx context.Context, page model.PageRequest) ([]model.Genre, error)
	Playlists(ctx context.Context, page model.PageRequest) ([]model.Playlist, error)
	PlaylistByID(ctx context.Context, id int) (model.Playlist, error)
}

// customerInvoicesLimit is the single generous page used to pull "all"
// invoices of one customer. Known limitation: a customer with more invoices
// than this would be truncated; there is no multi-page traversal.
const customerInvoicesLimit = 1000

type Service struct {
	Catalog CatalogClient
}

func NewService(catalog CatalogClient) *Service {
	return &Service{Catalog: catalog}
}

// CustomerDetail assembles the customer screen: the customer record and the
// customer's invoices are fetched concurrently and joined, so latency is
// bounded by the slower of the two requests. A missing customer always wins
// over whatever the invoice fetch did; invoices carry no meaning without one.
func (s *Service) CustomerDetail(ctx context.Context, customerID int) (model.CustomerView, error) {
	var (
		customer    model.Customer
		invoices    []model.Invoice
		customerErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customer, err = s.Catalog.CustomerByID(gctx, customerID)
		customerErr = err
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = s.Catalog.Invoices(gctx, model.PageRequest{
			Skip:    0,
			Limit:   customerInvoicesLimit,
			Filters: []model.Filter{model.ByCustomer(customerID)},
		})
		return err
	})
	waitErr := g.Wait()

	if customerErr != nil {
		return model.CustomerView{}, fmt.Errorf("customer %d: %w", customerID, customerErr)
	}
	if waitErr != nil {
		return model.CustomerView{}, fmt.Errorf("customer %d invoices: %w", customerID, waitErr)
	}

	return model.CustomerView{
		Customer: customer,
		Invoices: invoices,
		TotalSpent: model.Money(format.Sum(invoices, func(i model.Invoice) float64 {
			return float64(i.Total)
		})),
		InvoiceCount: len(invoices),
	}, nil
}

// InvoiceDetail assembles the invoice screen from the single-invoice
// endpoint, which embeds the customer and the lines (each line optionally
// embedding its track).
func (s *Service) InvoiceDetail(ctx context.Context, invoiceID int) (model.InvoiceView, error) {
	inv, err := s.Catalog.InvoiceByID(ctx, invoiceID)
	if err != nil {
		return model.InvoiceView{}, fmt.Errorf("invoice %d: %w", invoiceID, err)
	}
	return buildInvoiceView(inv), nil
}

func buildInvoiceView(inv model.Invoice) model.InvoiceView {
	name := "Unknown Customer"
	if inv.Customer != nil {
		name = inv.Customer.FirstName + " " + inv.Customer.LastName
	}

	lines := make([]model.LineView, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		trackName := fmt.Sprintf("Track ID: %d", l.TrackID)
		if l.Track != nil && l.Track.Name != "" {
			trackName = l.Track.Name
		}
		lines = append(lines, model.LineView{
			InvoiceLine: l,
			TrackName:   trackName,
			LineTotal:   model.Money(float64(l.UnitPrice) * float64(l.Quantity)),
		})
	}

	return model.InvoiceView{
		Invoice:      inv,
		CustomerName: name,
		Lines:        lines,
		// Headline total is the server-reported figure; the line totals are
		// shown alongside it and never summed into a replacement.
		GrandTotal: inv.Total,
	}
}
