//go:build unit

package core

import (
	"context"
	"testing"

	"chinook-browser/internal/core/model"
	"chinook-browser/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog overrides just the client methods a test needs; calling an
// unstubbed method panics via the embedded nil interface.
type stubCatalog struct {
	CatalogClient
	customerByID func(ctx context.Context, id int) (model.Customer, error)
	invoices     func(ctx context.Context, page model.PageRequest) ([]model.Invoice, error)
	invoiceByID  func(ctx context.Context, id int) (model.Invoice, error)
}

func (s stubCatalog) CustomerByID(ctx context.Context, id int) (model.Customer, error) {
	return s.customerByID(ctx, id)
}

func (s stubCatalog) Invoices(ctx context.Context, page model.PageRequest) ([]model.Invoice, error) {
	return s.invoices(ctx, page)
}

func (s stubCatalog) InvoiceByID(ctx context.Context, id int) (model.Invoice, error) {
	return s.invoiceByID(ctx, id)
}

func TestCustomerDetail_Totals(t *testing.T) {
	svc := NewService(stubCatalog{
		customerByID: func(_ context.Context, id int) (model.Customer, error) {
			return model.Customer{CustomerID: id, FirstName: "Luís", LastName: "Gonçalves"}, nil
		},
		invoices: func(_ context.Context, page model.PageRequest) ([]model.Invoice, error) {
			// The assembler must ask for this customer's invoices only.
			require.Len(t, page.Filters, 1)
			assert.Equal(t, "customer_id", page.Filters[0].Key())
			assert.Equal(t, 5, page.Filters[0].Value())
			return []model.Invoice{
				{InvoiceID: 1, Total: 10.50},
				{InvoiceID: 2, Total: 5.25},
			}, nil
		},
	})

	view, err := svc.CustomerDetail(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Customer.CustomerID)
	assert.Equal(t, model.Money(15.75), view.TotalSpent)
	assert.Equal(t, 2, view.InvoiceCount)
	assert.Len(t, view.Invoices, 2)
}

func TestCustomerDetail_NotFoundWinsOverInvoiceSuccess(t *testing.T) {
	svc := NewService(stubCatalog{
		customerByID: func(_ context.Context, _ int) (model.Customer, error) {
			return model.Customer{}, model.ErrNotFound
		},
		invoices: func(_ context.Context, _ model.PageRequest) ([]model.Invoice, error) {
			return []model.Invoice{{InvoiceID: 1, Total: 9.99}}, nil
		},
	})

	_, err := svc.CustomerDetail(context.Background(), 404)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestCustomerDetail_NotFoundWinsOverInvoiceFailure(t *testing.T) {
	svc := NewService(stubCatalog{
		customerByID: func(_ context.Context, _ int) (model.Customer, error) {
			return model.Customer{}, model.ErrNotFound
		},
		invoices: func(_ context.Context, _ model.PageRequest) ([]model.Invoice, error) {
			return nil, model.ErrUpstream
		},
	})

	_, err := svc.CustomerDetail(context.Background(), 404)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestCustomerDetail_InvoiceFailureFailsTheScreen(t *testing.T) {
	svc := NewService(stubCatalog{
		customerByID: func(_ context.Context, id int) (model.Customer, error) {
			return model.Customer{CustomerID: id}, nil
		},
		invoices: func(_ context.Context, _ model.PageRequest) ([]model.Invoice, error) {
			return nil, model.ErrUpstream
		},
	})

	_, err := svc.CustomerDetail(context.Background(), 5)
	require.ErrorIs(t, err, model.ErrUpstream)
}

func TestInvoiceDetail_View(t *testing.T) {
	svc := NewService(stubCatalog{
		invoiceByID: func(_ context.Context, id int) (model.Invoice, error) {
			return model.Invoice{
				InvoiceID:  id,
				CustomerID: 3,
				Total:      4.00, // deliberately not the sum of the lines
				Customer:   &model.Customer{CustomerID: 3, FirstName: "Ada", LastName: "Lovelace"},
				Lines: []model.InvoiceLine{
					{
						InvoiceLineID: 1,
						TrackID:       10,
						UnitPrice:     0.99,
						Quantity:      2,
						Track:         &model.Track{TrackID: 10, Name: "Bohemian Rhapsody"},
					},
					{
						InvoiceLineID: 2,
						TrackID:       42,
						UnitPrice:     1.99,
						Quantity:      1,
					},
				},
			}, nil
		},
	})

	view, err := svc.InvoiceDetail(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", view.CustomerName)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Bohemian Rhapsody", view.Lines[0].TrackName)
	assert.Equal(t, model.Money(1.98), view.Lines[0].LineTotal)
	assert.Equal(t, "Track ID: 42", view.Lines[1].TrackName)
	assert.Equal(t, model.Money(1.99), view.Lines[1].LineTotal)

	// The headline total is the server figure, not the recomputed line sum.
	assert.Equal(t, model.Money(4.00), view.GrandTotal)
}

func TestInvoiceDetail_NoLinesAndNoCustomer(t *testing.T) {
	svc := NewService(stubCatalog{
		invoiceByID: func(_ context.Context, id int) (model.Invoice, error) {
			return model.Invoice{InvoiceID: id, Total: 12.34}, nil
		},
	})

	view, err := svc.InvoiceDetail(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Customer", view.CustomerName)
	assert.Empty(t, view.Lines)
	assert.Equal(t, model.Money(12.34), view.GrandTotal)
}

func TestInvoiceDetail_NotFound(t *testing.T) {
	svc := NewService(stubCatalog{
		invoiceByID: func(_ context.Context, _ int) (model.Invoice, error) {
			return model.Invoice{}, model.ErrNotFound
		},
	})

	_, err := svc.InvoiceDetail(context.Background(), 999)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestInvoiceDetail_EmptyTrackNameFallsBack(t *testing.T) {
	svc := NewService(stubCatalog{
		invoiceByID: func(_ context.Context, id int) (model.Invoice, error) {
			return model.Invoice{
				InvoiceID: id,
				Customer:  &model.Customer{FirstName: "A", LastName: "B", Company: util.GetPtr("ACME")},
				Lines: []model.InvoiceLine{
					{TrackID: 7, UnitPrice: 0.99, Quantity: 1, Track: &model.Track{TrackID: 7}},
				},
			}, nil
		},
	})

	view, err := svc.InvoiceDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Track ID: 7", view.Lines[0].TrackName)
}
