package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"chinook-browser/internal/core"
	"chinook-browser/internal/core/model"
	"chinook-browser/internal/theme"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// Handler serves render-ready view models as JSON. It owns no state beyond
// the service and never lets a fetch error escape as anything but a JSON
// error body: not-found, upstream failure, and caller mistakes each map to
// their own status.
type Handler struct {
	Svc *core.Service
	log *slog.Logger
}

func NewHTTPHandler(svc *core.Service, logger *slog.Logger) *Handler {
	return &Handler{Svc: svc, log: logger}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/views/customers", h.ListCustomers)
	r.Get("/views/customers/{id}", h.CustomerDetail)
	r.Get("/views/invoices", h.ListInvoices)
	r.Get("/views/invoices/{id}", h.InvoiceDetail)
	r.Get("/views/artists", h.ListArtists)
	r.Get("/views/albums", h.ListAlbums)
	r.Get("/views/tracks", h.ListTracks)
	r.Get("/views/employees", h.ListEmployees)
	r.Get("/views/genres", h.ListGenres)
	r.Get("/views/playlists", h.ListPlaylists)
	r.Get("/views/theme", h.Theme)
	return r
}

type httpError struct {
	Error struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details,omitempty"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string, details map[string]interface{}) {
	e := httpError{}
	e.Error.Code = code
	e.Error.Message = msg
	e.Error.Details = details
	writeJSON(w, status, e)
}

// crumb is one breadcrumb entry; entries without an href are the current
// page.
type crumb struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

type customerPage struct {
	Breadcrumbs []crumb `json:"breadcrumbs"`
	model.CustomerView
}

type invoicePage struct {
	Breadcrumbs []crumb `json:"breadcrumbs"`
	model.InvoiceView
}

func (h *Handler) CustomerDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	view, err := h.Svc.CustomerDetail(r.Context(), id)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	name := view.Customer.FirstName + " " + view.Customer.LastName
	writeJSON(w, http.StatusOK, customerPage{
		Breadcrumbs: []crumb{
			{Label: "Customers", Href: "/customers"},
			{Label: name},
		},
		CustomerView: view,
	})
}

func (h *Handler) InvoiceDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	view, err := h.Svc.InvoiceDetail(r.Context(), id)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	crumbs := []crumb{{Label: "Customers", Href: "/customers"}}
	if view.Invoice.CustomerID != 0 {
		crumbs = append(crumbs, crumb{
			Label: view.CustomerName,
			Href:  fmt.Sprintf("/customers/%d", view.Invoice.CustomerID),
		})
	}
	crumbs = append(crumbs, crumb{Label: fmt.Sprintf("Invoice #%d", view.Invoice.InvoiceID)})
	writeJSON(w, http.StatusOK, invoicePage{
		Breadcrumbs: crumbs,
		InvoiceView: view,
	})
}

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	listView(h, w, r, nil, h.Svc.Catalog.Artists)
}

func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	listView(h, w, r, map[string]func(int) model.Filter{
		"artist_id": model.ByArtist,
	}, h.Svc.Catalog.Albums)
}

func (h *Handler) ListTracks(w http.ResponseWriter, r *http.Request) {
	listView(h, w, r, map[string]func(int) model.Filter{
		"album_id":  model.ByAlbum,
		"artist_id": model.ByArtist,
	}, h.Svc.Catalog.Tracks)
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	listView(h, w, r, nil, h.Svc.Catalog.Customers)
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	listView(h, w, r, map[string]func(int) model.Filter{
		"customer_id": model.ByCustomer,
	}, h.Svc.Catalog.Invoices)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	listView(h, w, r, nil, h.Svc.Catalog.Employees)
}

func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	listView(h, w, r, nil, h.Svc.Catalog.Genres)
}

func (h *Handler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	listView(h, w, r, nil, h.Svc.Catalog.Playlists)
}

func (h *Handler) Theme(w http.ResponseWriter, r *http.Request) {
	// Unknown names fall back to the default theme, so this never errors.
	writeJSON(w, http.StatusOK, theme.Get(r.URL.Query().Get("name")))
}

// listView binds skip/limit plus the resource's recognized filter params and
// serves one page of records.
func listView[T any](h *Handler, w http.ResponseWriter, r *http.Request, filters map[string]func(int) model.Filter, fetch func(ctx context.Context, page model.PageRequest) ([]T, error)) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_QUERY", err.Error(), nil)
		return
	}
	for name, mk := range filters {
		v, err := optionalIntParam(r, name)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BAD_QUERY", err.Error(), nil)
			return
		}
		if v != nil {
			page.Filters = append(page.Filters, mk(*v))
		}
	}
	items, err := fetch(r.Context(), page)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []T `json:"data"`
	}{Data: items})
}

func pageFromQuery(r *http.Request) (model.PageRequest, error) {
	page := model.DefaultPage()
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "skip", q, &page.Skip); err != nil {
		return model.PageRequest{}, fmt.Errorf("%w: skip: %v", model.ErrValidation, err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &page.Limit); err != nil {
		return model.PageRequest{}, fmt.Errorf("%w: limit: %v", model.ErrValidation, err)
	}
	return page, page.Validate()
}

func optionalIntParam(r *http.Request, name string) (*int, error) {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrValidation, name, err)
	}
	return v, nil
}

func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_ID", "id must be numeric", nil)
		return 0, false
	}
	return id, true
}

// writeFetchError maps the client error taxonomy onto HTTP statuses. Shape
// mismatches display like any upstream failure but are logged distinctly so
// they can be diagnosed.
func (h *Handler) writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "record not found", nil)
	case errors.Is(err, model.ErrShape):
		h.log.ErrorContext(r.Context(), "upstream response shape mismatch", "err", err, "path", r.URL.Path)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "catalog service unavailable", nil)
	default:
		h.log.ErrorContext(r.Context(), "upstream fetch failed", "err", err, "path", r.URL.Path)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "catalog service unavailable", nil)
	}
}
