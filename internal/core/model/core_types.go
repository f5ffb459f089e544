package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// All core models live here together for simplicity. Every record is an
// immutable snapshot of what the catalog API returned; nothing in this
// repository mutates one after decoding.

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not_found")
	ErrUpstream   = errors.New("upstream")
	ErrShape      = errors.New("shape")
)

// Money is a monetary amount as reported by the API. Depending on the
// serializer the API uses for decimals, amounts arrive as JSON numbers or as
// quoted numeric strings; absent or unparseable values decode to zero rather
// than failing the enclosing entity.
type Money float64

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*m = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*m = 0
		return nil
	}
	*m = Money(f)
	return nil
}

type Artist struct {
	ArtistID int    `json:"artist_id"`
	Name     string `json:"name"`
}

type Album struct {
	AlbumID  int     `json:"album_id"`
	Title    string  `json:"title"`
	ArtistID int     `json:"artist_id"`
	Artist   *Artist `json:"artist,omitempty"`
}

type Track struct {
	TrackID      int     `json:"track_id"`
	Name         string  `json:"name"`
	AlbumID      *int    `json:"album_id"`
	MediaTypeID  int     `json:"media_type_id"`
	GenreID      *int    `json:"genre_id"`
	Composer     *string `json:"composer"`
	Milliseconds int     `json:"milliseconds"`
	Bytes        *int    `json:"bytes"`
	UnitPrice    Money   `json:"unit_price"`
}

type Customer struct {
	CustomerID   int     `json:"customer_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Company      *string `json:"company"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Country      *string `json:"country"`
	PostalCode   *string `json:"postal_code"`
	Phone        *string `json:"phone"`
	Fax          *string `json:"fax"`
	Email        string  `json:"email"`
	SupportRepID *int    `json:"support_rep_id"`
}

// Invoice may arrive with its customer and lines embedded (single-invoice
// endpoint) or bare (collection endpoint). Embedded relations are optional on
// the wire, so they stay pointers/nilable slices here.
type Invoice struct {
	InvoiceID         int           `json:"invoice_id"`
	CustomerID        int           `json:"customer_id"`
	InvoiceDate       string        `json:"invoice_date"`
	BillingAddress    *string       `json:"billing_address"`
	BillingCity       *string       `json:"billing_city"`
	BillingState      *string       `json:"billing_state"`
	BillingCountry    *string       `json:"billing_country"`
	BillingPostalCode *string       `json:"billing_postal_code"`
	Total             Money         `json:"total"`
	Customer          *Customer     `json:"customer,omitempty"`
	Lines             []InvoiceLine `json:"invoice_lines,omitempty"`
}

type InvoiceLine struct {
	InvoiceLineID int    `json:"invoice_line_id"`
	InvoiceID     int    `json:"invoice_id"`
	TrackID       int    `json:"track_id"`
	UnitPrice     Money  `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	Track         *Track `json:"track,omitempty"`
}

type Employee struct {
	EmployeeID int     `json:"employee_id"`
	LastName   string  `json:"last_name"`
	FirstName  string  `json:"first_name"`
	Title      *string `json:"title"`
	ReportsTo  *int    `json:"reports_to"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	City       *string `json:"city"`
	Country    *string `json:"country"`
}

type Genre struct {
	GenreID int    `json:"genre_id"`
	Name    string `json:"name"`
}

type Playlist struct {
	PlaylistID int    `json:"playlist_id"`
	Name       string `json:"name"`
}

// Filter is one collection filter. The constructors below are the closed set
// of filters the API recognizes; which resource accepts which key is declared
// by the resource descriptors and checked at call time.
type Filter struct {
	key   string
	value int
}

func ByArtist(id int) Filter   { return Filter{key: "artist_id", value: id} }
func ByAlbum(id int) Filter    { return Filter{key: "album_id", value: id} }
func ByCustomer(id int) Filter { return Filter{key: "customer_id", value: id} }

func (f Filter) Key() string { return f.key }
func (f Filter) Value() int  { return f.value }

// PageRequest is one pagination window over a collection endpoint. Filters
// left out of the slice are never serialized, which keeps "no filter"
// distinct from "filter = 0".
type PageRequest struct {
	Skip    int
	Limit   int
	Filters []Filter
}

// DefaultPage mirrors the API's own defaults.
func DefaultPage() PageRequest {
	return PageRequest{Skip: 0, Limit: 100}
}

func (p PageRequest) Validate() error {
	if p.Skip < 0 {
		return fmt.Errorf("%w: skip must be non-negative, got %d", ErrValidation, p.Skip)
	}
	if p.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrValidation, p.Limit)
	}
	return nil
}
