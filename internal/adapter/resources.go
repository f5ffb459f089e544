package adapter

// resource describes one API resource: its collection path and the filter
// keys the API recognizes for it. The set is fixed at compile time; asking
// for a resource that is not one of these vars is a programming error, not a
// runtime condition.
type resource struct {
	name     string
	basePath string
	filters  []string
}

var (
	resArtists   = resource{name: "artists", basePath: "/api/artists"}
	resAlbums    = resource{name: "albums", basePath: "/api/albums", filters: []string{"artist_id"}}
	resTracks    = resource{name: "tracks", basePath: "/api/tracks", filters: []string{"album_id", "artist_id"}}
	resCustomers = resource{name: "customers", basePath: "/api/customers"}
	resInvoices  = resource{name: "invoices", basePath: "/api/invoices", filters: []string{"customer_id"}}
	resEmployees = resource{name: "employees", basePath: "/api/employees"}
	resGenres    = resource{name: "genres", basePath: "/api/genres"}
	resPlaylists = resource{name: "playlists", basePath: "/api/playlists"}
)

func (r resource) supports(key string) bool {
	for _, f := range r.filters {
		if f == key {
			return true
		}
	}
	return false
}
