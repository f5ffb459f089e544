package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"chinook-browser/internal/core"
	"chinook-browser/internal/core/model"
	"chinook-browser/internal/theme"
	"chinook-browser/pkg/format"

	"github.com/spf13/cobra"
)

// listFlags holds the pagination and filter flag values for "list".
type listFlags struct {
	skip     int
	limit    int
	artist   int
	album    int
	customer int
}

func newListCmd() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List a catalog resource page",
		Long: "List one page of a resource. Resources: artists, albums, tracks,\n" +
			"customers, invoices, employees, genres, playlists. Filter flags apply\n" +
			"only to the resources that recognize them.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			page := model.PageRequest{Skip: lf.skip, Limit: lf.limit}
			if cmd.Flags().Changed("artist") {
				page.Filters = append(page.Filters, model.ByArtist(lf.artist))
			}
			if cmd.Flags().Changed("album") {
				page.Filters = append(page.Filters, model.ByAlbum(lf.album))
			}
			if cmd.Flags().Changed("customer") {
				page.Filters = append(page.Filters, model.ByCustomer(lf.customer))
			}
			return runList(svc, args[0], page)
		},
	}
	cmd.Flags().IntVar(&lf.skip, "skip", 0, "records to skip")
	cmd.Flags().IntVar(&lf.limit, "limit", 100, "page size")
	cmd.Flags().IntVar(&lf.artist, "artist", 0, "filter by artist id (albums, tracks)")
	cmd.Flags().IntVar(&lf.album, "album", 0, "filter by album id (tracks)")
	cmd.Flags().IntVar(&lf.customer, "customer", 0, "filter by customer id (invoices)")
	return cmd
}

func runList(svc *core.Service, name string, page model.PageRequest) error {
	ctx := context.Background()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch name {
	case "artists":
		items, err := svc.Catalog.Artists(ctx, page)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(items)
		}
		fmt.Fprintln(w, "ID\tNAME")
		for _, a := range items {
			fmt.Fprintf(w, "%d\t%s\n", a.ArtistID, a.Name)
		}
	case "albums":
		items, err := svc.Catalog.Albums(ctx, page)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(items)
		}
		fmt.Fprintln(w, "ID\tTITLE\tARTIST")
		for _, a := range items {
			fmt.Fprintf(w, "%d\t%s\t%d\n", a.AlbumID, a.Title, a.ArtistID)
		}
	case "tracks":
		items, err := svc.Catalog.Tracks(ctx, page)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(items)
		}
		fmt.Fprintln(w, "ID\tNAME\tCOMPOSER\tPRICE")
		for _, t := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.TrackID, t.Name, deref(t.Composer), format.Currency(t.UnitPrice))
		}
	case "customers":
		items, err := svc.Catalog.Customers(ctx, page)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(items)
		}
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCITY")
		for _, c := range items {
			fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n", c.CustomerID, c.FirstName, c.LastName, c.Email, format.CityLine(c.City, c.State))
		}
	case "invoices":
		items, err := svc.Catalog.Invoices(ctx, page)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(items)
		}
		fmt.Fprintln(w, "ID\tCUSTOMER\tDATE\tTOTAL")
		for _, i := range items {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i.InvoiceID, i.CustomerID, format.Date(i.InvoiceDate), format.Currency(i.Total))
		}
	case "employees":
		items, err := svc.Catalog.Employees(ctx, page)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(items)
		}
		fmt.Fprintln(w, "ID\tNAME\tTITLE")
		for _, e := range items {
			fmt.Fprintf(w, "%d\t%s %s\t%s\n", e.EmployeeID, e.FirstName, e.LastName, deref(e.Title))
		}
	case "genres":
		items, err := svc.Catalog.Genres(ctx, page)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(items)
		}
		fmt.Fprintln(w, "ID\tNAME")
		for _, g := range items {
			fmt.Fprintf(w, "%d\t%s\n", g.GenreID, g.Name)
		}
	case "playlists":
		items, err := svc.Catalog.Playlists(ctx, page)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(items)
		}
		fmt.Fprintln(w, "ID\tNAME")
		for _, p := range items {
			fmt.Fprintf(w, "%d\t%s\n", p.PlaylistID, p.Name)
		}
	default:
		return fmt.Errorf("unknown resource %q", name)
	}
	return nil
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes [name]",
		Short: "Show the registered display themes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printJSON(theme.Get(args[0]))
			}
			if flags.jsonMode {
				return printJSON(theme.Names())
			}
			for _, name := range theme.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
