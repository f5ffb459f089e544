package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"chinook-browser/internal/core/model"
	"chinook-browser/pkg/format"

	"github.com/spf13/cobra"
)

func newCustomerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "customer <id>",
		Short: "Show a customer with purchase history and totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("customer id must be numeric: %q", args[0])
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			view, err := svc.CustomerDetail(context.Background(), id)
			if errors.Is(err, model.ErrNotFound) {
				fmt.Fprintln(os.Stderr, "Customer not found")
				os.Exit(exitUserError)
			}
			if err != nil {
				return err
			}
			if flags.jsonMode {
				return printJSON(view)
			}
			printCustomerView(view)
			return nil
		},
	}
}

func newInvoiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invoice <id>",
		Short: "Show an invoice with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invoice id must be numeric: %q", args[0])
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			view, err := svc.InvoiceDetail(context.Background(), id)
			if errors.Is(err, model.ErrNotFound) {
				fmt.Fprintln(os.Stderr, "Invoice not found")
				os.Exit(exitUserError)
			}
			if err != nil {
				return err
			}
			if flags.jsonMode {
				return printJSON(view)
			}
			printInvoiceView(view)
			return nil
		},
	}
}

func printCustomerView(v model.CustomerView) {
	c := v.Customer
	fmt.Printf("%s %s\n\n", c.FirstName, c.LastName)
	fmt.Printf("Email:   %s\n", orNA(&c.Email))
	fmt.Printf("Phone:   %s\n", orNA(c.Phone))
	fmt.Printf("Company: %s\n", orNA(c.Company))
	fmt.Printf("Address: %s\n", orNA(c.Address))
	if line := format.CityLine(c.City, c.State); line != "" {
		fmt.Printf("         %s\n", line)
	}
	fmt.Printf("         %s %s\n", deref(c.Country), deref(c.PostalCode))

	fmt.Printf("\nPurchase History — Total Invoices: %d | Total Spent: %s\n\n",
		v.InvoiceCount, format.Currency(v.TotalSpent))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INVOICE\tDATE\tBILLING CITY\tBILLING COUNTRY\tTOTAL")
	for _, inv := range v.Invoices {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			inv.InvoiceID,
			format.Date(inv.InvoiceDate),
			deref(inv.BillingCity),
			deref(inv.BillingCountry),
			format.Currency(inv.Total))
	}
	w.Flush()
}

func printInvoiceView(v model.InvoiceView) {
	inv := v.Invoice
	fmt.Printf("Invoice #%d\n\n", inv.InvoiceID)
	fmt.Printf("Date:     %s\n", format.Date(inv.InvoiceDate))
	fmt.Printf("Customer: %s\n", v.CustomerName)
	fmt.Printf("Total:    %s\n", format.Currency(v.GrandTotal))
	fmt.Printf("Billing:  %s\n", orNA(inv.BillingAddress))
	if line := format.CityLine(inv.BillingCity, inv.BillingState); line != "" {
		fmt.Printf("          %s\n", line)
	}
	fmt.Printf("          %s %s\n", deref(inv.BillingCountry), deref(inv.BillingPostalCode))

	fmt.Println("\nLine Items")
	if len(v.Lines) == 0 {
		fmt.Println("No line items found for this invoice.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TRACK\tUNIT PRICE\tQTY\tLINE TOTAL")
	for _, l := range v.Lines {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			l.TrackName,
			format.Currency(l.UnitPrice),
			l.Quantity,
			format.Currency(l.LineTotal))
	}
	fmt.Fprintf(w, "\tTotal:\t\t%s\n", format.Currency(v.GrandTotal))
	w.Flush()
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
