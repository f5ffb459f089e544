package model

// Render-ready view models. A view is assembled fresh for each screen
// request and handed to whichever rendering layer asked for it; nothing here
// is cached between navigations.

type CustomerView struct {
	Customer     Customer  `json:"customer"`
	Invoices     []Invoice `json:"invoices"`
	TotalSpent   Money     `json:"total_spent"`
	InvoiceCount int       `json:"invoice_count"`
}

// LineView is one invoice line with its display fields resolved: the track
// name (or a placeholder when the track is not embedded) and the client-side
// line total.
type LineView struct {
	InvoiceLine
	TrackName string `json:"track_name"`
	LineTotal Money  `json:"line_total"`
}

// InvoiceView carries both the per-line totals and the server-reported
// invoice total. The two are reported side by side, never reconciled: the
// headline figure is always the server's.
type InvoiceView struct {
	Invoice      Invoice    `json:"invoice"`
	CustomerName string     `json:"customer_name"`
	Lines        []LineView `json:"lines"`
	GrandTotal   Money      `json:"grand_total"`
}
