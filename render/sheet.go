// Package render produces the printable proforma invoice: a static HTML
// sheet and a PDF with the same content. Nothing here edits the invoice.
package render

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/satheeshds/proforma/models"
)

// Letterhead is the boilerplate printed around every invoice.
type Letterhead struct {
	Company    string
	Tagline    string
	Terms      []string
	BankName   string
	Branch     string
	AccountNo  string
	IFSC       string
	Closing    string
	Disclaimer string
	Signatory  string
}

var DefaultLetterhead = Letterhead{
	Company: "AGRI SCIENCE CO.",
	Tagline: "FARMING THE FUTURE, TODAY",
	Terms: []string{
		"Subject to our home Jurisdiction & delivery Ex-premises.",
		"Goods once sold will not taken back.",
		"Payment term : 100% advance against the Proforma Invoice.",
		"Delivery : Immediately subject to fulfilment of payment terms.",
	},
	BankName:   "ICICI BANK LTD.",
	Branch:     "MAHABUBABAD",
	AccountNo:  "123456789122",
	IFSC:       "ICIC00013432",
	Closing:    "We appreciate your business and look forward to work with you forever...",
	Disclaimer: "This is computer generated Invoice no signature required",
	Signatory:  "MR. GUGULOTH RAVINDER",
}

// DateLayout is used when the invoice has no date of its own.
const DateLayout = "02/01/2006"

// Row is a product line with its printed serial number.
type Row struct {
	SrNo int
	models.ProductEntry
}

// Sheet is everything the templates need to print one invoice.
type Sheet struct {
	Letterhead
	Date    string
	Invoice *models.Invoice
	Rows    []Row
}

// NewSheet builds the print view of doc. An empty invoice date prints as now.
func NewSheet(doc *models.Invoice, lh Letterhead, now time.Time) Sheet {
	s := Sheet{Letterhead: lh, Invoice: doc, Date: doc.Date}
	if s.Date == "" {
		s.Date = now.Format(DateLayout)
	}
	for i, p := range doc.Product {
		s.Rows = append(s.Rows, Row{SrNo: i + 1, ProductEntry: p})
	}
	return s
}

// Format selects the printed output.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Write renders s to w in the given format.
func Write(w io.Writer, format Format, s Sheet) error {
	switch format {
	case FormatHTML:
		return HTML(w, s)
	case FormatPDF:
		return PDF(w, s)
	}
	return fmt.Errorf("unsupported print format %q", format)
}

// Printer prints invoices to W. It satisfies invoice.Printer.
type Printer struct {
	W          io.Writer
	Format     Format
	Letterhead Letterhead
	Now        func() time.Time
}

func (p Printer) Print(_ context.Context, doc *models.Invoice) error {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return Write(p.W, p.Format, NewSheet(doc, p.Letterhead, now()))
}
