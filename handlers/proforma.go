package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/satheeshds/proforma/db"
	"github.com/satheeshds/proforma/invoice"
	"github.com/satheeshds/proforma/models"
	"github.com/satheeshds/proforma/render"
)

// maxBodyBytes bounds the size of an uploaded invoice document.
const maxBodyBytes = 1 << 20

// Invoices is the shared repository used by all handlers.
var Invoices *db.InvoiceRepository

// Letterhead is printed on every rendered invoice.
var Letterhead = render.DefaultLetterhead

// now is replaced in tests.
var now = time.Now

// RegisterAPI mounts the invoice routes on r.
func RegisterAPI(r chi.Router) {
	r.Get("/proformaInvoice", GetProformaInvoice)
	r.Put("/proformaInvoice", UpdateProformaInvoice)
	r.Get("/proformaInvoice/print", PrintProformaInvoice)
	r.Get("/proformaInvoice/pdf", GetProformaInvoicePDF)
}

// GetProformaInvoice retrieves the invoice record
// @Summary      Get proforma invoice
// @Description  Get the whole proforma invoice: header fields, products and totals.
// @Tags         proformaInvoice
// @Produce      json
// @Success      200  {object}  Response{data=models.Invoice}
// @Failure      404  {object}  Response{error=string}
// @Router       /proformaInvoice [get]
func GetProformaInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := Invoices.Get(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// UpdateProformaInvoice overwrites the invoice record
// @Summary      Update proforma invoice
// @Description  Replace the whole proforma invoice. Amounts and totals are recomputed before saving; the stored document is returned.
// @Tags         proformaInvoice
// @Accept       json
// @Produce      json
// @Param        invoice  body      models.Invoice  true  "Full invoice document"
// @Success      200      {object}  Response{data=models.Invoice}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /proformaInvoice [put]
func UpdateProformaInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.Invoice
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	saved, err := Invoices.Put(r.Context(), invoice.Normalize(&input))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// PrintProformaInvoice renders the printable invoice
// @Summary      Print proforma invoice
// @Description  Static HTML print view of the invoice.
// @Tags         proformaInvoice
// @Produce      html
// @Success      200  {string}  string
// @Router       /proformaInvoice/print [get]
func PrintProformaInvoice(w http.ResponseWriter, r *http.Request) {
	renderInvoice(w, r, render.FormatHTML, "text/html; charset=utf-8")
}

// GetProformaInvoicePDF renders the invoice as PDF
// @Summary      Proforma invoice PDF
// @Description  PDF rendering of the invoice print view.
// @Tags         proformaInvoice
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /proformaInvoice/pdf [get]
func GetProformaInvoicePDF(w http.ResponseWriter, r *http.Request) {
	renderInvoice(w, r, render.FormatPDF, "application/pdf")
}

func renderInvoice(w http.ResponseWriter, r *http.Request, format render.Format, contentType string) {
	inv, err := Invoices.Get(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, format, render.NewSheet(inv, Letterhead, now())); err != nil {
		writeErr(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	if format == render.FormatPDF {
		w.Header().Set("Content-Disposition", "inline; filename=proforma-invoice.pdf")
	}
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
