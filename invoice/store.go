package invoice

import (
	"strings"

	ierr "github.com/satheeshds/proforma/errors"
	"github.com/satheeshds/proforma/models"
)

// The functions in this file never modify their input document. Each one
// returns a fresh copy with entries and totals recomputed together, or an
// error and no copy at all.

// AddEntry appends entry to the product table. The entry amount is
// recomputed from its quantity and rate before it is appended.
func AddEntry(doc *models.Invoice, entry models.ProductEntry) (*models.Invoice, error) {
	if strings.TrimSpace(entry.ProductName) == "" {
		return nil, ierr.NewError("product name is empty").
			WithHint("Please enter product name").
			Mark(ierr.ErrValidation)
	}

	next := doc.Clone()
	if next == nil {
		next = &models.Invoice{}
	}
	entry.Amount = FormatMoney(LineAmount(entry.Quantity, entry.Rate))
	next.Product = append(next.Product, entry)
	ComputeTotals(next.Product).apply(next)
	return next, nil
}

// UpdateEntry replaces one field of the entry at index. Changing quantity
// or rate recomputes that entry's amount. Totals are recomputed for every
// field.
func UpdateEntry(doc *models.Invoice, index int, field, value string) (*models.Invoice, error) {
	if err := checkIndex(doc, index); err != nil {
		return nil, err
	}

	next := doc.Clone()
	e := &next.Product[index]
	switch field {
	case models.FieldProductName:
		e.ProductName = value
	case models.FieldQuantity:
		e.Quantity = value
	case models.FieldPacking:
		e.Packing = value
	case models.FieldPcs:
		e.Pcs = value
	case models.FieldRate:
		e.Rate = value
	case models.FieldAmount:
		return nil, ierr.NewError("amount is derived").
			WithHint("amount is computed from quantity and rate").
			Mark(ierr.ErrInvalidOperation)
	default:
		return nil, ierr.NewError("unknown product field").
			WithHintf("unknown product field %q", field).
			Mark(ierr.ErrInvalidOperation)
	}
	if field == models.FieldQuantity || field == models.FieldRate {
		e.Amount = FormatMoney(LineAmount(e.Quantity, e.Rate))
	}

	ComputeTotals(next.Product).apply(next)
	return next, nil
}

// DeleteEntry removes the entry at index; later entries move up by one.
func DeleteEntry(doc *models.Invoice, index int) (*models.Invoice, error) {
	if err := checkIndex(doc, index); err != nil {
		return nil, err
	}

	next := doc.Clone()
	next.Product = append(next.Product[:index], next.Product[index+1:]...)
	ComputeTotals(next.Product).apply(next)
	return next, nil
}

// SetHeaderField edits one header field. Products and totals are untouched.
func SetHeaderField(doc *models.Invoice, field, value string) (*models.Invoice, error) {
	next := doc.Clone()
	if next == nil {
		next = &models.Invoice{}
	}
	f := next.HeaderField(field)
	if f == nil {
		return nil, ierr.NewError("unknown header field").
			WithHintf("%q is not an editable header field", field).
			Mark(ierr.ErrInvalidOperation)
	}
	*f = value
	return next, nil
}

// Normalize recomputes every entry amount and the totals. A missing product
// table becomes an empty one.
func Normalize(doc *models.Invoice) *models.Invoice {
	next := doc.Clone()
	if next == nil {
		next = &models.Invoice{}
	}
	if next.Product == nil {
		next.Product = []models.ProductEntry{}
	}
	for i := range next.Product {
		e := &next.Product[i]
		e.Amount = FormatMoney(LineAmount(e.Quantity, e.Rate))
	}
	ComputeTotals(next.Product).apply(next)
	return next
}

func checkIndex(doc *models.Invoice, index int) error {
	n := 0
	if doc != nil {
		n = len(doc.Product)
	}
	if index < 0 || index >= n {
		return ierr.NewError("entry index out of range").
			WithHintf("no product at position %d", index+1).
			WithReportableDetails(map[string]any{"index": index, "length": n}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
