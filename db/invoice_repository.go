package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	ierr "github.com/satheeshds/proforma/errors"
	"github.com/satheeshds/proforma/models"
)

// RecordID is the primary key of the single proforma invoice row.
const RecordID = 1

const invoiceSelectQuery = `SELECT invoice_date, consigner_name, consigner_address, consigner_email,
		consignee_name, consignee_location, consignee_gst, transport, note,
		gross_total, gst, net_total
		FROM proforma_invoices`

const productSelectQuery = `SELECT product_name, quantity, packing, pcs, rate, amount
		FROM proforma_products`

// InvoiceRepository reads and overwrites the proforma invoice record.
type InvoiceRepository struct {
	db *sqlx.DB
}

func NewInvoiceRepository(db *sqlx.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Get loads the header row and its products in table order.
func (r *InvoiceRepository) Get(ctx context.Context) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.GetContext(ctx, &inv, r.db.Rebind(invoiceSelectQuery+" WHERE id = ?"), RecordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("invoice not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to load invoice").
			Mark(ierr.ErrDatabase)
	}

	inv.Product = []models.ProductEntry{}
	err = r.db.SelectContext(ctx, &inv.Product,
		r.db.Rebind(productSelectQuery+" WHERE invoice_id = ? ORDER BY line_no"), RecordID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to load invoice products").
			Mark(ierr.ErrDatabase)
	}
	if inv.Product == nil {
		inv.Product = []models.ProductEntry{}
	}
	return &inv, nil
}

// Put overwrites the whole record in one transaction and returns it as
// stored. The product table is replaced, never patched.
func (r *InvoiceRepository) Put(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, dbError(err, "failed to start transaction")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE proforma_invoices SET invoice_date = ?, consigner_name = ?,
		consigner_address = ?, consigner_email = ?, consignee_name = ?, consignee_location = ?,
		consignee_gst = ?, transport = ?, note = ?, gross_total = ?, gst = ?, net_total = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ?`),
		inv.Date, inv.ConsignerName, inv.ConsignerAddress, inv.ConsignerEmail,
		inv.ConsigneeName, inv.ConsigneeLocation, inv.ConsigneeGst, inv.Transport, inv.Note,
		inv.GrossTotal, inv.Gst, inv.NetTotal, RecordID)
	if err != nil {
		return nil, dbError(err, "failed to update invoice")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ierr.NewError("invoice row missing").
			WithHint("invoice not found").
			Mark(ierr.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM proforma_products WHERE invoice_id = ?"), RecordID); err != nil {
		return nil, dbError(err, "failed to clear invoice products")
	}
	insert := tx.Rebind(`INSERT INTO proforma_products (invoice_id, line_no, product_name, quantity, packing, pcs, rate, amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	for i, p := range inv.Product {
		if _, err := tx.ExecContext(ctx, insert, RecordID, i, p.ProductName, p.Quantity, p.Packing, p.Pcs, p.Rate, p.Amount); err != nil {
			return nil, dbError(err, "failed to store invoice products")
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, dbError(err, "failed to commit invoice")
	}
	return r.Get(ctx)
}

func dbError(err error, hint string) error {
	return ierr.WithError(err).WithHint(hint).Mark(ierr.ErrDatabase)
}
