package invoice

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	ierr "github.com/satheeshds/proforma/errors"
	"github.com/satheeshds/proforma/models"
)

// Gateway fetches and overwrites the whole invoice record.
type Gateway interface {
	Fetch(ctx context.Context) (*models.Invoice, error)
	Persist(ctx context.Context, doc *models.Invoice) (*models.Invoice, error)
}

// Printer outputs a document. Print returns once printing has completed.
type Printer interface {
	Print(ctx context.Context, doc *models.Invoice) error
}

// PrinterFunc adapts a function to the Printer interface.
type PrinterFunc func(ctx context.Context, doc *models.Invoice) error

func (f PrinterFunc) Print(ctx context.Context, doc *models.Invoice) error {
	return f(ctx, doc)
}

// ErrNotLoaded is returned by edits attempted before a document was loaded.
var ErrNotLoaded = ierr.NewError("invoice not loaded").
	WithHint("Invoice is still loading").
	Mark(ierr.ErrInvalidOperation)

const notEditing = -1

// Session owns one invoice document for the lifetime of an editing session.
// Every method takes the session lock, so operations never interleave.
type Session struct {
	mu       sync.Mutex
	gw       Gateway
	logger   *slog.Logger
	doc      *models.Invoice
	editing  int
	printing atomic.Bool
}

// NewSession creates a session with no document loaded.
func NewSession(gw Gateway, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{gw: gw, logger: logger, editing: notEditing}
}

// Load fetches the record. On failure the session stays not loaded.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.gw.Fetch(ctx)
	if err != nil {
		s.logger.Error("error fetching invoice", "error", err)
		return err
	}
	s.doc = doc
	s.editing = notEditing
	if !doc.Loaded() {
		s.logger.Warn("invoice has no product table, waiting for data")
	}
	return nil
}

// Loaded reports whether a document with a product table is present.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Loaded()
}

// Document returns a copy of the current document, or nil if none was loaded.
func (s *Session) Document() *models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Totals returns the aggregate totals of the current product list.
func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return ComputeTotals(nil)
	}
	return ComputeTotals(s.doc.Product)
}

// AddEntry appends a product entry.
func (s *Session) AddEntry(entry models.ProductEntry) error {
	return s.apply(func(doc *models.Invoice) (*models.Invoice, error) {
		return AddEntry(doc, entry)
	})
}

// UpdateEntry replaces one field of the entry at index.
func (s *Session) UpdateEntry(index int, field, value string) error {
	return s.apply(func(doc *models.Invoice) (*models.Invoice, error) {
		return UpdateEntry(doc, index, field, value)
	})
}

// DeleteEntry removes the entry at index and keeps the editing row pointing
// at the same entry.
func (s *Session) DeleteEntry(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.Loaded() {
		return ErrNotLoaded
	}
	next, err := DeleteEntry(s.doc, index)
	if err != nil {
		return err
	}
	s.doc = next
	switch {
	case s.editing == index:
		s.editing = notEditing
	case s.editing > index:
		s.editing--
	}
	return nil
}

// SetHeaderField edits a header field such as consigneeName or transport.
func (s *Session) SetHeaderField(field, value string) error {
	return s.apply(func(doc *models.Invoice) (*models.Invoice, error) {
		return SetHeaderField(doc, field, value)
	})
}

// BeginEdit puts the entry at index into editing, leaving any other row.
func (s *Session) BeginEdit(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.Loaded() {
		return ErrNotLoaded
	}
	if err := checkIndex(s.doc, index); err != nil {
		return err
	}
	s.editing = index
	return nil
}

// Editing returns the row being edited, if any.
func (s *Session) Editing() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing, s.editing != notEditing
}

// Save overwrites the remote record with the current document and replaces
// the document with the persisted copy. A failed save is logged and leaves
// the session untouched.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.Loaded() {
		return ErrNotLoaded
	}
	saved, err := s.gw.Persist(ctx, s.doc.Clone())
	if err != nil {
		s.logger.Error("error updating invoice", "error", err)
		return err
	}
	s.doc = saved
	s.editing = notEditing
	s.logger.Info("invoice saved", "products", len(saved.Product), "net_total", saved.NetTotal)
	return nil
}

// Print switches to print mode, hands a snapshot to p and switches back
// once p returns, whatever the outcome.
func (s *Session) Print(ctx context.Context, p Printer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.Loaded() {
		return ErrNotLoaded
	}
	s.printing.Store(true)
	defer s.printing.Store(false)

	if err := p.Print(ctx, s.doc.Clone()); err != nil {
		s.logger.Error("error printing invoice", "error", err)
		return err
	}
	return nil
}

// Printing reports whether the session is in print mode. It does not take
// the session lock, so a Printer may call it.
func (s *Session) Printing() bool {
	return s.printing.Load()
}

func (s *Session) apply(op func(*models.Invoice) (*models.Invoice, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.Loaded() {
		return ErrNotLoaded
	}
	next, err := op(s.doc)
	if err != nil {
		return err
	}
	s.doc = next
	return nil
}
