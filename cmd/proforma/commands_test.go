package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/satheeshds/proforma/config"
	ierr "github.com/satheeshds/proforma/errors"
	"github.com/satheeshds/proforma/invoice"
	"github.com/satheeshds/proforma/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryServer serves one invoice record the way the REST gateway does.
type memoryServer struct {
	mu   sync.Mutex
	doc  *models.Invoice
	puts int
}

func (m *memoryServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch r.Method {
	case http.MethodGet:
	case http.MethodPut:
		var doc models.Invoice
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON"})
			return
		}
		m.doc = invoice.Normalize(&doc)
		m.puts++
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	json.NewEncoder(w).Encode(map[string]any{"data": m.doc})
}

func (m *memoryServer) current() *models.Invoice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc.Clone()
}

func (m *memoryServer) putCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

func setup(t *testing.T, doc *models.Invoice) (*memoryServer, func(args ...string) (string, error)) {
	t.Helper()
	mem := &memoryServer{doc: doc}
	srv := httptest.NewServer(mem)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Endpoint: srv.URL}
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		err := newApp(cfg, &out).Run(append([]string{"proforma"}, args...))
		return out.String(), err
	}
	return mem, run
}

func seeded() *models.Invoice {
	return invoice.Normalize(&models.Invoice{
		ConsignerName: "AGRI SCIENCE CO.",
		Product: []models.ProductEntry{
			{ProductName: "A", Quantity: "2", Rate: "100"},
			{ProductName: "B", Quantity: "1", Rate: "50"},
		},
	})
}

func TestShow(t *testing.T) {
	mem, run := setup(t, seeded())

	out, err := run("show")
	require.NoError(t, err)
	assert.Contains(t, out, "AGRI SCIENCE CO.")
	assert.Contains(t, out, "SR.NO.")
	assert.Contains(t, out, "262.50")
	assert.Zero(t, mem.putCount())
}

func TestAddSavesRecomputedTotals(t *testing.T) {
	mem, run := setup(t, &models.Invoice{Product: []models.ProductEntry{}, GrossTotal: "0.00", Gst: "0.00", NetTotal: "0.00"})

	_, err := run("add", "--name", "A", "--quantity", "2", "--rate", "100")
	require.NoError(t, err)
	_, err = run("add", "--name", "B", "--quantity", "1", "--rate", "50")
	require.NoError(t, err)

	require.Len(t, mem.current().Product, 2)
	assert.Equal(t, "250.00", mem.current().GrossTotal)
	assert.Equal(t, "12.50", mem.current().Gst)
	assert.Equal(t, "262.50", mem.current().NetTotal)
}

func TestAddWithoutNameDoesNotSave(t *testing.T) {
	mem, run := setup(t, seeded())

	_, err := run("add", "--name", "  ", "--quantity", "3", "--rate", "10")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.Equal(t, "Please enter product name", ierr.DisplayMessage(err))
	assert.Zero(t, mem.putCount())
	assert.Len(t, mem.current().Product, 2)
}

func TestUpdateUsesOneBasedRow(t *testing.T) {
	mem, run := setup(t, seeded())

	_, err := run("update", "--row", "1", "--field", "rate", "--value", "150")
	require.NoError(t, err)

	assert.Equal(t, "300.00", mem.current().Product[0].Amount)
	assert.Equal(t, "350.00", mem.current().GrossTotal)
	assert.Equal(t, "17.50", mem.current().Gst)
	assert.Equal(t, "367.50", mem.current().NetTotal)
}

func TestUpdateRejectsBadRowAndAmount(t *testing.T) {
	mem, run := setup(t, seeded())

	_, err := run("update", "--row", "3", "--field", "rate", "--value", "1")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))

	_, err = run("update", "--row", "1", "--field", "amount", "--value", "1")
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))
	assert.Zero(t, mem.putCount())
}

func TestDelete(t *testing.T) {
	mem, run := setup(t, seeded())

	_, err := run("delete", "--row", "1")
	require.NoError(t, err)

	require.Len(t, mem.current().Product, 1)
	assert.Equal(t, "B", mem.current().Product[0].ProductName)
	assert.Equal(t, "52.50", mem.current().NetTotal)
}

func TestSetHeaderField(t *testing.T) {
	mem, run := setup(t, seeded())

	_, err := run("set", "--field", "transport", "--value", "VRL Logistics")
	require.NoError(t, err)
	assert.Equal(t, "VRL Logistics", mem.current().Transport)
	assert.Equal(t, "262.50", mem.current().NetTotal)

	_, err = run("set", "--field", "netTotal", "--value", "1")
	assert.True(t, ierr.IsInvalidOperation(err))
}

func TestPrintToFile(t *testing.T) {
	mem, run := setup(t, seeded())
	out := filepath.Join(t.TempDir(), "invoice.html")

	_, err := run("print", "--format", "html", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "262.50")
	assert.Zero(t, mem.putCount())

	stdout, err := run("print", "--format", "pdf", "--out", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "%PDF-"))
}

func TestPrintRejectsUnknownFormat(t *testing.T) {
	_, run := setup(t, seeded())
	out := filepath.Join(t.TempDir(), "invoice.txt")

	_, err := run("print", "--format", "txt", "--out", out)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.NoFileExists(t, out)
}

func TestUnreachableGateway(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var out bytes.Buffer
	err := newApp(&config.Config{Endpoint: url}, &out).Run([]string{"proforma", "show"})
	require.Error(t, err)
	assert.True(t, ierr.IsHTTPClient(err))
}
