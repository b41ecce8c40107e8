package invoice

import (
	"testing"
	"time"

	ierr "github.com/satheeshds/proforma/errors"
	"github.com/satheeshds/proforma/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyInvoice() *models.Invoice {
	return Normalize(&models.Invoice{ConsignerName: "AGRI SCIENCE CO."})
}

// sample builds [{qty:2,rate:100},{qty:1,rate:50}].
func sample(t *testing.T) *models.Invoice {
	t.Helper()
	doc, err := AddEntry(emptyInvoice(), models.ProductEntry{ProductName: "Urea", Quantity: "2", Packing: "50kg", Pcs: "2", Rate: "100"})
	require.NoError(t, err)
	doc, err = AddEntry(doc, models.ProductEntry{ProductName: "DAP", Quantity: "1", Packing: "25kg", Pcs: "1", Rate: "50"})
	require.NoError(t, err)
	return doc
}

func TestAddEntryComputesAmountsAndTotals(t *testing.T) {
	doc := sample(t)

	require.Len(t, doc.Product, 2)
	assert.Equal(t, "200.00", doc.Product[0].Amount)
	assert.Equal(t, "50.00", doc.Product[1].Amount)
	assert.Equal(t, "250.00", doc.GrossTotal)
	assert.Equal(t, "12.50", doc.Gst)
	assert.Equal(t, "262.50", doc.NetTotal)
	assert.Equal(t, "AGRI SCIENCE CO.", doc.ConsignerName)
}

func TestAddEntryIgnoresSuppliedAmount(t *testing.T) {
	doc, err := AddEntry(emptyInvoice(), models.ProductEntry{ProductName: "Potash", Quantity: "3", Rate: "10", Amount: "999.99"})
	require.NoError(t, err)
	assert.Equal(t, "30.00", doc.Product[0].Amount)
	assert.Equal(t, "30.00", doc.GrossTotal)
}

func TestAddEntryAppendsInOrder(t *testing.T) {
	doc := sample(t)
	doc, err := AddEntry(doc, models.ProductEntry{ProductName: "Zinc", Quantity: "", Rate: ""})
	require.NoError(t, err)

	names := []string{doc.Product[0].ProductName, doc.Product[1].ProductName, doc.Product[2].ProductName}
	assert.Equal(t, []string{"Urea", "DAP", "Zinc"}, names)
	assert.Equal(t, "0.00", doc.Product[2].Amount)
	assert.Equal(t, "250.00", doc.GrossTotal)
}

func TestAddEntryRejectsEmptyName(t *testing.T) {
	doc := sample(t)
	before := doc.Clone()

	for _, name := range []string{"", "   "} {
		next, err := AddEntry(doc, models.ProductEntry{ProductName: name, Quantity: "5", Rate: "5"})
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
		assert.Equal(t, "Please enter product name", ierr.DisplayMessage(err))
		assert.Nil(t, next)
	}
	assert.Equal(t, before, doc)
}

func TestAddEntryHugeExponentCoercesToZero(t *testing.T) {
	for _, q := range []string{"1e400", "1e100000", "1e10000000", "1e999999999", "1e-999999999"} {
		start := time.Now()
		doc, err := AddEntry(emptyInvoice(), models.ProductEntry{ProductName: "Urea", Quantity: q, Rate: "1"})
		require.NoError(t, err)
		assert.Less(t, time.Since(start), time.Second, q)
		assert.Equal(t, "0.00", doc.Product[0].Amount, q)
		assert.Equal(t, "0.00", doc.NetTotal, q)
	}
}

func TestAddEntryDoesNotMutateInput(t *testing.T) {
	doc := sample(t)
	before := doc.Clone()
	_, err := AddEntry(doc, models.ProductEntry{ProductName: "Zinc", Quantity: "1", Rate: "1"})
	require.NoError(t, err)
	assert.Equal(t, before, doc)
}

func TestAddThenDeleteRestoresTotals(t *testing.T) {
	doc := sample(t)
	added, err := AddEntry(doc, models.ProductEntry{ProductName: "Zinc", Quantity: "7", Rate: "13.37"})
	require.NoError(t, err)
	assert.NotEqual(t, doc.GrossTotal, added.GrossTotal)

	restored, err := DeleteEntry(added, len(added.Product)-1)
	require.NoError(t, err)
	assert.Equal(t, doc.GrossTotal, restored.GrossTotal)
	assert.Equal(t, doc.Gst, restored.Gst)
	assert.Equal(t, doc.NetTotal, restored.NetTotal)
	assert.Equal(t, doc.Product, restored.Product)
}

func TestDeleteFirstEntry(t *testing.T) {
	doc, err := DeleteEntry(sample(t), 0)
	require.NoError(t, err)

	require.Len(t, doc.Product, 1)
	assert.Equal(t, "DAP", doc.Product[0].ProductName)
	assert.Equal(t, "1", doc.Product[0].Quantity)
	assert.Equal(t, "50", doc.Product[0].Rate)
	assert.Equal(t, "50.00", doc.Product[0].Amount)
	assert.Equal(t, "50.00", doc.GrossTotal)
	assert.Equal(t, "2.50", doc.Gst)
	assert.Equal(t, "52.50", doc.NetTotal)
}

func TestDeleteLastEntryLeavesZeroTotals(t *testing.T) {
	doc, err := AddEntry(emptyInvoice(), models.ProductEntry{ProductName: "Urea", Quantity: "1", Rate: "10"})
	require.NoError(t, err)
	doc, err = DeleteEntry(doc, 0)
	require.NoError(t, err)

	assert.Empty(t, doc.Product)
	assert.True(t, doc.Loaded())
	assert.Equal(t, "0.00", doc.GrossTotal)
	assert.Equal(t, "0.00", doc.Gst)
	assert.Equal(t, "0.00", doc.NetTotal)
}

func TestDeleteEntryOutOfRange(t *testing.T) {
	doc := sample(t)
	for _, idx := range []int{-1, 2, 10} {
		next, err := DeleteEntry(doc, idx)
		require.Error(t, err)
		assert.True(t, ierr.IsNotFound(err))
		assert.Nil(t, next)
	}
	assert.Len(t, doc.Product, 2)
}

func TestUpdateRateRecomputesAmount(t *testing.T) {
	doc, err := UpdateEntry(sample(t), 0, models.FieldRate, "150")
	require.NoError(t, err)

	assert.Equal(t, "150", doc.Product[0].Rate)
	assert.Equal(t, "300.00", doc.Product[0].Amount)
	assert.Equal(t, "350.00", doc.GrossTotal)
	assert.Equal(t, "17.50", doc.Gst)
	assert.Equal(t, "367.50", doc.NetTotal)
}

func TestUpdateQuantityToGarbageCoercesToZero(t *testing.T) {
	doc, err := UpdateEntry(sample(t), 1, models.FieldQuantity, "lots")
	require.NoError(t, err)

	assert.Equal(t, "lots", doc.Product[1].Quantity)
	assert.Equal(t, "0.00", doc.Product[1].Amount)
	assert.Equal(t, "200.00", doc.GrossTotal)
}

func TestUpdateNonAmountFieldKeepsTotals(t *testing.T) {
	doc := sample(t)
	for _, field := range []string{models.FieldPacking, models.FieldPcs, models.FieldProductName} {
		next, err := UpdateEntry(doc, 0, field, "changed")
		require.NoError(t, err, field)
		assert.Equal(t, doc.Product[0].Amount, next.Product[0].Amount, field)
		assert.Equal(t, doc.GrossTotal, next.GrossTotal, field)
		assert.Equal(t, doc.Gst, next.Gst, field)
		assert.Equal(t, doc.NetTotal, next.NetTotal, field)
	}
}

func TestUpdateEntryRejectsDerivedAndUnknownFields(t *testing.T) {
	doc := sample(t)

	_, err := UpdateEntry(doc, 0, models.FieldAmount, "1.00")
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))

	_, err = UpdateEntry(doc, 0, "discount", "5")
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))

	_, err = UpdateEntry(doc, 5, models.FieldRate, "1")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestSetHeaderField(t *testing.T) {
	doc := sample(t)
	next, err := SetHeaderField(doc, models.FieldTransport, "VRL Logistics")
	require.NoError(t, err)
	assert.Equal(t, "VRL Logistics", next.Transport)
	assert.Equal(t, "", doc.Transport)
	assert.Equal(t, doc.Product, next.Product)
	assert.Equal(t, doc.NetTotal, next.NetTotal)

	_, err = SetHeaderField(doc, "netTotal", "1.00")
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))
}

func TestNormalize(t *testing.T) {
	doc := &models.Invoice{Product: []models.ProductEntry{
		{ProductName: "Urea", Quantity: "2", Rate: "100", Amount: "1.00"},
		{ProductName: "DAP", Quantity: "1", Rate: "50"},
	}, GrossTotal: "5"}

	got := Normalize(doc)
	assert.Equal(t, "200.00", got.Product[0].Amount)
	assert.Equal(t, "50.00", got.Product[1].Amount)
	assert.Equal(t, "250.00", got.GrossTotal)
	assert.Equal(t, "12.50", got.Gst)
	assert.Equal(t, "262.50", got.NetTotal)

	assert.Equal(t, got, Normalize(got))
	assert.Equal(t, "1.00", doc.Product[0].Amount)
}

func TestNormalizeNilProduct(t *testing.T) {
	got := Normalize(&models.Invoice{Note: "fresh"})
	assert.NotNil(t, got.Product)
	assert.Empty(t, got.Product)
	assert.Equal(t, "0.00", got.NetTotal)
	assert.Equal(t, "fresh", got.Note)
}
