package render

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

var columns = []struct {
	title string
	width float64
	align string
}{
	{"SR.NO.", 14, "C"},
	{"PRODUCT NAME", 52, "L"},
	{"QUANTITY", 22, "R"},
	{"PACKING", 24, "L"},
	{"PCS/NOS", 22, "L"},
	{"RATE", 24, "R"},
	{"AMOUNT", 32, "R"},
}

// PDF writes the invoice as a single A4 document.
func PDF(w io.Writer, s Sheet) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Proforma Invoice", true)
	pdf.SetCreator(s.Company, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Letterhead
	pdf.SetTextColor(21, 128, 61)
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, tr(s.Company), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr(s.Tagline), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	pdf.SetFillColor(187, 247, 208)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 7, tr("DATE : "+s.Date), "", 1, "L", true, 0, "")
	pdf.Ln(2)

	// Consigner / consignee
	inv := s.Invoice
	half := 95.0
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(half, 6, "CONSIGNER DETAILS:", "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, "CONSIGNEE DETAILS:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	parties := [][2]string{
		{"Name: " + inv.ConsignerName, "Name: " + inv.ConsigneeName},
		{"Address: " + inv.ConsignerAddress, "Location: " + inv.ConsigneeLocation},
		{"Email: " + inv.ConsignerEmail, "GST No: " + inv.ConsigneeGst},
	}
	for _, p := range parties {
		pdf.CellFormat(half, 5, tr(p[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 5, tr(p[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// Product table
	pdf.SetFillColor(253, 224, 71)
	pdf.SetFont("Arial", "B", 9)
	for _, c := range columns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, r := range s.Rows {
		cells := []string{strconv.Itoa(r.SrNo), r.ProductName, r.Quantity, r.Packing, r.Pcs, r.Rate, r.Amount}
		for i, c := range columns {
			pdf.CellFormat(c.width, 6, tr(cells[i]), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)

	// Totals
	third := 190.0 / 3
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(third, 7, "GROSS TOTAL: "+inv.GrossTotal, "", 0, "L", false, 0, "")
	pdf.CellFormat(third, 7, "GST @5%: "+inv.Gst, "", 0, "L", false, 0, "")
	pdf.CellFormat(third, 7, "NET TOTAL: "+inv.NetTotal, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, tr("Transport: "+inv.Transport), "", "L", false)
	pdf.MultiCell(0, 5, tr("Note: "+inv.Note), "", "L", false)
	pdf.Ln(2)

	// Terms
	pdf.SetFillColor(134, 239, 172)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(0, 5, "Terms & Conditions :", "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 8)
	for _, t := range s.Terms {
		pdf.CellFormat(0, 5, tr("- "+t), "", 1, "L", true, 0, "")
	}
	pdf.Ln(2)

	// Bank details and closing
	pdf.SetFillColor(254, 240, 138)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(70, 5, tr(s.Company), "", 0, "L", true, 0, "")
	pdf.CellFormat(120, 5, tr(s.Closing), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 8)
	bank := []string{
		"BANK NAME: " + s.BankName,
		"BRANCH: " + s.Branch,
		"A/C No: " + s.AccountNo,
		"IFSC Code: " + s.IFSC,
	}
	right := []string{s.Disclaimer, "", s.Signatory, ""}
	for i := range bank {
		pdf.CellFormat(70, 5, tr(bank[i]), "", 0, "L", true, 0, "")
		if i == 2 {
			pdf.SetFont("Arial", "B", 8)
		}
		pdf.CellFormat(120, 5, tr(right[i]), "", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 8)
	}

	return pdf.Output(w)
}
