package invoice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/satheeshds/proforma/models"
	"github.com/shopspring/decimal"
)

// GSTRate is the fixed tax rate applied to the gross total.
var GSTRate = decimal.RequireFromString("0.05")

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Totals holds the derived aggregate amounts of an invoice.
type Totals struct {
	Gross decimal.Decimal
	GST   decimal.Decimal
	Net   decimal.Decimal
}

// ParseNumber reads the leading number of s. Blank or non-numeric text is 0,
// and so is a number outside the float64 range.
func ParseNumber(s string) decimal.Decimal {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero
	}
	m = strings.TrimSuffix(m, ".")
	// bounds the exponent before decimal expands it
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || f == 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 rounds d to two decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatMoney renders d with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// LineAmount computes round2(quantity x rate) for one entry.
func LineAmount(quantity, rate string) decimal.Decimal {
	return Round2(ParseNumber(quantity).Mul(ParseNumber(rate)))
}

// ComputeTotals sums the entry amounts and derives GST and net total from
// the gross. It never fails: malformed amounts count as 0.
func ComputeTotals(entries []models.ProductEntry) Totals {
	gross := decimal.Zero
	for _, e := range entries {
		gross = gross.Add(ParseNumber(e.Amount))
	}
	gross = Round2(gross)
	gst := Round2(gross.Mul(GSTRate))
	return Totals{
		Gross: gross,
		GST:   gst,
		Net:   Round2(gross.Add(gst)),
	}
}

func (t Totals) apply(doc *models.Invoice) {
	doc.GrossTotal = FormatMoney(t.Gross)
	doc.Gst = FormatMoney(t.GST)
	doc.NetTotal = FormatMoney(t.Net)
}
