package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/satheeshds/proforma/config"
	ierr "github.com/satheeshds/proforma/errors"
	"github.com/satheeshds/proforma/gateway"
	"github.com/satheeshds/proforma/invoice"
	"github.com/satheeshds/proforma/models"
	"github.com/satheeshds/proforma/render"
	"github.com/urfave/cli/v2"
)

func newApp(cfg *config.Config, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:            "proforma",
		Usage:           "edit and print the proforma invoice",
		Writer:          stdout,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "proforma invoice REST endpoint",
				Value: cfg.Endpoint,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "request timeout, 0 for none",
				Value: cfg.Timeout,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "print the header, products and totals",
				Action: showAction,
			},
			{
				Name:  "add",
				Usage: "add a product entry",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "product name"},
					&cli.StringFlag{Name: "quantity"},
					&cli.StringFlag{Name: "packing"},
					&cli.StringFlag{Name: "pcs"},
					&cli.StringFlag{Name: "rate"},
				},
				Action: addAction,
			},
			{
				Name:  "update",
				Usage: "change one field of a product entry",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "row", Usage: "SR.NO. of the entry", Required: true},
					&cli.StringFlag{Name: "field", Usage: "productName, quantity, packing, pcs or rate", Required: true},
					&cli.StringFlag{Name: "value"},
				},
				Action: updateAction,
			},
			{
				Name:  "delete",
				Usage: "remove a product entry",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "row", Usage: "SR.NO. of the entry", Required: true},
				},
				Action: deleteAction,
			},
			{
				Name:  "set",
				Usage: "change a header field",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "field", Required: true},
					&cli.StringFlag{Name: "value"},
				},
				Action: setAction,
			},
			{
				Name:  "print",
				Usage: "write the printable invoice to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: string(render.FormatPDF), Usage: "pdf or html"},
					&cli.StringFlag{Name: "out", Value: "proforma-invoice.pdf", Usage: "output file, - for stdout"},
				},
				Action: printAction,
			},
		},
	}
}

// openSession loads the invoice through the gateway configured on c.
func openSession(c *cli.Context) (*invoice.Session, error) {
	gw := gateway.New(c.String("endpoint"), c.Duration("timeout"))
	sess := invoice.NewSession(gw, slog.Default())
	if err := sess.Load(c.Context); err != nil {
		return nil, err
	}
	if !sess.Loaded() {
		return nil, invoice.ErrNotLoaded
	}
	return sess, nil
}

// edit loads the invoice, applies op and saves the result.
func edit(c *cli.Context, op func(*invoice.Session) error) error {
	sess, err := openSession(c)
	if err != nil {
		return err
	}
	if err := op(sess); err != nil {
		return err
	}
	if err := sess.Save(c.Context); err != nil {
		return err
	}
	return writeInvoice(c.App.Writer, sess.Document())
}

// rowIndex converts a 1-based SR.NO. into a slice index.
func rowIndex(c *cli.Context) int {
	return c.Int("row") - 1
}

func showAction(c *cli.Context) error {
	sess, err := openSession(c)
	if err != nil {
		return err
	}
	return writeInvoice(c.App.Writer, sess.Document())
}

func addAction(c *cli.Context) error {
	entry := models.ProductEntry{
		ProductName: c.String("name"),
		Quantity:    c.String("quantity"),
		Packing:     c.String("packing"),
		Pcs:         c.String("pcs"),
		Rate:        c.String("rate"),
	}
	return edit(c, func(s *invoice.Session) error {
		return s.AddEntry(entry)
	})
}

func updateAction(c *cli.Context) error {
	index := rowIndex(c)
	return edit(c, func(s *invoice.Session) error {
		if err := s.BeginEdit(index); err != nil {
			return err
		}
		return s.UpdateEntry(index, c.String("field"), c.String("value"))
	})
}

func deleteAction(c *cli.Context) error {
	index := rowIndex(c)
	return edit(c, func(s *invoice.Session) error {
		return s.DeleteEntry(index)
	})
}

func setAction(c *cli.Context) error {
	return edit(c, func(s *invoice.Session) error {
		return s.SetHeaderField(c.String("field"), c.String("value"))
	})
}

func printAction(c *cli.Context) error {
	format := render.Format(c.String("format"))
	if format != render.FormatPDF && format != render.FormatHTML {
		return ierr.NewError("unsupported print format").
			WithHintf("Unknown print format %q, use pdf or html", format).
			Mark(ierr.ErrValidation)
	}

	sess, err := openSession(c)
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "-" {
		return sess.Print(c.Context, render.Printer{W: c.App.Writer, Format: format, Letterhead: render.DefaultLetterhead})
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := sess.Print(c.Context, render.Printer{W: f, Format: format, Letterhead: render.DefaultLetterhead}); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("invoice printed", "file", out, "format", format)
	return nil
}

// writeInvoice prints doc as aligned text columns.
func writeInvoice(w io.Writer, doc *models.Invoice) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "DATE\t%s\n", doc.Date)
	fmt.Fprintf(tw, "CONSIGNER\t%s\n", doc.ConsignerName)
	fmt.Fprintf(tw, "ADDRESS\t%s\n", doc.ConsignerAddress)
	fmt.Fprintf(tw, "EMAIL\t%s\n", doc.ConsignerEmail)
	fmt.Fprintf(tw, "CONSIGNEE\t%s\n", doc.ConsigneeName)
	fmt.Fprintf(tw, "LOCATION\t%s\n", doc.ConsigneeLocation)
	fmt.Fprintf(tw, "GSTIN\t%s\n", doc.ConsigneeGst)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "SR.NO.\tPRODUCT NAME\tQUANTITY\tPACKING\tPCS\tRATE\tAMOUNT")
	for i, p := range doc.Product {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", i+1, p.ProductName, p.Quantity, p.Packing, p.Pcs, p.Rate, p.Amount)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "GROSS TOTAL\t%s\n", doc.GrossTotal)
	fmt.Fprintf(tw, "GST @5%%\t%s\n", doc.Gst)
	fmt.Fprintf(tw, "NET TOTAL\t%s\n", doc.NetTotal)
	fmt.Fprintf(tw, "TRANSPORT\t%s\n", doc.Transport)
	fmt.Fprintf(tw, "NOTE\t%s\n", doc.Note)
	return tw.Flush()
}
