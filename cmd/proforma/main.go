// Command proforma edits and prints the proforma invoice through the
// invoice server's REST gateway.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/satheeshds/proforma/config"
	ierr "github.com/satheeshds/proforma/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if err := newApp(cfg, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ierr.DisplayMessage(err))
		os.Exit(1)
	}
}
