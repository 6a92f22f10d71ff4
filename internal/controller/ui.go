// Package controller provides output adapters for displaying syntax check results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/checksyntax/internal/model"
)

// UI defines the interface for displaying check progress and the final report.
// Implementations can use different output methods (plain text, styled terminal).
type UI interface {
	DisplayCheckingFile(ctx context.Context, path m.Path)
	DisplayReport(ctx context.Context, report m.RunReport) error
}

// NewUI returns a styled UI when writing to a terminal, a plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
