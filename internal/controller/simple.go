package controller

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/checksyntax/internal/model"
)

const (
	bannerTitle   = "Syntax check results:"
	bannerWidth   = 50
	errorsHeader  = "Errors found:"
	noErrorsLine  = "No syntax errors found"
	errorMarker   = "✗"
	unknownSource = "-"
)

// palette decorates report fragments. The plain palette returns text unchanged.
type palette struct {
	banner  func(string) string
	failure func(string) string
	success func(string) string
	muted   func(string) string
}

func identity(s string) string { return s }

var plainPalette = palette{
	banner:  identity,
	failure: identity,
	success: identity,
	muted:   identity,
}

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd     *cobra.Command
	palette palette
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, palette: plainPalette}
}

// DisplayCheckingFile prints a progress line for the file about to be scanned.
func (s *SimpleUI) DisplayCheckingFile(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_ = s.printf("%s\n", s.palette.muted(fmt.Sprintf("Checking %s...", path)))
}

// DisplayReport prints the banner, the error section and the function inventory.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rule := strings.Repeat("=", bannerWidth)
	if err := s.printf("\n%s\n%s\n%s\n", rule, s.palette.banner(bannerTitle), rule); err != nil {
		return err
	}

	if err := s.displayErrors(report.Errors); err != nil {
		return err
	}

	return s.displayFunctions(report.Functions)
}

func (s *SimpleUI) displayErrors(errs []m.FileError) error {
	if len(errs) == 0 {
		return s.printf("%s\n", s.palette.success(noErrorsLine))
	}

	if err := s.printf("%s\n", s.palette.failure(errorsHeader)); err != nil {
		return err
	}

	for _, e := range errs {
		if err := s.printf("  %s\n", s.palette.failure(errorMarker+" "+e.String())); err != nil {
			return err
		}
	}

	return nil
}

func (s *SimpleUI) displayFunctions(functions []m.FunctionRecord) error {
	if err := s.printf("\nFound %d functions:\n", len(functions)); err != nil {
		return err
	}

	if len(functions) == 0 {
		return nil
	}

	return s.printf("%s", renderFunctionTable(functions))
}

func renderFunctionTable(functions []m.FunctionRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Function"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, fn := range functions {
		table.Append([]string{baseName(fn.File), fn.Name})
	}

	table.Render()

	return tableBuffer.String()
}

func baseName(path m.Path) string {
	if path == "" {
		return unknownSource
	}

	return filepath.Base(string(path))
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
