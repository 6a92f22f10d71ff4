// Package domain implements the syntax pre-check: the per-file balance and
// signature scans and the tree walk that aggregates them into a verdict.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gooze.dev/pkg/checksyntax/internal/adapter"
	"gooze.dev/pkg/checksyntax/internal/controller"
	m "gooze.dev/pkg/checksyntax/internal/model"
)

// ErrCheckFailed is returned by callers when a run recorded at least one error.
var ErrCheckFailed = errors.New("syntax check failed")

// CheckArgs contains the arguments for a check run.
type CheckArgs struct {
	Root   m.Path
	Report m.Path // optional YAML export destination
}

// ViewArgs contains the arguments for rendering a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow drives a whole check run.
//
//go:generate mockery --name=Workflow --structname=MockWorkflow --output=mocks --outpkg=mocks --filename=workflow.go
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) (m.RunReport, error)
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	BalanceChecker
	SignatureExtractor
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	checker BalanceChecker,
	extractor SignatureExtractor,
) Workflow {
	return &workflow{
		SourceFSAdapter:    fsAdapter,
		ReportStore:        reportStore,
		UI:                 ui,
		BalanceChecker:     checker,
		SignatureExtractor: extractor,
	}
}

// Check walks args.Root, scans every eligible file and displays the report.
// The returned error covers infrastructure failures only; the verdict is
// report.Passed().
func (w *workflow) Check(ctx context.Context, args CheckArgs) (m.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return m.RunReport{}, err
	}

	info, err := w.FileInfo(args.Root)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return m.RunReport{}, fmt.Errorf("root path %s is not a directory", args.Root)
	}

	sources, err := w.discover(args.Root)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("walk %s: %w", args.Root, err)
	}

	report := m.RunReport{Root: args.Root}

	for _, source := range sources {
		w.DisplayCheckingFile(ctx, source.Path)
		report.Add(source.Path, w.scan(source))
	}

	slog.Info("check complete",
		"root", args.Root,
		"files", len(report.Files),
		"errors", len(report.Errors),
		"functions", len(report.Functions),
	)

	if err := w.DisplayReport(ctx, report); err != nil {
		return report, fmt.Errorf("display report: %w", err)
	}

	if args.Report != "" {
		if err := w.SaveReport(args.Report, report); err != nil {
			return report, fmt.Errorf("save report: %w", err)
		}

		slog.Debug("saved report", "path", args.Report)
	}

	return report, nil
}

// View renders a report saved by a previous Check.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.DisplayReport(ctx, report)
}

// discover lists eligible files in walk order, pruning excluded directories.
func (w *workflow) discover(root m.Path) ([]m.SourceFile, error) {
	var sources []m.SourceFile

	err := w.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unlistable directories are skipped, the rest of the tree is still checked.
			slog.Warn("skipping unreadable path", "path", path, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			if path != string(root) && IsExcludedDir(info.Name()) {
				slog.Debug("pruning excluded directory", "path", path)
				return filepath.SkipDir
			}

			return nil
		}

		if IsEligible(info.Name()) {
			sources = append(sources, m.SourceFile{Path: m.Path(path)})
		}

		return nil
	})

	return sources, err
}

// scan runs both scanners over one file. A read or decode failure becomes the
// file's only error.
func (w *workflow) scan(source m.SourceFile) m.ScanResult {
	slog.Debug("checking file", "path", source.Path)

	data, err := w.ReadFile(source.Path)
	if err == nil && !utf8.Valid(data) {
		err = errors.New("content is not valid UTF-8")
	}

	if err != nil {
		slog.Warn("failed to read source file", "path", source.Path, "error", err)

		return m.ScanResult{Errors: []m.BalanceError{{
			Kind:    m.KindFileReadFailure,
			Message: fmt.Sprintf("read file error: %v", err),
		}}}
	}

	content := string(data)

	return m.ScanResult{
		Errors:    w.BalanceChecker.Check(content),
		Functions: w.Extract(content),
	}
}
