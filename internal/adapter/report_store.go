package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/checksyntax/internal/model"
)

// ReportStore persists run reports so they can be archived by a pipeline and
// rendered again later.
type ReportStore interface {
	SaveReport(path m.Path, report m.RunReport) error
	LoadReport(path m.Path) (m.RunReport, error)
}

// storedReport adds the derived verdict to the file for consumers that only
// read YAML. It is recomputed on load.
type storedReport struct {
	m.RunReport `yaml:",inline"`
	Passed      bool `yaml:"passed"`
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to path, creating parent directories as needed.
func (s *YAMLReportStore) SaveReport(path m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(storedReport{RunReport: report, Passed: report.Passed()})
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.RunReport, error) {
	// #nosec G304 - report path is provided by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var stored storedReport
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return m.RunReport{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return stored.RunReport, nil
}
