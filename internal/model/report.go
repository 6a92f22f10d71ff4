package model

import "fmt"

// ErrorKind classifies a recorded BalanceError.
type ErrorKind string

const (
	// KindStructuralImbalance marks a bracket counter that went negative or ended nonzero.
	KindStructuralImbalance ErrorKind = "structural_imbalance"
	// KindDisallowedInclusion marks an #include of a .c source file.
	KindDisallowedInclusion ErrorKind = "disallowed_inclusion"
	// KindFileReadFailure marks a file that could not be read or decoded.
	KindFileReadFailure ErrorKind = "file_read_failure"
)

// BalanceError is a single problem found in one file.
// Line is 1-based; zero means the error is not tied to a line.
type BalanceError struct {
	Line    int       `yaml:"line,omitempty"`
	Kind    ErrorKind `yaml:"kind"`
	Message string    `yaml:"message"`
}

func (e BalanceError) String() string {
	if e.Line > 0 {
		return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
	}

	return e.Message
}

// FileError is a BalanceError attributed to the file it was found in.
type FileError struct {
	File         Path `yaml:"file"`
	BalanceError `yaml:",inline"`
}

func (e FileError) String() string {
	return fmt.Sprintf("%s: %s", e.File, e.BalanceError)
}

// FunctionRecord is a function name discovered in a file. Duplicates are kept.
type FunctionRecord struct {
	File Path   `yaml:"file"`
	Name string `yaml:"name"`
}

// ScanResult holds the per-file output of both scanners.
type ScanResult struct {
	Errors    []BalanceError
	Functions []string
}

// RunReport aggregates the results of one tree walk.
type RunReport struct {
	Root      Path             `yaml:"root"`
	Files     []Path           `yaml:"files"`
	Errors    []FileError      `yaml:"errors"`
	Functions []FunctionRecord `yaml:"functions"`
}

// Passed reports whether the run found no errors. Functions never affect it.
func (r RunReport) Passed() bool {
	return len(r.Errors) == 0
}

// Add records the scan result of one file.
func (r *RunReport) Add(file Path, result ScanResult) {
	r.Files = append(r.Files, file)

	for _, e := range result.Errors {
		r.Errors = append(r.Errors, FileError{File: file, BalanceError: e})
	}

	for _, name := range result.Functions {
		r.Functions = append(r.Functions, FunctionRecord{File: file, Name: name})
	}
}
