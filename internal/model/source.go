// Package model defines the data structures shared by the syntax pre-check.
package model

// Path represents a file system path.
type Path string

// SourceFile is an eligible source file discovered under the checked root.
type SourceFile struct {
	Path Path
}
