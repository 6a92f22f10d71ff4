package domain

import "github.com/gobwas/glob"

// Name prefixes of the tool's own files, which are never checked. The legacy
// script name is kept so trees that still ship it stay excluded.
const (
	SelfPrefix       = "checksyntax"
	LegacySelfPrefix = "check_syntax"
)

var (
	sourceGlob = glob.MustCompile("*.c")
	selfGlob   = glob.MustCompile("{" + SelfPrefix + "," + LegacySelfPrefix + "}*")
)

// Directories never descended into: VCS metadata, build output, bytecode cache.
var excludedDirs = map[string]struct{}{
	".git":        {},
	"build":       {},
	"__pycache__": {},
}

// IsEligible reports whether a file with the given base name is checked.
func IsEligible(name string) bool {
	return sourceGlob.Match(name) && !selfGlob.Match(name)
}

// IsExcludedDir reports whether a directory with the given base name is pruned.
func IsExcludedDir(name string) bool {
	_, ok := excludedDirs[name]
	return ok
}
