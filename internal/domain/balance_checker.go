package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "gooze.dev/pkg/checksyntax/internal/model"
)

// BalanceChecker reports structural problems in a single file's text.
type BalanceChecker interface {
	Check(content string) []m.BalanceError
}

type bracketKind struct {
	name  string
	open  string
	close string
}

// Reported in this order at end of file.
var bracketKinds = [...]bracketKind{
	{name: "square brackets", open: "[", close: "]"},
	{name: "braces", open: "{", close: "}"},
	{name: "parentheses", open: "(", close: ")"},
}

var sourceIncludePattern = regexp.MustCompile(`#include\s*(?:<[^>\n]*\.c>|"[^"\n]*\.c")`)

type balanceChecker struct{}

// NewBalanceChecker returns the line-based bracket balance checker.
//
// Lines whose first non-blank characters are "//" or "/*" are skipped entirely.
// That is the only comment handling: a block comment is recognised by its
// opening line and brackets inside string literals are counted as code.
func NewBalanceChecker() BalanceChecker {
	return &balanceChecker{}
}

func (c *balanceChecker) Check(content string) []m.BalanceError {
	var (
		errs   []m.BalanceError
		counts [len(bracketKinds)]int
	)

	for i, line := range splitLines(content) {
		if isCommentLine(line) {
			continue
		}

		var unmatched []string

		for k, kind := range bracketKinds {
			counts[k] += strings.Count(line, kind.open) - strings.Count(line, kind.close)
			if counts[k] < 0 {
				unmatched = append(unmatched, "'"+kind.close+"'")
			}
		}

		if len(unmatched) > 0 {
			errs = append(errs, m.BalanceError{
				Line:    i + 1,
				Kind:    m.KindStructuralImbalance,
				Message: "bracket mismatch: unmatched " + strings.Join(unmatched, ", "),
			})
		}
	}

	for k, kind := range bracketKinds {
		if counts[k] != 0 {
			errs = append(errs, m.BalanceError{
				Kind:    m.KindStructuralImbalance,
				Message: fmt.Sprintf("unbalanced %s: %d", kind.name, counts[k]),
			})
		}
	}

	if sourceIncludePattern.MatchString(content) {
		errs = append(errs, m.BalanceError{
			Kind:    m.KindDisallowedInclusion,
			Message: "including .c files is not allowed",
		})
	}

	return errs
}

// splitLines returns the physical lines of content. A final newline ends the
// last line rather than starting an empty one.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*")
}
