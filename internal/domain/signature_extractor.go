package domain

import "regexp"

// SignatureExtractor lists likely function declarations and definitions in a
// file's text, in order of appearance. Duplicates are preserved.
type SignatureExtractor interface {
	Extract(content string) []string
}

// DefaultSignaturePattern matches optional static/inline qualifiers, one or more
// type tokens, an optional pointer marker, the function name (group 1), a
// parameter list and either '{' or ';'. \s may cross line breaks.
var DefaultSignaturePattern = regexp.MustCompile(
	`(?m)^\s*(?:static\s+)?(?:inline\s+)?(?:\w+\s+)+\*?\s*(\w+)\s*\([^)]*\)\s*(?:\{|;)`,
)

type regexSignatureExtractor struct {
	pattern *regexp.Regexp
}

// NewSignatureExtractor returns an extractor using DefaultSignaturePattern.
func NewSignatureExtractor() SignatureExtractor {
	return NewRegexSignatureExtractor(DefaultSignaturePattern)
}

// NewRegexSignatureExtractor returns an extractor reporting the first capture
// group of every non-overlapping match of pattern.
func NewRegexSignatureExtractor(pattern *regexp.Regexp) SignatureExtractor {
	return &regexSignatureExtractor{pattern: pattern}
}

func (e *regexSignatureExtractor) Extract(content string) []string {
	matches := e.pattern.FindAllStringSubmatch(content, -1)

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		if len(match) < 2 {
			continue
		}

		names = append(names, match[1])
	}

	return names
}
