package remote

import (
	"regexp"
	"strings"

	"github.com/baditaflorin/formalized/internal/ports"
)

var (
	fencePattern    = regexp.MustCompile("(?s)^```[A-Za-z0-9_-]*\\s*\\n(.*?)\\n?```$")
	blankRunPattern = regexp.MustCompile(`\n{3,}`)
)

// OutputSanitizer strips the wrapping models tend to add around an answer:
// surrounding whitespace, one markdown code fence, one pair of quotes, and
// runs of blank lines. Text inside the answer is not touched.
type OutputSanitizer struct{}

// NewOutputSanitizer returns the default sanitizer.
func NewOutputSanitizer() ports.Sanitizer {
	return OutputSanitizer{}
}

// Sanitize implements ports.Sanitizer.
func (OutputSanitizer) Sanitize(text string) string {
	t := strings.ReplaceAll(text, "\r\n", "\n")
	t = strings.TrimSpace(t)

	if m := fencePattern.FindStringSubmatch(t); m != nil {
		t = strings.TrimSpace(m[1])
	}
	t = unquote(t)
	t = blankRunPattern.ReplaceAllString(t, "\n\n")
	return strings.TrimSpace(t)
}

func unquote(s string) string {
	for _, pair := range [][2]string{{`"`, `"`}, {"'", "'"}, {"“", "”"}} {
		if len(s) >= len(pair[0])+len(pair[1]) &&
			strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) {
			inner := s[len(pair[0]) : len(s)-len(pair[1])]
			// Leave text such as "a" and "b" alone.
			if !strings.Contains(inner, pair[0]) && !strings.Contains(inner, pair[1]) {
				return inner
			}
		}
	}
	return s
}

// VerbatimSanitizer returns model output unchanged.
type VerbatimSanitizer struct{}

// Sanitize implements ports.Sanitizer.
func (VerbatimSanitizer) Sanitize(text string) string {
	return text
}
