package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/formalized/internal/pool"
)

// DefaultSeparator splits text into sentence fragments.
const DefaultSeparator = ". "

// Capitalizer upper-cases the first rune of every fragment between separators.
// The split is purely syntactic: abbreviations, decimals and quoted periods are
// not recognised.
type Capitalizer struct {
	separator string
	builders  *pool.StringBuilderPool
}

// NewCapitalizer creates a capitalizer for the given separator.
func NewCapitalizer(separator string) *Capitalizer {
	return &Capitalizer{
		separator: separator,
		builders:  pool.NewStringBuilderPool(),
	}
}

// Rewrite capitalizes each fragment and rejoins them in order.
func (c *Capitalizer) Rewrite(text string) string {
	fragments := strings.Split(text, c.separator)

	sb := c.builders.Get()
	defer c.builders.Put(sb)
	sb.Grow(len(text))

	for i, fragment := range fragments {
		if i > 0 {
			sb.WriteString(c.separator)
		}
		sb.WriteString(capitalizeFirst(fragment))
	}
	return sb.String()
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
