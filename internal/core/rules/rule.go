package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Policy names how a rule produces its replacement.
type Policy string

const (
	// PolicyLiteral replaces every match with one fixed string.
	PolicyLiteral Policy = "literal"
	// PolicyLookup replaces a match with the table entry for its lower-cased form.
	PolicyLookup Policy = "lookup"
)

// Rule is a single case-insensitive rewrite.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
	Lookup      map[string]string
}

// NewLiteral builds a rule replacing every occurrence of token, in any casing and
// anywhere in the text, with replacement.
func NewLiteral(name, token, replacement string) (Rule, error) {
	if token == "" {
		return Rule{}, fmt.Errorf("rule %q: empty token", name)
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(token))
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", name, err)
	}
	return Rule{Name: name, Pattern: re, Replacement: replacement}, nil
}

// NewLookup builds a word-boundary rule matching any key of table. Keys are
// matched case-insensitively and must be lower case.
func NewLookup(name string, table map[string]string) (Rule, error) {
	if len(table) == 0 {
		return Rule{}, fmt.Errorf("rule %q: empty lookup table", name)
	}
	keys := make([]string, 0, len(table))
	lookup := make(map[string]string, len(table))
	for k, v := range table {
		if k != strings.ToLower(k) {
			return Rule{}, fmt.Errorf("rule %q: lookup key %q is not lower case", name, k)
		}
		keys = append(keys, regexp.QuoteMeta(k))
		lookup[k] = v
	}
	// Longest first so alternation prefers the longer word.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	re, err := regexp.Compile(`(?i)\b(` + strings.Join(keys, "|") + `)\b`)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", name, err)
	}
	return Rule{Name: name, Pattern: re, Lookup: lookup}, nil
}

// Policy reports the replacement policy of the rule.
func (r Rule) Policy() Policy {
	if r.Lookup != nil {
		return PolicyLookup
	}
	return PolicyLiteral
}

// Rewrite applies the rule to every match in text.
func (r Rule) Rewrite(text string) string {
	if r.Lookup == nil {
		return r.Pattern.ReplaceAllLiteralString(text, r.Replacement)
	}
	return r.Pattern.ReplaceAllStringFunc(text, func(match string) string {
		if replacement, ok := r.Lookup[strings.ToLower(match)]; ok {
			return replacement
		}
		return match
	})
}

// Description is a printable view of a rule.
type Description struct {
	Name         string            `json:"name"`
	Pattern      string            `json:"pattern"`
	Policy       Policy            `json:"policy"`
	Replacement  string            `json:"replacement,omitempty"`
	Replacements map[string]string `json:"replacements,omitempty"`
}

// Describe returns the printable view of the rule.
func (r Rule) Describe() Description {
	d := Description{
		Name:    r.Name,
		Pattern: r.Pattern.String(),
		Policy:  r.Policy(),
	}
	if r.Lookup != nil {
		d.Replacements = make(map[string]string, len(r.Lookup))
		for k, v := range r.Lookup {
			d.Replacements[k] = v
		}
	} else {
		d.Replacement = r.Replacement
	}
	return d
}
