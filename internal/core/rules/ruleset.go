package rules

// RuleSet is an ordered sequence of rules. Later rules see the output of earlier ones.
type RuleSet []Rule

// Apply runs every rule in order.
func (rs RuleSet) Apply(text string) string {
	for _, r := range rs {
		text = r.Rewrite(text)
	}
	return text
}

// Describe returns printable views of every rule, in order.
func (rs RuleSet) Describe() []Description {
	out := make([]Description, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Describe())
	}
	return out
}

// DefaultRuleSet returns the built-in informal-to-formal rewrites: abbreviations
// first, then contractions.
func DefaultRuleSet() RuleSet {
	rs := make(RuleSet, 0, 5)
	for _, a := range []struct{ name, token, replacement string }{
		{"idk", "idk", "I do not know"},
		{"btw", "btw", "by the way"},
		{"imo", "imo", "in my opinion"},
		{"tldr", "tldr", "too long; didn't read"},
	} {
		rs = append(rs, mustRule(NewLiteral(a.name, a.token, a.replacement)))
	}
	rs = append(rs, mustRule(NewLookup("contractions", map[string]string{
		"wanna": "want to",
		"gonna": "going to",
		"gotta": "got to",
	})))
	return rs
}

func mustRule(r Rule, err error) Rule {
	if err != nil {
		panic(err)
	}
	return r
}
