// Package formalized rewrites informal text into a more formal register using a
// fixed, ordered set of rules:
//
//  1. abbreviations (idk, btw, imo, tldr) are expanded wherever they occur, in any casing;
//  2. the contractions wanna, gonna and gotta are expanded as whole words;
//  3. the text is split on ". " and the first letter of every fragment is upper-cased.
//
// The transformation is pure and deterministic. For the generative-model
// strategy, logging and options see pkg/formalizer.
package formalized

import (
	"github.com/baditaflorin/formalized/internal/adapters/logger"
	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/core/rules"
)

// ErrEmptyInput is returned for empty or whitespace-only input.
var ErrEmptyInput = domain.ErrEmptyInput

var engine = newEngine()

func newEngine() *rules.Engine {
	e, err := rules.NewEngine(rules.DefaultConfig(), logger.NewNopLogger())
	if err != nil {
		panic(err)
	}
	return e
}

// Formalize applies the built-in rules to text.
func Formalize(text string) (string, error) {
	return engine.Apply(text)
}
