package rules

import (
	"context"
	"errors"
	"testing"

	"github.com/baditaflorin/formalized/internal/adapters/logger"
	"github.com/baditaflorin/formalized/internal/core/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), logger.NewNopLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestApply(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "abbreviation", input: "idk", want: "I do not know"},
		{name: "abbreviation upper case", input: "IDK", want: "I do not know"},
		{name: "abbreviation mixed case", input: "iDk", want: "I do not know"},
		{
			name:  "contractions per fragment",
			input: "i wanna go. i gotta run.",
			want:  "I want to go. I got to run.",
		},
		{
			name:  "single fragment",
			input: "btw imo tldr",
			want:  "By the way in my opinion too long; didn't read",
		},
		{
			name:  "substitution before capitalization",
			input: "idk. maybe later",
			want:  "I do not know. Maybe later",
		},
		{
			name:  "global replacement",
			input: "btw, btw and BTW",
			want:  "By the way, by the way and by the way",
		},
		{
			name:  "contraction casing is fixed",
			input: "we WANNA. they Gonna",
			want:  "We want to. They going to",
		},
		{
			name:  "contractions require word boundaries",
			input: "wannabe gonnas",
			want:  "Wannabe gonnas",
		},
		{
			name:  "abbreviations match inside words",
			input: "kidkey",
			want:  "KI do not knowey",
		},
		{
			name:  "empty fragments pass through",
			input: "end. . next",
			want:  "End. . Next",
		},
		{
			name:  "split is syntactic",
			input: "it costs 3. 5 dollars. e.g. this",
			want:  "It costs 3. 5 dollars. E.g. This",
		},
		{
			name:  "only first letter adjusted",
			input: "hello WORLD. tHIS stays",
			want:  "Hello WORLD. THIS stays",
		},
		{
			name:  "leading whitespace kept",
			input: "  idk",
			want:  "  I do not know",
		},
		{
			name:  "non ascii first rune",
			input: "élan. über",
			want:  "Élan. Über",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Apply(tc.input)
			if err != nil {
				t.Fatalf("Apply(%q): unexpected error %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Apply(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestApplyRejectsBlankInput(t *testing.T) {
	e := newTestEngine(t)
	for _, input := range []string{"", "   ", "\n\t "} {
		out, err := e.Apply(input)
		if !errors.Is(err, domain.ErrEmptyInput) {
			t.Errorf("Apply(%q): expected ErrEmptyInput, got %v", input, err)
		}
		if out != "" {
			t.Errorf("Apply(%q): expected no output, got %q", input, out)
		}
	}
}

func TestApplyIsStableOnFormalText(t *testing.T) {
	e := newTestEngine(t)
	inputs := []string{
		"I want to go. I got to run.",
		"Please review the attached document. Thank you.",
	}
	for _, input := range inputs {
		once, err := e.Apply(input)
		if err != nil {
			t.Fatalf("Apply(%q): %v", input, err)
		}
		twice, err := e.Apply(once)
		if err != nil {
			t.Fatalf("Apply(%q): %v", once, err)
		}
		if once != twice || once != input {
			t.Errorf("expected %q to be stable, got %q then %q", input, once, twice)
		}
	}
}

func TestFormalizeHonoursCancelledContext(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Formalize(ctx, "idk"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFormalize(t *testing.T) {
	e := newTestEngine(t)
	got, err := e.Formalize(context.Background(), "gonna be late")
	if err != nil {
		t.Fatalf("Formalize: %v", err)
	}
	if got != "Going to be late" {
		t.Errorf("got %q", got)
	}
	if e.Name() != "rules" {
		t.Errorf("unexpected name %q", e.Name())
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Errorf("expected empty separator to be rejected")
	}
	if err := (Config{Separator: ". ", Rules: RuleSet{{Name: "broken"}}}).Validate(); err == nil {
		t.Errorf("expected rule without pattern to be rejected")
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
