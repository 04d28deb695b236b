package domain

import "time"

// Result holds the outcome of a single formalization.
type Result struct {
	Strategy string
	Input    string
	Output   string
	Duration time.Duration
	Details  map[string]interface{}
}

// Theme is the colour scheme an interactive shell renders with.
type Theme int

const (
	// ThemeLight is the default light scheme.
	ThemeLight Theme = iota
	// ThemeDark is the dark scheme.
	ThemeDark
)

// String returns the config name of the theme.
func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// State is the caller-visible state of one interactive formalization session.
type State struct {
	Input   string
	Output  string
	Loading bool
	Theme   Theme
	// Message is the last user-facing error message, empty when the last action succeeded.
	Message string
}
