package main

import (
	"context"
	"errors"

	"github.com/baditaflorin/formalized/internal/adapters/clipboard"
	"github.com/baditaflorin/formalized/internal/config"
	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/session"
	"github.com/baditaflorin/formalized/internal/tui"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var tuiStrategy string

func init() {
	tuiCmd.Flags().StringVarP(&tuiStrategy, "strategy", "s", "", "strategy to use (rules|remote)")
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive formalizer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := cfg.Strategy
		if tuiStrategy != "" {
			name = tuiStrategy
		}
		strategy, err := newStrategy(cmd.Context(), name, cfg)
		if err != nil {
			return err
		}
		if clipboard.Unsupported() {
			log.Warn("No clipboard utility found; copy will fail")
		}

		s := session.New(strategy, clipboard.NewSystem(), log, resolveTheme(cfg.UI.Theme, lipgloss.HasDarkBackground))
		if err := tui.Run(cmd.Context(), s); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// resolveTheme maps the configured theme name to a theme, asking the terminal
// when it is "auto".
func resolveTheme(name string, hasDarkBackground func() bool) domain.Theme {
	switch name {
	case config.ThemeDark:
		return domain.ThemeDark
	case config.ThemeLight:
		return domain.ThemeLight
	default:
		if hasDarkBackground() {
			return domain.ThemeDark
		}
		return domain.ThemeLight
	}
}
