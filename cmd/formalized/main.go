package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/baditaflorin/formalized/internal/adapters/logger"
	"github.com/baditaflorin/formalized/internal/config"
	"github.com/baditaflorin/formalized/internal/ports"
	"github.com/baditaflorin/formalized/internal/strategy"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	cfg *config.Config
	log ports.Logger

	// newStrategy builds the formalizer named by the config; replaced in tests.
	newStrategy = func(ctx context.Context, name string, cfg *config.Config) (ports.Formalizer, error) {
		return strategy.NewFactory(log).New(ctx, name, cfg)
	}
)

var rootCmd = &cobra.Command{
	Use:           "formalized",
	Short:         "Rewrite informal text in a formal register",
	Long:          `formalized expands abbreviations and contractions and capitalizes sentences, or asks a generative model to do the rewrite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		log, err = newLogger(cfg, verbose)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if log == nil {
			return nil
		}
		return log.Close()
	},
}

// newLogger writes to stderr with --verbose, to the configured file if any,
// and nowhere otherwise so command output stays clean.
func newLogger(cfg *config.Config, verbose bool) (ports.Logger, error) {
	opts := logger.Options{
		Backend: cfg.Logging.Backend,
		JSON:    cfg.Logging.JSON,
		File:    cfg.Logging.File,
		Output:  os.Stderr,
		Debug:   verbose || cfg.Logging.Debug,
	}
	if !verbose && cfg.Logging.File == "" {
		opts.Backend = logger.BackendNone
	}
	return logger.New(opts)
}

func main() {
	rootCmd.AddCommand(formalizeCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(tuiCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "formalized.yaml", "config file (YAML or TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr at debug level")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
