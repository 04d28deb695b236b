package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/baditaflorin/formalized/internal/adapters/clipboard"
	"github.com/baditaflorin/formalized/internal/adapters/stream/lineprocessor"
	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/session"
	"github.com/spf13/cobra"
)

var (
	formalizeFile     string
	formalizeLines    bool
	formalizeCopy     bool
	formalizeJSON     bool
	formalizeStrategy string

	// systemClipboard is replaced in tests.
	systemClipboard = clipboard.NewSystem
)

type formalizePayload struct {
	Strategy string `json:"strategy"`
	Input    string `json:"input"`
	Output   string `json:"output"`
	Duration string `json:"duration"`
	Copied   bool   `json:"copied,omitempty"`
}

func init() {
	formalizeCmd.Flags().StringVarP(&formalizeFile, "file", "f", "", "read input from file (- for stdin)")
	formalizeCmd.Flags().BoolVar(&formalizeLines, "lines", false, "formalize every line as a separate text")
	formalizeCmd.Flags().BoolVarP(&formalizeCopy, "copy", "c", false, "copy the result to the clipboard")
	formalizeCmd.Flags().BoolVar(&formalizeJSON, "json", false, "print the result as JSON")
	formalizeCmd.Flags().StringVarP(&formalizeStrategy, "strategy", "s", "", "strategy to use (rules|remote)")
}

var formalizeCmd = &cobra.Command{
	Use:   "formalize [text...]",
	Short: "Formalize text from arguments, a file or stdin",
	RunE:  runFormalize,
}

func runFormalize(cmd *cobra.Command, args []string) error {
	name := cfg.Strategy
	if formalizeStrategy != "" {
		name = strings.ToLower(formalizeStrategy)
	}
	strategy, err := newStrategy(cmd.Context(), name, cfg)
	if err != nil {
		return err
	}

	if formalizeLines {
		if len(args) > 0 {
			return errors.New("--lines reads from --file or stdin, not arguments")
		}
		if formalizeCopy || formalizeJSON {
			return errors.New("--lines cannot be combined with --copy or --json")
		}
		reader, closeFn, err := openInput(cmd, formalizeFile)
		if err != nil {
			return err
		}
		defer closeFn()

		processor := lineprocessor.NewProcessor(log, strategy, lineprocessor.ProcessingConfig{})
		_, err = processor.ProcessStream(cmd.Context(), reader, cmd.OutOrStdout())
		return err
	}

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	s := session.New(strategy, systemClipboard(), log, domain.ThemeLight)
	s.SetInput(text)

	start := time.Now()
	out, err := s.Formalize(cmd.Context())
	if err != nil {
		return errors.New(session.MessageFor(err))
	}
	result := domain.Result{
		Strategy: strategy.Name(),
		Input:    text,
		Output:   out,
		Duration: time.Since(start),
	}

	copied := false
	if formalizeCopy {
		if err := s.Copy(); err != nil {
			return fmt.Errorf("%s: %w", session.MessageFor(err), err)
		}
		copied = true
	}

	w := cmd.OutOrStdout()
	if formalizeJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(formalizePayload{
			Strategy: result.Strategy,
			Input:    result.Input,
			Output:   result.Output,
			Duration: result.Duration.String(),
			Copied:   copied,
		})
	}

	fmt.Fprintln(w, result.Output)
	if copied {
		successColor.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
	}
	return nil
}

// readText joins the arguments, or reads the whole of --file or stdin.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		if formalizeFile != "" {
			return "", errors.New("pass text as arguments or --file, not both")
		}
		return strings.Join(args, " "), nil
	}

	reader, closeFn, err := openInput(cmd, formalizeFile)
	if err != nil {
		return "", err
	}
	defer closeFn()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return file, func() { file.Close() }, nil
}
