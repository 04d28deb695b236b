package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/baditaflorin/formalized/internal/core/rules"
	"github.com/baditaflorin/formalized/internal/strategy"
	"github.com/spf13/cobra"
)

var rulesJSON bool

func init() {
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "print the rules as JSON")
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rewrite rules in the order they are applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := strategy.NewRuleBased(log)
		if err != nil {
			return err
		}
		descriptions := engine.Rules().Describe()

		w := cmd.OutOrStdout()
		if rulesJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(descriptions)
		}

		for i, d := range descriptions {
			headingColor.Fprintf(w, "%d. %s", i+1, d.Name)
			mutedColor.Fprintf(w, "  %s %s\n", d.Policy, d.Pattern)
			if d.Policy == rules.PolicyLiteral {
				fmt.Fprintf(w, "   -> %q\n", d.Replacement)
				continue
			}
			keys := make([]string, 0, len(d.Replacements))
			for k := range d.Replacements {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(w, "   %s -> %q\n", k, d.Replacements[k])
			}
		}
		headingColor.Fprintf(w, "%d. capitalize", len(descriptions)+1)
		mutedColor.Fprintf(w, "  split on %q, upper-case the first letter of each sentence\n", rules.DefaultSeparator)
		return nil
	},
}
