package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	docassert "github.com/DocAssert/doc-assert"
)

type diffOptions struct {
	mode        string
	assumeFloat bool
	ignore      []string
	ignoreOrder []string
	rules       string
}

func newDiffCmd() *cobra.Command {
	opts := &diffOptions{}
	cmd := &cobra.Command{
		Use:   "diff ACTUAL.json EXPECTED.json",
		Short: "Report differences between two JSON documents",
		Long: `Compare ACTUAL.json with EXPECTED.json and print every difference.
Exits with 0 when the documents match, 1 when they differ and 2 on errors.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, opts, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&opts.mode, "mode", "", "compare mode: strict or inclusive (default strict)")
	cmd.Flags().BoolVar(&opts.assumeFloat, "assume-float", false, "compare all numbers as floats")
	cmd.Flags().StringArrayVar(&opts.ignore, "ignore", nil, "path to exclude from the comparison, repeatable")
	cmd.Flags().StringArrayVar(&opts.ignoreOrder, "ignore-order", nil, "array path compared ignoring order, repeatable")
	cmd.Flags().StringVar(&opts.rules, "rules", "", "YAML rules file")
	return cmd
}

// config merges the rules file with the command line, flags win
func (o *diffOptions) config() (*docassert.Config, error) {
	cfg := docassert.NewConfig(docassert.Strict)
	if o.rules != "" {
		var err error
		cfg, err = docassert.LoadRules(o.rules)
		if err != nil {
			return nil, err
		}
	}
	if o.mode != "" {
		mode, err := docassert.ParseCompareMode(o.mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}
	if o.assumeFloat {
		cfg.WithNumericMode(docassert.AssumeFloat)
	}
	if err := cfg.IgnorePathText(o.ignore...); err != nil {
		return nil, err
	}
	if err := cfg.IgnoreOrderText(o.ignoreOrder...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDiff(cmd *cobra.Command, opts *diffOptions, pathA, pathB string) error {
	cfg, err := opts.config()
	if err != nil {
		return err
	}
	actual, expected, err := js(pathA, pathB)
	if err != nil {
		return err
	}

	diffs := docassert.Diff(actual, expected, cfg)
	if len(diffs) == 0 {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), docassert.Report(diffs))
	return errDifferent
}

func js(pathA, pathB string) (interface{}, interface{}, error) {
	a, err := readJSON(pathA)
	if err != nil {
		return nil, nil, err
	}
	b, err := readJSON(pathB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func readJSON(path string) (interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	v, err := docassert.DecodeReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
