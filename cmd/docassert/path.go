package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	docassert "github.com/DocAssert/doc-assert"
)

var stepKinds = map[docassert.StepKind]string{
	docassert.Field:          "field",
	docassert.Index:          "index",
	docassert.IndexRange:     "range",
	docassert.IndexRangeFrom: "range-from",
	docassert.IndexRangeTo:   "range-to",
	docassert.WildcardIndex:  "any-index",
	docassert.WildcardField:  "any-field",
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path EXPR",
		Short: "Validate a path expression and print its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := docassert.ParsePath(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p)
			w := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)
			for i, step := range p {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, stepKinds[step.Kind], step)
			}
			return w.Flush()
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE.json EXPR",
		Short: "Print the value at a concrete path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := docassert.ParsePath(args[1])
			if err != nil {
				return err
			}
			doc, err := readJSON(args[0])
			if err != nil {
				return err
			}
			v, ok := docassert.Extract(doc, p)
			if !ok {
				return fmt.Errorf("path %s not found in %s", p, args[0])
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
