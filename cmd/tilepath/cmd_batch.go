package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilepath/tilegraph"
)

func newBatchCmd(a *app) *cobra.Command {
	var pairs []string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Answer several path queries in parallel",
		Long: `Answer several path queries concurrently over one graph. Each --pairs
value is FROM:TO with both cells as x,y. Results are printed in the order
given; a query naming an unknown cell reports its error and the rest still run.

Example:
  tilepath batch --grid map.yaml --pairs 0,0:9,4 --pairs 3,1:0,4 --workers 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(pairs) == 0 {
				return fmt.Errorf("tilepath: at least one --pairs value is required")
			}
			queries := make([]tilegraph.Query, len(pairs))
			for i, p := range pairs {
				q, err := parseQuery(p)
				if err != nil {
					return err
				}
				queries[i] = q
			}

			_, g, err := a.load()
			if err != nil {
				return err
			}
			results, err := tilegraph.FindPaths(cmd.Context(), g, queries, workers)
			if err != nil {
				return err
			}

			views := make([]pathView, len(results))
			for i, r := range results {
				views[i] = newPathView(r.Query.From, r.Query.To, r.Path, r.Err)
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), views)
			}
			for _, v := range views {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&pairs, "pairs", nil, "query FROM:TO as x,y:x,y (repeatable)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent searches (0 = number of CPUs)")

	return cmd
}

func parseQuery(s string) (tilegraph.Query, error) {
	fs, ts, ok := strings.Cut(s, ":")
	if !ok {
		return tilegraph.Query{}, fmt.Errorf("--pairs %q: want x,y:x,y", s)
	}
	from, err := parsePoint(fs)
	if err != nil {
		return tilegraph.Query{}, fmt.Errorf("--pairs: %w", err)
	}
	to, err := parsePoint(ts)
	if err != nil {
		return tilegraph.Query{}, fmt.Errorf("--pairs: %w", err)
	}

	return tilegraph.Query{From: from, To: to}, nil
}
