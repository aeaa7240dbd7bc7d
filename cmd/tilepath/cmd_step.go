package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilepath/tilegraph"
)

func newStepCmd(a *app) *cobra.Command {
	var from, to string
	var steps int

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Run a search one expansion at a time",
		Long: `Run an A* search step by step and print the search state after each
expansion: the current node, the open set with its G/H/F costs, and the
closed set. With --json each snapshot is written as one JSON line.

--steps 0 runs until the search finds the goal or exhausts the frontier.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gr, g, err := a.load()
			if err != nil {
				return err
			}
			start, goal, err := endpoints(gr, from, to)
			if err != nil {
				return err
			}
			pf, err := tilegraph.NewPathfinder(g, start, goal)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for i := 0; !pf.Done() && (steps <= 0 || i < steps); i++ {
				if _, err := pf.Step(); err != nil {
					return err
				}
				s := pf.Snapshot()
				if a.jsonOut {
					err = enc.Encode(s)
				} else {
					err = printSnapshot(out, s)
				}
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start cell x,y (default: S marker)")
	cmd.Flags().StringVar(&to, "to", "", "goal cell x,y (default: G marker)")
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "maximum number of steps (0 = until done)")

	return cmd
}

func printSnapshot(w io.Writer, s tilegraph.Snapshot) error {
	cur := "-"
	if s.Current != nil {
		cur = s.Current.String()
	}
	if _, err := fmt.Fprintf(w, "step %d [%s] current=%s open=%d closed=%d\n",
		s.Step, s.State, cur, len(s.Open), len(s.Closed)); err != nil {
		return err
	}
	for _, nc := range s.Open {
		if _, err := fmt.Fprintf(w, "  open %-7s g=%.2f h=%.2f f=%.2f\n",
			nc.Point, nc.Costs.G, nc.Costs.H, nc.Costs.F); err != nil {
			return err
		}
	}
	if s.Path != nil {
		if _, err := fmt.Fprintf(w, "  path %v\n", s.Path); err != nil {
			return err
		}
	}

	return nil
}
