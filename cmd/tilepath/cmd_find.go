package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilepath/grid"
)

func newFindCmd(a *app) *cobra.Command {
	var from, to string
	var walls []string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a path between two cells",
		Long: `Find the cheapest path between two cells.

--from and --to default to the grid's S and G markers. Each --wall turns a
cell into a wall after the graph is built; only the edges around that cell
are regenerated.

Examples:
  tilepath find --grid map.yaml
  tilepath find --grid map.yaml --from 0,0 --to 9,4 --wall 3,2 --wall 3,3`,
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
			for _, w := range walls {
				p, err := parsePoint(w)
				if err != nil {
					return fmt.Errorf("--wall: %w", err)
				}
				if err := gr.SetType(p.X, p.Y, grid.Wall); err != nil {
					return err
				}
				g.RegenerateEdges(p)
				a.log.Debug("wall placed", "at", p)
			}

			path, err := g.FindPath(start, goal)
			if err != nil {
				return err
			}
			view := newPathView(start, goal, path, nil)
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), view)

			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start cell x,y (default: S marker)")
	cmd.Flags().StringVar(&to, "to", "", "goal cell x,y (default: G marker)")
	cmd.Flags().StringArrayVar(&walls, "wall", nil, "cell x,y to turn into a wall before searching (repeatable)")

	return cmd
}
