package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilepath/grid"
)

func newRegionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List connected regions of passable cells",
		Long: `List the connected regions of passable cells. Two cells in different
regions have no path between them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gr, _, err := a.load()
			if err != nil {
				return err
			}
			conn := grid.Conn8
			if a.conn4 {
				conn = grid.Conn4
			}
			regions := gr.ConnectedComponents(conn)
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), regions)
			}
			for i, r := range regions {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "region %d: %d cells from %s\n", i+1, len(r), r[0]); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
