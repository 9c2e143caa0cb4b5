package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracelab/topolens/dijkstra"
	"github.com/tracelab/topolens/graphio"
	"github.com/tracelab/topolens/render"
)

func newPathCmd() *cobra.Command {
	var graphFile, from, to string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find the shortest path between two nodes",
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := graphio.LoadLatencyGraph(graphFile)
			if err != nil {
				return err
			}
			logger.Debug("graph loaded", "file", graphFile, "nodes", g.Order())

			p, err := dijkstra.ShortestPath(g, from, to)
			if err != nil {
				return fmt.Errorf("find path %s→%s: %w", from, to, err)
			}

			return emit(render.NewPathReport(g, p))
		},
	}

	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "path to graph JSON/YAML file")
	cmd.Flags().StringVarP(&from, "from", "f", "", "source node name")
	cmd.Flags().StringVarP(&to, "to", "t", "", "destination node name")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
