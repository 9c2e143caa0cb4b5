package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracelab/topolens/dijkstra"
	"github.com/tracelab/topolens/graphio"
	"github.com/tracelab/topolens/render"
)

func newSLOCmd() *cobra.Command {
	var graphFile, from, to string
	var maxLatency int64

	cmd := &cobra.Command{
		Use:   "slo",
		Short: "Check whether the shortest path meets a latency objective",
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := graphio.LoadLatencyGraph(graphFile)
			if err != nil {
				return err
			}

			p, err := dijkstra.ShortestPath(g, from, to)
			if err != nil {
				return fmt.Errorf("find path %s→%s: %w", from, to, err)
			}

			report := render.NewSLOReport(g, p, maxLatency)
			if err = emit(report); err != nil {
				return err
			}
			if !report.SLOMet {
				return errSLOViolated
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "path to graph JSON/YAML file")
	cmd.Flags().StringVarP(&from, "from", "f", "", "source node name")
	cmd.Flags().StringVarP(&to, "to", "t", "", "destination node name")
	cmd.Flags().Int64VarP(&maxLatency, "max-latency", "m", 0, "maximum allowed latency in milliseconds")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("max-latency")

	return cmd
}
