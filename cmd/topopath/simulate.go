package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tracelab/topolens/dijkstra"
	"github.com/tracelab/topolens/graphio"
	"github.com/tracelab/topolens/latency"
	"github.com/tracelab/topolens/render"
)

func newSimulateCmd() *cobra.Command {
	var graphFile, from, to string
	var overrideFlags, dropFlags []string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Compare the shortest path before and after edge modifications",
		RunE: func(_ *cobra.Command, _ []string) error {
			overrides, err := parseOverrides(overrideFlags)
			if err != nil {
				return err
			}
			drops, err := parseDrops(dropFlags)
			if err != nil {
				return err
			}

			g, err := graphio.LoadLatencyGraph(graphFile)
			if err != nil {
				return err
			}

			before, err := dijkstra.ShortestPath(g, from, to)
			if err != nil {
				return fmt.Errorf("find path %s→%s: %w", from, to, err)
			}

			mod, err := g.WithModifications(overrides, drops)
			if err != nil {
				return fmt.Errorf("apply modifications: %w", err)
			}

			after, err := dijkstra.ShortestPath(mod, from, to)
			if err != nil {
				return fmt.Errorf("find path %s→%s in modified graph: %w", from, to, err)
			}

			return emit(render.NewSimulationReport(g, mod, before, after))
		},
	}

	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "path to graph JSON/YAML file")
	cmd.Flags().StringVarP(&from, "from", "f", "", "source node name")
	cmd.Flags().StringVarP(&to, "to", "t", "", "destination node name")
	cmd.Flags().StringSliceVar(&overrideFlags, "override", nil, "override edge weights: from:to:weight")
	cmd.Flags().StringSliceVar(&dropFlags, "drop", nil, "drop edges: from:to")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// parseOverrides turns "from:to:weight" strings into override values.
func parseOverrides(raw []string) ([]latency.Override, error) {
	overrides := make([]latency.Override, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid override %q: expected from:to:weight", s)
		}
		ms, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid weight %q in override %q", parts[2], s)
		}
		overrides = append(overrides, latency.Override{From: parts[0], To: parts[1], LatencyMS: ms})
	}

	return overrides, nil
}

// parseDrops turns "from:to" strings into drop values.
func parseDrops(raw []string) ([]latency.Drop, error) {
	drops := make([]latency.Drop, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid drop %q: expected from:to", s)
		}
		drops = append(drops, latency.Drop{From: parts[0], To: parts[1]})
	}

	return drops, nil
}
