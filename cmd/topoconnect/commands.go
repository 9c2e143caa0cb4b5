package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracelab/topolens/critical"
	"github.com/tracelab/topolens/graphio"
	"github.com/tracelab/topolens/mst"
	"github.com/tracelab/topolens/render"
	"github.com/tracelab/topolens/ugraph"
)

// algoKruskal is the only spanning-tree algorithm currently offered; the
// flag exists so adding another does not change the CLI surface.
const algoKruskal = "kruskal"

func newMSTCmd() *cobra.Command {
	var graphFile, algo string

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute the minimum spanning tree",
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := loadTopology(graphFile)
			if err != nil {
				return err
			}

			report, err := runMST(g, algo)
			if err != nil {
				return err
			}

			return emit(report)
		},
	}

	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "path to graph CSV file (format: u,v,weight)")
	cmd.Flags().StringVar(&algo, "algo", algoKruskal, "algorithm to use")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func newCriticalCmd() *cobra.Command {
	var graphFile string

	cmd := &cobra.Command{
		Use:   "critical",
		Short: "Find critical components (bridges and articulation points)",
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := loadTopology(graphFile)
			if err != nil {
				return err
			}

			rep, err := critical.Components(g)
			if err != nil {
				return err
			}

			return emit(render.NewCriticalReport(rep))
		},
	}

	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "path to graph CSV file (format: u,v,weight)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var graphFile string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Full connectivity analysis (MST + critical components)",
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := loadTopology(graphFile)
			if err != nil {
				return err
			}

			mstReport, err := runMST(g, algoKruskal)
			if err != nil {
				return err
			}
			rep, err := critical.Components(g)
			if err != nil {
				return err
			}

			return emit(render.AnalysisReport{
				MST:      mstReport,
				Critical: render.NewCriticalReport(rep),
			})
		},
	}

	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "path to graph CSV file (format: u,v,weight)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func loadTopology(path string) (*ugraph.Graph, error) {
	g, err := graphio.LoadTopologyGraph(path)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	logger.Debug("topology loaded", "file", path, "nodes", g.Size(), "edges", g.EdgeCount())

	return g, nil
}

func runMST(g *ugraph.Graph, algo string) (render.MSTReport, error) {
	if algo != algoKruskal {
		return render.MSTReport{}, fmt.Errorf("unknown MST algorithm %q", algo)
	}

	tree, err := mst.Kruskal(g)
	if err != nil {
		return render.MSTReport{}, err
	}

	return render.NewMSTReport(algoKruskal, tree), nil
}
