package render

import (
	"fmt"
	"strings"

	"github.com/tracelab/topolens/critical"
	"github.com/tracelab/topolens/mst"
)

// MSTEdge is one accepted spanning edge.
type MSTEdge struct {
	U      uint32  `json:"u"`
	V      uint32  `json:"v"`
	Weight float64 `json:"weight"`
}

// MSTReport is a spanning-forest result.
type MSTReport struct {
	Algorithm   string    `json:"algorithm"`
	TotalWeight float64   `json:"total_weight"`
	NumEdges    int       `json:"num_edges"`
	Edges       []MSTEdge `json:"edges"`
}

// NewMSTReport copies the tree into presentation form.
func NewMSTReport(algorithm string, t *mst.Tree) MSTReport {
	edges := make([]MSTEdge, len(t.Edges))
	for i, e := range t.Edges {
		edges[i] = MSTEdge{U: uint32(e.U), V: uint32(e.V), Weight: e.Weight}
	}

	return MSTReport{
		Algorithm:   algorithm,
		TotalWeight: t.TotalWeight,
		NumEdges:    len(t.Edges),
		Edges:       edges,
	}
}

// Text renders the spanning forest for terminal output.
func (r MSTReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Minimum Spanning Tree (%s)\n", r.Algorithm)
	fmt.Fprintf(&b, "  Total Weight: %.2f\n", r.TotalWeight)
	fmt.Fprintf(&b, "  Edges: %d\n", r.NumEdges)
	b.WriteString("\nEdges:\n")
	for _, e := range r.Edges {
		fmt.Fprintf(&b, "  %d -- %d (weight: %.2f)\n", e.U, e.V, e.Weight)
	}

	return b.String()
}

// CriticalReport is a bridge/articulation-point analysis.
type CriticalReport struct {
	NumBridges            int         `json:"num_bridges"`
	NumArticulationPoints int         `json:"num_articulation_points"`
	Bridges               [][2]uint32 `json:"bridges"`
	ArticulationPoints    []uint32    `json:"articulation_points"`
}

// NewCriticalReport copies the analysis into presentation form.
func NewCriticalReport(rep *critical.Report) CriticalReport {
	bridges := make([][2]uint32, len(rep.Bridges))
	for i, br := range rep.Bridges {
		bridges[i] = [2]uint32{uint32(br.Parent), uint32(br.Child)}
	}
	points := make([]uint32, len(rep.ArticulationPoints))
	for i, p := range rep.ArticulationPoints {
		points[i] = uint32(p)
	}

	return CriticalReport{
		NumBridges:            len(bridges),
		NumArticulationPoints: len(points),
		Bridges:               bridges,
		ArticulationPoints:    points,
	}
}

// Text renders the analysis for terminal output.
func (r CriticalReport) Text() string {
	var b strings.Builder
	b.WriteString("Critical Components Analysis\n")
	fmt.Fprintf(&b, "  Bridges: %d\n", r.NumBridges)
	fmt.Fprintf(&b, "  Articulation Points: %d\n", r.NumArticulationPoints)

	if len(r.Bridges) > 0 {
		b.WriteString("\nBridges (critical edges):\n")
		for _, br := range r.Bridges {
			fmt.Fprintf(&b, "  %d -- %d\n", br[0], br[1])
		}
	}

	if len(r.ArticulationPoints) > 0 {
		b.WriteString("\nArticulation Points (critical nodes):\n")
		for _, p := range r.ArticulationPoints {
			fmt.Fprintf(&b, "  %d\n", p)
		}
	}

	return b.String()
}

// AnalysisReport bundles both structural analyses of one topology.
type AnalysisReport struct {
	MST      MSTReport      `json:"mst"`
	Critical CriticalReport `json:"critical"`
}

// Text renders the combined analysis for terminal output.
func (r AnalysisReport) Text() string {
	var b strings.Builder
	b.WriteString("=== Full Connectivity Analysis ===\n\n")
	b.WriteString(r.MST.Text())
	b.WriteString("\n")
	b.WriteString(r.Critical.Text())

	return b.String()
}
