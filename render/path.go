package render

import (
	"fmt"
	"strings"

	"github.com/tracelab/topolens/latency"
)

// EdgeReport is a directed edge with resolved node names.
type EdgeReport struct {
	From      string `json:"from"`
	To        string `json:"to"`
	LatencyMS int64  `json:"latency_ms"`
}

// PathReport is a shortest-path result with resolved node names, suitable
// for text and JSON output alike.
type PathReport struct {
	From           string      `json:"from"`
	To             string      `json:"to"`
	Path           []string    `json:"path"`
	TotalLatencyMS int64       `json:"total_latency_ms"`
	Bottleneck     *EdgeReport `json:"bottleneck"`
}

// NewPathReport resolves every node id in p against g.
func NewPathReport(g *latency.Graph, p latency.Path) PathReport {
	names := make([]string, len(p.Nodes))
	var i int
	var id latency.NodeID
	for i, id = range p.Nodes {
		names[i] = g.NameOf(id)
	}

	var bn *EdgeReport
	if p.Bottleneck != nil {
		bn = &EdgeReport{
			From:      g.NameOf(p.Bottleneck.From),
			To:        g.NameOf(p.Bottleneck.To),
			LatencyMS: p.Bottleneck.LatencyMS,
		}
	}

	return PathReport{
		From:           g.NameOf(p.From),
		To:             g.NameOf(p.To),
		Path:           names,
		TotalLatencyMS: p.CostMS,
		Bottleneck:     bn,
	}
}

// Route renders the node sequence as "api → auth → db".
func (r PathReport) Route() string { return strings.Join(r.Path, " → ") }

// Text renders the report for terminal output.
func (r PathReport) Text() string {
	var b strings.Builder
	b.WriteString("Shortest Path:\n")
	fmt.Fprintf(&b, "  Route: %s\n", r.Route())
	fmt.Fprintf(&b, "  Total Cost: %dms\n", r.TotalLatencyMS)
	if r.Bottleneck != nil {
		fmt.Fprintf(&b, "  Bottleneck: %s → %s (%dms)\n",
			r.Bottleneck.From, r.Bottleneck.To, r.Bottleneck.LatencyMS)
	}

	return b.String()
}

// SLOReport is a pass/fail latency-objective check for one path.
type SLOReport struct {
	SLOMet          bool       `json:"slo_met"`
	MaxLatencyMS    int64      `json:"max_latency_ms"`
	ActualLatencyMS int64      `json:"actual_latency_ms"`
	Path            PathReport `json:"path"`
}

// NewSLOReport evaluates the path's cost against maxLatencyMS.
func NewSLOReport(g *latency.Graph, p latency.Path, maxLatencyMS int64) SLOReport {
	return SLOReport{
		SLOMet:          p.CostMS <= maxLatencyMS,
		MaxLatencyMS:    maxLatencyMS,
		ActualLatencyMS: p.CostMS,
		Path:            NewPathReport(g, p),
	}
}

// Text renders the check for terminal output.
func (r SLOReport) Text() string {
	status := "✗ FAIL"
	if r.SLOMet {
		status = "✓ PASS"
	}

	var b strings.Builder
	b.WriteString("SLO Check:\n")
	fmt.Fprintf(&b, "  Route: %s\n", r.Path.Route())
	fmt.Fprintf(&b, "  Actual Latency: %dms\n", r.ActualLatencyMS)
	fmt.Fprintf(&b, "  Max Allowed: %dms\n", r.MaxLatencyMS)
	fmt.Fprintf(&b, "  Status: %s\n", status)
	if r.Path.Bottleneck != nil {
		fmt.Fprintf(&b, "  Bottleneck: %s → %s (%dms)\n",
			r.Path.Bottleneck.From, r.Path.Bottleneck.To, r.Path.Bottleneck.LatencyMS)
	}

	return b.String()
}

// SimulationReport pairs the original and what-if query results with their
// latency delta.
type SimulationReport struct {
	Original        PathReport `json:"original"`
	Modified        PathReport `json:"modified"`
	LatencyChangeMS int64      `json:"latency_change_ms"`
}

// NewSimulationReport resolves both paths against their own graphs: the
// modified path's names come from the modified graph (the bijection is
// shared, the adjacency is not).
func NewSimulationReport(base, modified *latency.Graph, before, after latency.Path) SimulationReport {
	return SimulationReport{
		Original:        NewPathReport(base, before),
		Modified:        NewPathReport(modified, after),
		LatencyChangeMS: after.CostMS - before.CostMS,
	}
}

// Text renders the simulation diff for terminal output.
func (r SimulationReport) Text() string {
	var b strings.Builder
	b.WriteString("Simulation Results:\n\n")

	b.WriteString("Original Path:\n")
	fmt.Fprintf(&b, "  Route: %s\n", r.Original.Route())
	fmt.Fprintf(&b, "  Latency: %dms\n", r.Original.TotalLatencyMS)
	if r.Original.Bottleneck != nil {
		fmt.Fprintf(&b, "  Bottleneck: %s → %s (%dms)\n",
			r.Original.Bottleneck.From, r.Original.Bottleneck.To, r.Original.Bottleneck.LatencyMS)
	}

	b.WriteString("\nModified Path:\n")
	fmt.Fprintf(&b, "  Route: %s\n", r.Modified.Route())
	fmt.Fprintf(&b, "  Latency: %dms\n", r.Modified.TotalLatencyMS)
	if r.Modified.Bottleneck != nil {
		fmt.Fprintf(&b, "  Bottleneck: %s → %s (%dms)\n",
			r.Modified.Bottleneck.From, r.Modified.Bottleneck.To, r.Modified.Bottleneck.LatencyMS)
	}

	b.WriteString("\nImpact: ")
	switch {
	case r.LatencyChangeMS > 0:
		fmt.Fprintf(&b, "+%dms (slower)\n", r.LatencyChangeMS)
	case r.LatencyChangeMS < 0:
		fmt.Fprintf(&b, "%dms (faster)\n", r.LatencyChangeMS)
	default:
		b.WriteString("no change\n")
	}

	return b.String()
}
