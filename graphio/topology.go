package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tracelab/topolens/ugraph"
)

// Sentinel errors reported by the topology loader.
var (
	// ErrBadRow indicates a row with fewer than three fields.
	ErrBadRow = errors.New("graphio: row needs three fields: u,v,weight")

	// ErrBadNodeID indicates a node field that does not parse as a
	// non-negative integer.
	ErrBadNodeID = errors.New("graphio: invalid node id")

	// ErrBadWeight indicates a weight field that does not parse as a
	// floating-point number.
	ErrBadWeight = errors.New("graphio: invalid weight")
)

// headerNames are accepted first-column labels of an optional header row.
var headerNames = map[string]bool{"u": true, "from": true, "source": true}

// LoadTopologyGraph reads an undirected weighted graph from a three-column
// tabular file: u,v,weight per row, node ids as non-negative integers,
// weight as a float. A header row is skipped when its first field is one of
// "u", "from" or "source" (case-insensitive). The graph is sized to the
// maximum node id found plus one.
func LoadTopologyGraph(path string) (*ugraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width validated below, with row context
	r.TrimLeadingSpace = true

	type row struct {
		u, v   ugraph.NodeID
		weight float64
	}
	var rows []row
	var maxNode ugraph.NodeID

	line := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: read %s: %w", path, err)
		}
		line++

		if len(record) < 3 {
			return nil, fmt.Errorf("%w: %s row %d", ErrBadRow, path, line)
		}

		// Optional header: recognized by its first field, first row only.
		if line == 1 && headerNames[strings.ToLower(strings.TrimSpace(record[0]))] {
			continue
		}

		u, err := parseNode(record[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q (%s row %d)", ErrBadNodeID, record[0], path, line)
		}
		v, err := parseNode(record[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q (%s row %d)", ErrBadNodeID, record[1], path, line)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (%s row %d)", ErrBadWeight, record[2], path, line)
		}

		if u > maxNode {
			maxNode = u
		}
		if v > maxNode {
			maxNode = v
		}
		rows = append(rows, row{u: u, v: v, weight: w})
	}

	// Size the node set before appending a single edge: AddEdge treats an
	// out-of-bounds endpoint as a loader defect and panics.
	g := ugraph.New(nodeCount(len(rows), maxNode))
	for _, e := range rows {
		g.AddEdge(e.u, e.v, e.weight)
	}

	return g, nil
}

// nodeCount maps the maximum observed id to a node count: max+1, or zero
// for an edgeless file.
func nodeCount(edges int, maxNode ugraph.NodeID) int {
	if edges == 0 {
		return 0
	}

	return int(maxNode) + 1
}

func parseNode(field string) (ugraph.NodeID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(field), 10, 31)
	if err != nil {
		return 0, err
	}

	return ugraph.NodeID(n), nil
}
