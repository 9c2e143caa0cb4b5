package graphio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tracelab/topolens/latency"
)

// LoadLatencyGraph reads a latency-graph description from path and builds
// the directed model. JSON is the default encoding; .yaml/.yml files are
// parsed as YAML. Construction errors from latency.Build pass through
// unwrapped so callers can match them with errors.Is.
func LoadLatencyGraph(path string) (*latency.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}

	var spec latency.Spec
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("graphio: parse YAML %s: %w", path, err)
		}
	default:
		if err = json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("graphio: parse JSON %s: %w", path, err)
		}
	}

	g, err := latency.Build(spec)
	if err != nil {
		return nil, fmt.Errorf("graphio: build graph from %s: %w", path, err)
	}

	return g, nil
}
