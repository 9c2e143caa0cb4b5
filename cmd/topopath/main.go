// Command topopath analyzes directed latency graphs: shortest paths with
// bottleneck identification, SLO checks, and what-if edge simulation.
//
// Exit codes are stable for scripting:
//
//	0 — success
//	2 — no path between the requested nodes
//	3 — path found but the SLO was violated
//	4 — invalid input (bad file, bad flag syntax, unknown node, ...)
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tracelab/topolens/dijkstra"
)

const (
	exitOK           = 0
	exitNoPath       = 2
	exitSLOViolated  = 3
	exitInvalidInput = 4
)

// errSLOViolated marks a fully reported SLO failure: the result has been
// printed, only the exit code differs.
var errSLOViolated = errors.New("slo violated")

var (
	formatFlag string
	debugFlag  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "topopath",
		Short:         "Latency path analysis and what-if simulation for service topologies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debugFlag {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&formatFlag, "format", "text", "output format: text or json")
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	root.AddCommand(newPathCmd(), newSLOCmd(), newSimulateCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		code := exitInvalidInput
		switch {
		case errors.Is(err, errSLOViolated):
			// Result already printed; the code is the message.
			code = exitSLOViolated
		case errors.Is(err, dijkstra.ErrPathNotFound):
			logger.Error("no path", "err", err)
			code = exitNoPath
		default:
			logger.Error("command failed", "err", err)
		}
		os.Exit(code)
	}
	os.Exit(exitOK)
}

// emit writes a report to stdout in the selected format.
func emit(report interface{ Text() string }) error {
	switch formatFlag {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		fmt.Print(report.Text())
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", formatFlag)
	}

	return nil
}
