// Command topoconnect analyzes the structural connectivity of undirected
// weighted topologies loaded from CSV: minimum spanning trees and critical
// components (bridges, articulation points).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	formatFlag string
	debugFlag  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "topoconnect",
		Short:         "Graph connectivity and MST analysis",
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

	root.AddCommand(newMSTCmd(), newCriticalCmd(), newAnalyzeCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
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
