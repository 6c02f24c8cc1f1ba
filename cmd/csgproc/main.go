// Command csgproc evaluates a YAML scene of brushes through the CSG
// chain evaluator and writes the resulting surface as a Wavefront OBJ
// file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var scenePath, outPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "csgproc",
		Short: "Evaluate a CSG brush chain and write a triangulated mesh",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(scenePath, outPath, workers)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&scenePath, "scene", "s", "", "path to the YAML scene file (required)")
	flags.StringVarP(&outPath, "out", "o", "out.obj", "path to write the Wavefront OBJ output")
	flags.IntVarP(&workers, "workers", "w", 1, "number of goroutines to shard evaluation across")
	if err := cmd.MarkFlagRequired("scene"); err != nil {
		panic(fmt.Sprintf("csgproc: %v", err))
	}

	return cmd
}
