package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lens-generator/internal/analyze"
	"lens-generator/internal/diagnostic"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [packages...]",
	Short: "Print the wrapper-shape classification of every member",
	Long: `Analyzes the packages and prints one line per composite member and
union case: the access path, the classified wrapper shape, and the
declared type. No files are written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	diags := &diagnostic.Diagnostics{}

	graph, _, err := loadAll(args, diags)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), analyze.ShapeReport(graph))

	return reportDiagnostics(diags)
}
