package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lens-generator/internal/diagnostic"
	"lens-generator/internal/gen"
)

var (
	dryRun    bool
	dumpGraph bool
	debugDir  string
	noDocs    bool
)

var genCmd = &cobra.Command{
	Use:   "gen [packages...]",
	Short: "Generate accessor constructors for the given packages",
	Long: `Analyzes the packages, synthesizes accessor constructors for every
composite member and union case, and writes one file per type next to
the type's own source.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print generated files instead of writing them")
	genCmd.Flags().BoolVar(&dumpGraph, "dump", false, "dump the analyzed type graph before generating")
	genCmd.Flags().StringVar(&debugDir, "debug-dir", "", "directory for unformatted output of failed files")
	genCmd.Flags().BoolVar(&noDocs, "no-docs", false, "skip doc comments on generated constructors")
}

func runGen(cmd *cobra.Command, args []string) error {
	diags := &diagnostic.Diagnostics{}

	graph, pol, err := loadAll(args, diags)
	if err != nil {
		return err
	}

	if dumpGraph {
		spew.Fdump(cmd.OutOrStdout(), graph)
	}

	config := gen.DefaultGeneratorConfig()
	config.DebugDir = debugDir

	if noDocs {
		config.GenerateComments = false
	}

	generator := gen.NewGenerator(config, graph, pol, diags)

	files, genErr := generator.Generate()

	if err := reportDiagnostics(diags); err != nil {
		return err
	}

	if genErr != nil {
		return genErr
	}

	if dryRun {
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), "===", f.Filename, "===")
			fmt.Fprintln(cmd.OutOrStdout(), string(f.Content))
		}

		return nil
	}

	if err := gen.WriteFiles(files, "."); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("wrote accessors",
			zap.String("file", f.Filename),
			zap.String("dir", f.Dir),
			zap.Int("bytes", len(f.Content)))
	}

	return nil
}
