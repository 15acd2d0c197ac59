// Package main provides the CLI entrypoint for lens-generator.
//
// lens-generator is a Go codegen tool that:
//   - Parses Go packages (go/types) to find composites and tagged unions
//   - Classifies each member's wrapper shape
//   - Synthesizes type-checked accessor constructors per capability flavor
//   - Writes the generated files next to the analyzed types
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lens-generator/internal/analyze"
	"lens-generator/internal/diagnostic"
	"lens-generator/internal/policy"
)

var (
	// Global flags
	verbose    bool
	policyFile string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lens-generator",
	Short: "lens-generator - composable accessor codegen for Go",
	Long: `lens-generator synthesizes accessor constructors for struct members
and tagged-union cases.

Each constructor returns a lens.Accessor carrying exactly one capability
flavor (read, write, owned, failable, case). Wrapper types from the
container package get shape-aware element accessors.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&policyFile, "policy", "p", "", "scope policy YAML file")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadAll runs the shared front half of every command: analyze the
// packages and compile the scope policy against them.
func loadAll(patterns []string, diags *diagnostic.Diagnostics) (*analyze.Graph, *policy.Policy, error) {
	analyzer := analyze.NewAnalyzer(diags)

	graph, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("analyzing packages: %w", err)
	}

	pol := policy.Empty()

	if policyFile != "" {
		file, err := policy.LoadFile(policyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("loading policy: %w", err)
		}

		pol = policy.Compile(file, diags)
		pol.Validate(graph.Known(), diags)
	}

	return graph, pol, nil
}

// reportDiagnostics logs everything accumulated during a run and returns
// an error when generation must not proceed.
func reportDiagnostics(diags *diagnostic.Diagnostics) error {
	for _, d := range diags.Infos {
		logger.Debug("synthesis note", zap.String("detail", d.String()))
	}

	for _, d := range diags.Warnings {
		logger.Warn("generation warning", zap.String("detail", d.String()))
	}

	for _, d := range diags.Errors {
		logger.Error("generation error", zap.String("detail", d.String()))
	}

	return diags.Error()
}
