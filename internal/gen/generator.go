package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"

	"lens-generator/internal/analyze"
	"lens-generator/internal/common"
	"lens-generator/internal/diagnostic"
	"lens-generator/internal/policy"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// GenerateComments enables doc comments on generated constructors.
	GenerateComments bool
	// DebugDir, when set, receives unformatted output for files that fail
	// gofmt. Best-effort diagnostics only.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
	}
}

// Generator generates accessor constructor files from an analyzed type
// graph and a compiled scope policy.
type Generator struct {
	config GeneratorConfig
	graph  *analyze.Graph
	pol    *policy.Policy
	diags  *diagnostic.Diagnostics
}

// NewGenerator creates a new Generator.
func NewGenerator(config GeneratorConfig, graph *analyze.Graph, pol *policy.Policy, diags *diagnostic.Diagnostics) *Generator {
	if pol == nil {
		pol = policy.Empty()
	}

	return &Generator{
		config: config,
		graph:  graph,
		pol:    pol,
		diags:  diags,
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the target directory: the analyzed package's own directory.
	Dir string
	// Filename is the name of the file (e.g., "order_lens.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per composite and one per union, in
// deterministic order. Policy and synthesis problems accumulate on the
// generator's diagnostics; only template or formatting failures return
// an error.
func (g *Generator) Generate() ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, c := range sortedComposites(g.graph) {
		data := g.buildCompositeData(c)
		if common.IsEmpty(data.Funcs) {
			continue
		}

		file, err := g.render(data, g.packageDir(c.ID.PkgPath))
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", c.ID, err)
		}

		files = append(files, *file)
	}

	for _, u := range sortedUnions(g.graph) {
		data := g.buildUnionData(u)
		if common.IsEmpty(data.Funcs) {
			continue
		}

		file, err := g.render(data, g.packageDir(u.ID.PkgPath))
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", u.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// render executes the file template and formats the result.
func (g *Generator) render(data *fileData, dir string) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := accessorFileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Dir:      dir,
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) packageDir(pkgPath string) string {
	if info, ok := g.graph.Packages[pkgPath]; ok {
		return info.Dir
	}

	return ""
}

func sortedComposites(graph *analyze.Graph) []*analyze.Composite {
	out := make([]*analyze.Composite, 0, len(graph.Composites))
	for _, c := range graph.Composites {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}

func sortedUnions(graph *analyze.Graph) []*analyze.Union {
	out := make([]*analyze.Union, 0, len(graph.Unions))
	for _, u := range graph.Unions {
		out = append(out, u)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}
