package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/render"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		in      inputFlags
		formats string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every pass of a sort as text, JSON, YAML, DOT, or SVG",
		Long: `Render a sort pass by pass.

Formats: ` + strings.Join(render.Formats(), ", ") + `

With a single format and no --output, the document is written to stdout.
Otherwise one file per format is written, named <output>.<format>.`,
		Example: `  disksort render -n 4 -f svg -o lawnmower
  disksort render -a left-to-right -r DLDLDL -f dot | dot -Tpng > passes.png
  disksort render -n 3 -f json,yaml -o run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			algorithms, err := in.algorithms(c)
			if err != nil {
				return err
			}

			opts := in.options(c, algorithms[0])
			opts.Formats = parseFormats(formats)
			if len(opts.Formats) == 0 {
				opts.Formats = []string{c.cfg.Sort.Format}
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			report, err := runner.Execute(ctx, opts)
			if err != nil {
				return err
			}

			if output == "" && len(opts.Formats) == 1 {
				_, err := os.Stdout.Write(report.Artifacts[opts.Formats[0]])
				return err
			}

			base := output
			if base == "" {
				base = fmt.Sprintf("%s-%d", opts.Algorithm, report.Run.Before.LightCount())
			}
			written, err := writeArtifacts(base, report.Artifacts, opts.Formats)
			if err != nil {
				return err
			}

			printSuccess("Rendered %s", opts.Algorithm)
			for _, path := range written {
				printFile(path)
			}
			return nil
		},
	}

	in.bind(cmd, false)
	cmd.Flags().StringVarP(&formats, "format", "f", "", "comma-separated output formats (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file base name")

	return cmd
}

// writeArtifacts writes one file per format next to base, stripping any
// extension base already has.
func writeArtifacts(base string, artifacts map[string][]byte, formats []string) ([]string, error) {
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	var written []string
	for _, format := range formats {
		path := base + "." + format
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
