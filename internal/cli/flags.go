package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/errors"
	"github.com/matzehuels/disksort/pkg/pipeline"
	"github.com/matzehuels/disksort/pkg/sorting"
)

// algorithmAll selects every registered algorithm.
const algorithmAll = "all"

// inputFlags are the flags shared by commands that sort one row.
type inputFlags struct {
	algorithm string
	lights    int
	row       string
	refresh   bool
}

func (f *inputFlags) bind(cmd *cobra.Command, allowAll bool) {
	usage := "sorting algorithm (left-to-right, lawnmower)"
	if allowAll {
		usage = "sorting algorithm (left-to-right, lawnmower, all)"
	}
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", usage)
	cmd.Flags().IntVarP(&f.lights, "lights", "n", 0, "number of light disks in a fresh alternating row")
	cmd.Flags().StringVarP(&f.row, "row", "r", "", `explicit row, e.g. "D L D L" or "DLDL"`)
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
	cmd.MarkFlagsMutuallyExclusive("lights", "row")
}

// algorithms resolves the --algorithm flag against the config default.
func (f *inputFlags) algorithms(c *CLI) ([]string, error) {
	name := f.algorithm
	if name == "" {
		name = c.cfg.Sort.Algorithm
	}
	if name == algorithmAll {
		return sorting.Names(), nil
	}
	if err := errors.ValidateAlgorithm(name, sorting.Names()); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// options builds pipeline options for one algorithm. Without --lights or
// --row the configured light count is used.
func (f *inputFlags) options(c *CLI, algorithm string) pipeline.Options {
	opts := pipeline.Options{
		Algorithm: algorithm,
		Row:       f.row,
		Refresh:   f.refresh,
	}
	if f.row == "" {
		opts.LightCount = f.lights
		if opts.LightCount == 0 {
			opts.LightCount = c.cfg.Sort.Lights
		}
	}
	return opts
}
