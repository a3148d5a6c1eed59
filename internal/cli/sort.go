package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/pipeline"
)

// sortCommand creates the sort command.
func (c *CLI) sortCommand() *cobra.Command {
	var (
		in     inputFlags
		trace  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort a row of alternating disks",
		Long: `Sort a row of alternating disks and report the number of swaps.

The row is either a fresh alternating row of --lights light disks, or the
explicit row given with --row. Without either, the configured light count
is used.`,
		Example: `  disksort sort -n 4
  disksort sort -a all -n 8
  disksort sort -a left-to-right -r "D L D L D L" --trace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithms, err := in.algorithms(c)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			var reports []*pipeline.Report
			for _, alg := range algorithms {
				opts := in.options(c, alg)
				opts.Trace = trace
				report, err := runner.Sort(cmd.Context(), opts)
				if err != nil {
					return err
				}
				reports = append(reports, report)
			}

			if asJSON {
				return writeReportsJSON(reports)
			}
			for i, r := range reports {
				if i > 0 {
					fmt.Println()
				}
				printReport(r, trace)
			}
			return nil
		},
	}

	in.bind(cmd, true)
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "show the row after every pass")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}

func printReport(r *pipeline.Report, trace bool) {
	run := r.Run
	res := run.Result

	fmt.Println(StyleTitle.Render(string(res.Algorithm())))
	printKeyValue("before", renderRow(run.Before)+"  "+StyleDim.Render(run.Before.String()))
	if trace {
		for _, st := range run.Steps {
			label := fmt.Sprintf("pass %d", st.Pass)
			detail := fmt.Sprintf("%s, %d swaps", st.Direction, st.Swaps)
			printKeyValue(label, renderRow(st.Row)+"  "+StyleDim.Render(detail))
		}
	}
	after := res.After()
	printKeyValue("after", renderRow(after)+"  "+StyleDim.Render(after.String()))
	printStats(res.SwapCount(), res.Passes(), res.Comparisons(), r.CacheInfo.SortHit)
}

func writeReportsJSON(reports []*pipeline.Report) error {
	runs := make([]any, len(reports))
	for i, r := range reports {
		runs[i] = r.Run
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if len(runs) == 1 {
		return enc.Encode(runs[0])
	}
	return enc.Encode(runs)
}
