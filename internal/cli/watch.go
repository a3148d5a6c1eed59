package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		in       inputFlags
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Step through a sort pass by pass in the terminal",
		Example: `  disksort watch -n 6
  disksort watch -a left-to-right -n 5 --interval 250ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			algorithms, err := in.algorithms(c)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := in.options(c, algorithms[0])
			opts.Trace = true
			report, err := runner.Sort(ctx, opts)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewWatchModel(report.Run, interval), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}

	in.bind(cmd, false)
	cmd.Flags().DurationVar(&interval, "interval", 600*time.Millisecond, "time between passes while playing")

	return cmd
}
