package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/disks"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check ROW",
		Short: "Parse a row and report its properties",
		Long: `Parse a row of disks and report whether it is alternating or sorted.

The inversion count is the number of (dark, light) pairs with the dark disk
on the left. Every adjacent swap removes at most one inversion, so it is the
fewest swaps any algorithm can sort the row in.`,
		Example: `  disksort check "D L D L D L"
  disksort check DLLD`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := disks.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Println(renderRow(row))
			printKeyValue("disks", fmt.Sprintf("%d (%d light, %d dark)", row.TotalCount(), row.LightCount(), row.DarkCount()))
			printKeyValue("alternating", yesNo(row.IsAlternating()))
			printKeyValue("sorted", yesNo(row.IsSorted()))
			printKeyValue("inversions", StyleNumber.Render(fmt.Sprint(row.Inversions())))

			if !row.IsAlternating() && !row.IsSorted() {
				printError("Neither algorithm accepts this row; it must start in alternating form")
			}
			return nil
		},
	}
}
