package cmd

import (
	"fmt"
	"strconv"

	"github.com/openswoop/fourplan/pkg/plan"
	"github.com/spf13/cobra"
)

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week <year> <semester>",
	Short: "Print the weekly schedule of one semester",
	Long: `Prints the grid placement of every meeting in the given program
year and semester (1 = Fall, 2 = Spring, 3 = Winter, 4/5 = Summer).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%q is not a year number", args[0])
		}
		semester, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%q is not a semester number", args[1])
		}

		p, err := loadPlan(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		layout := p.Week(year, semester)
		if layout == nil || layout.Empty() {
			fmt.Fprintf(out, "No meetings in %s of year %d\n", plan.SeasonName(semester), year)
			return nil
		}

		fmt.Fprintf(out, "%s of year %d: %s to %s (%d hours)\n", plan.SeasonName(semester), year,
			layout.Headers[0], layout.Headers[len(layout.Headers)-1], layout.TotalHours())
		for _, s := range layout.Slots {
			fmt.Fprintf(out, "%-10s %s  rows %3d-%-3d col %d  %s  %s\n",
				s.Shorthand, s.Day, s.StartRow, s.EndRow, s.Column, s.Color, s.Tooltip())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
