package cmd

import (
	"fmt"
	"slices"
	"strings"

	"roomctl/pkg/catalog"
	"roomctl/pkg/config"
	"roomctl/pkg/roommeta"
	"roomctl/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find rooms free for a stretch of time",
	Long: `Search one building floor for rooms that stay free for at least the
requested number of hours from the given start time. Rooms whose
timetable cannot be read are skipped rather than failing the search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		building, _ := cmd.Flags().GetString("building")
		floor, _ := cmd.Flags().GetInt("floor")
		date, _ := cmd.Flags().GetInt("date")
		startTime, _ := cmd.Flags().GetString("time")
		duration, _ := cmd.Flags().GetInt("hours")

		if duration < 1 {
			return fmt.Errorf("--hours must be 1 or more")
		}

		cat, err := catalog.Scan(cfg.ResolveDataDir(), roommeta.NewExtractor(cfg.Tokens()), cfg.Columns())
		if err != nil {
			return err
		}

		// Validate against what the catalog actually has, so typos get a
		// helpful list instead of an empty result.
		buildings := cat.Buildings()
		if !slices.Contains(buildings, building) {
			return fmt.Errorf("unknown building %q (known: %s)", building, strings.Join(buildings, ", "))
		}
		floors := cat.Floors(building)
		if !slices.Contains(floors, floor) {
			return fmt.Errorf("no floor %d in %s (known floors: %s)", floor, building, joinFloors(floors))
		}

		var results []catalog.Result
		_ = spinner.New().
			Title(fmt.Sprintf("Searching %s %d층...", building, floor)).
			Action(func() {
				results = cat.SearchAvailable(building, floor, date, startTime, duration)
			}).
			Run()

		tui.PrintSearchResults(building, floor, date, startTime, duration, results)
		return nil
	},
}

func joinFloors(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("building", "b", "", "Building name (e.g. 프라임관)")
	searchCmd.Flags().IntP("floor", "f", 0, "Floor number (e.g. 3)")
	searchCmd.Flags().IntP("date", "d", 0, "Date as YYYYMMDD (e.g. 20250901)")
	searchCmd.Flags().StringP("time", "t", "", "Start time as HH:MM (e.g. 14:00)")
	searchCmd.Flags().IntP("hours", "n", 1, "How many hours the room should stay free")
	searchCmd.MarkFlagRequired("building")
	searchCmd.MarkFlagRequired("floor")
	searchCmd.MarkFlagRequired("date")
	searchCmd.MarkFlagRequired("time")
}
