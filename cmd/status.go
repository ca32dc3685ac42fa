package cmd

import (
	"fmt"
	"strings"

	"roomctl/pkg/catalog"
	"roomctl/pkg/config"
	"roomctl/pkg/roommeta"
	"roomctl/pkg/timetable"
	"roomctl/pkg/tui"

	"github.com/spf13/cobra"
)

// findRoom locates a single catalog entry by building and room number.
func findRoom(cfg *config.AppConfig, building, room string) (*catalog.Entry, error) {
	cat, err := catalog.Scan(cfg.ResolveDataDir(), roommeta.NewExtractor(cfg.Tokens()), cfg.Columns())
	if err != nil {
		return nil, err
	}

	for _, e := range cat.Entries() {
		if e.Meta.Building == building && e.Meta.RoomNumber == room {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no converted timetable for %s %s호 in %s (known buildings: %s)",
		building, room, cfg.ResolveDataDir(), strings.Join(cat.Buildings(), ", "))
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether a room is free at a given time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		building, _ := cmd.Flags().GetString("building")
		room, _ := cmd.Flags().GetString("room")
		date, _ := cmd.Flags().GetInt("date")
		timeStr, _ := cmd.Flags().GetString("time")

		entry, err := findRoom(cfg, building, room)
		if err != nil {
			return err
		}

		table, err := entry.Timetable()
		if err != nil {
			return err
		}

		status, err := table.StatusAt(date, timeStr)
		if err != nil {
			tui.PrintQueryError(err)
			return nil
		}

		if status.Available {
			run := table.ContiguousFreeRun(date, timeStr)
			fmt.Printf("✅ %s %s호 is free at %s on %d (%s), for the next %.1f hour(s)\n",
				building, room, timeStr, date, status.DayOfWeek, timetable.Hours(run))
		} else {
			fmt.Printf("❌ %s %s호 is in use at %s on %d: %s\n",
				building, room, timeStr, date, strings.TrimSpace(status.Label))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringP("building", "b", "", "Building name (e.g. 프라임관)")
	statusCmd.Flags().StringP("room", "r", "", "Room number (e.g. 301)")
	statusCmd.Flags().IntP("date", "d", 0, "Date as YYYYMMDD (e.g. 20250901)")
	statusCmd.Flags().StringP("time", "t", "", "Slot start time as HH:MM (e.g. 14:00)")
	statusCmd.MarkFlagRequired("building")
	statusCmd.MarkFlagRequired("room")
	statusCmd.MarkFlagRequired("date")
	statusCmd.MarkFlagRequired("time")
}
