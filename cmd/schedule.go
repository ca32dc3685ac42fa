package cmd

import (
	"fmt"
	"os"
	"strings"

	"roomctl/pkg/config"
	"roomctl/pkg/exporter"
	"roomctl/pkg/tui"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print a room's full schedule for one date",
	Long: `Print every half-hour slot of a room for one date, free or occupied.
With --ics the occupied slots are also written out as a calendar file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		building, _ := cmd.Flags().GetString("building")
		room, _ := cmd.Flags().GetString("room")
		date, _ := cmd.Flags().GetInt("date")
		icsPath, _ := cmd.Flags().GetString("ics")

		entry, err := findRoom(cfg, building, room)
		if err != nil {
			return err
		}

		table, err := entry.Timetable()
		if err != nil {
			return err
		}

		schedule, day, err := table.FullSchedule(date)
		if err != nil {
			tui.PrintQueryError(err)
			return nil
		}

		header := fmt.Sprintf("%s %s호 — %d", building, room, date)
		if day != "" {
			header += fmt.Sprintf(" (%s)", day)
		}
		fmt.Println(header)
		for _, s := range schedule {
			if s.Available {
				fmt.Printf("  %s  free\n", s.Time)
			} else {
				fmt.Printf("  %s  %s\n", s.Time, strings.TrimSpace(s.Label))
			}
		}

		if icsPath == "" {
			return nil
		}

		file, err := os.Create(icsPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(entry.Meta, date, schedule, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}
		fmt.Printf("Calendar written to %s\n", icsPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringP("building", "b", "", "Building name (e.g. 프라임관)")
	scheduleCmd.Flags().StringP("room", "r", "", "Room number (e.g. 301)")
	scheduleCmd.Flags().IntP("date", "d", 0, "Date as YYYYMMDD (e.g. 20250901)")
	scheduleCmd.Flags().StringP("ics", "o", "", "Also export the day as an ICS file at this path")
	scheduleCmd.MarkFlagRequired("building")
	scheduleCmd.MarkFlagRequired("room")
	scheduleCmd.MarkFlagRequired("date")
}
