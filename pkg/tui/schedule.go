package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"roomctl/pkg/catalog"
	"roomctl/pkg/config"
	"roomctl/pkg/exporter"
	"roomctl/pkg/timetable"

	"github.com/charmbracelet/huh"
)

// pickRoom lets the user choose one entry from the catalog.
func pickRoom(cat *catalog.Catalog) (*catalog.Entry, error) {
	var options []huh.Option[*catalog.Entry]
	for _, e := range cat.Entries() {
		label := e.Meta.SourceFile
		if e.Meta.Building != "" && e.Meta.RoomNumber != "" {
			label = fmt.Sprintf("%s %s호", e.Meta.Building, e.Meta.RoomNumber)
			if e.Meta.Capacity > 0 {
				label += fmt.Sprintf(" (%d명)", e.Meta.Capacity)
			}
		}
		options = append(options, huh.NewOption(label, e))
	}

	var entry *catalog.Entry
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[*catalog.Entry]().
				Title("Which room?").
				Options(options...).
				Value(&entry).
				Height(12),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return nil, err
	}
	return entry, nil
}

func askDate(title string) (int, error) {
	var dateStr string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("20250901").
				Validate(func(s string) error {
					if !datePattern.MatchString(strings.TrimSpace(s)) {
						return fmt.Errorf("use YYYYMMDD, e.g. 20250901")
					}
					return nil
				}).
				Value(&dateStr),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return 0, err
	}
	date, _ := strconv.Atoi(strings.TrimSpace(dateStr))
	return date, nil
}

// RunStatusTUI answers "is this room free at this time?" interactively.
func RunStatusTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil || cat == nil {
		return err
	}

	entry, err := pickRoom(cat)
	if err != nil {
		return err
	}

	table, err := entry.Timetable()
	if err != nil {
		return fmt.Errorf("could not load the room's timetable: %w", err)
	}

	date, err := askDate("Date (YYYYMMDD)")
	if err != nil {
		return err
	}

	var timeStr string
	timeForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time (HH:MM)").
				Placeholder("14:00").
				Validate(func(s string) error {
					if !timePattern.MatchString(strings.TrimSpace(s)) {
						return fmt.Errorf("use HH:MM, e.g. 14:00")
					}
					return nil
				}).
				Value(&timeStr),
		),
	).WithTheme(GetTheme())
	if err := timeForm.Run(); err != nil {
		return err
	}
	timeStr = strings.TrimSpace(timeStr)

	status, err := table.StatusAt(date, timeStr)
	if err != nil {
		PrintQueryError(err)
		return nil
	}

	fmt.Println()
	if status.Available {
		fmt.Println(accentStyle.Render(fmt.Sprintf("✅ %s %s호 is free at %s on %d (%s).",
			entry.Meta.Building, entry.Meta.RoomNumber, timeStr, date, status.DayOfWeek)))
		run := table.ContiguousFreeRun(date, timeStr)
		fmt.Println(dimStyle.Render(fmt.Sprintf("   Free for the next %.1f hour(s).", timetable.Hours(run))))
	} else {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ In use at %s on %d: %s", timeStr, date, strings.TrimSpace(status.Label))))
	}
	return nil
}

// RunScheduleTUI shows a room's full day and optionally exports it as ICS.
func RunScheduleTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil || cat == nil {
		return err
	}

	entry, err := pickRoom(cat)
	if err != nil {
		return err
	}

	table, err := entry.Timetable()
	if err != nil {
		return fmt.Errorf("could not load the room's timetable: %w", err)
	}

	date, err := askDate("Which date? (YYYYMMDD)")
	if err != nil {
		return err
	}

	schedule, day, err := table.FullSchedule(date)
	if err != nil {
		PrintQueryError(err)
		return nil
	}

	fmt.Println()
	header := fmt.Sprintf("%s %s호 — %d", entry.Meta.Building, entry.Meta.RoomNumber, date)
	if day != "" {
		header += fmt.Sprintf(" (%s)", day)
	}
	fmt.Println(accentStyle.Render(header))

	for _, s := range schedule {
		if s.Available {
			fmt.Printf("  %s  %s\n", s.Time, dimStyle.Render("free"))
		} else {
			fmt.Printf("  %s  %s\n", s.Time, strings.TrimSpace(s.Label))
		}
	}

	var export bool
	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export this day as an ICS calendar?").
				Value(&export),
		),
	).WithTheme(GetTheme())
	if err := confirm.Run(); err != nil {
		return err
	}
	if !export {
		return nil
	}

	outName := fmt.Sprintf("%s%s_%d.ics", entry.Meta.Building, entry.Meta.RoomNumber, date)
	file, err := os.Create(outName)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outName, err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(entry.Meta, date, schedule, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	fmt.Println(accentStyle.Render("✅ Saved " + outName))
	return nil
}

// PrintQueryError renders a timetable query error, including the guidance
// lists carried by the typed errors so the user can retry.
func PrintQueryError(err error) {
	var noDate *timetable.NoDateError
	var noSlot *timetable.NoSlotError

	switch {
	case errors.As(err, &noDate):
		fmt.Println(errorStyle.Render(fmt.Sprintf("No data for date %d.", noDate.Date)))
		if len(noDate.Dates) > 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("Dates with data: %s", joinInts(noDate.Dates))))
		}
	case errors.As(err, &noSlot):
		fmt.Println(errorStyle.Render(fmt.Sprintf("%s is not one of this room's time slots.", noSlot.Time)))
		if len(noSlot.Slots) > 0 {
			first := strings.TrimSuffix(noSlot.Slots[0], "~")
			last := strings.TrimSuffix(noSlot.Slots[len(noSlot.Slots)-1], "~")
			fmt.Println(dimStyle.Render(fmt.Sprintf("Slots run every 30 minutes from %s to %s.", first, last)))
		}
	default:
		fmt.Println(errorStyle.Render(err.Error()))
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
