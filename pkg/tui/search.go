package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"roomctl/pkg/catalog"
	"roomctl/pkg/config"
	"roomctl/pkg/roommeta"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

var (
	datePattern = regexp.MustCompile(`^\d{8}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// loadCatalog scans the configured data directory behind a spinner.
func loadCatalog(cfg *config.AppConfig) (*catalog.Catalog, error) {
	dir := cfg.ResolveDataDir()
	extractor := roommeta.NewExtractor(cfg.Tokens())

	var cat *catalog.Catalog
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Scanning %s for converted timetables...", dir)).
		Action(func() {
			cat, err = catalog.Scan(dir, extractor, cfg.Columns())
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to scan data directory: %w", err)
	}
	if cat.Len() == 0 {
		fmt.Println(errorStyle.Render("No converted timetables found in " + dir))
		fmt.Println(dimStyle.Render("Run the converter first: roomctl convert"))
		return nil, nil
	}
	return cat, nil
}

// RunSearchTUI runs the interactive flow for finding a free classroom.
func RunSearchTUI() error {
	fmt.Println(accentStyle.Render("Find a free classroom"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil || cat == nil {
		return err
	}

	buildings := cat.Buildings()
	if len(buildings) == 0 {
		fmt.Println(errorStyle.Render("No timetable file names could be parsed for building info."))
		return nil
	}

	var buildingOptions []huh.Option[string]
	for _, b := range buildings {
		opt := huh.NewOption(b, b)
		if b == cfg.SavedBuilding {
			opt = opt.Selected(true)
		}
		buildingOptions = append(buildingOptions, opt)
	}

	var building string
	buildingForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which building?").
				Options(buildingOptions...).
				Value(&building),
		),
	).WithTheme(GetTheme())
	if err := buildingForm.Run(); err != nil {
		return err
	}

	var floorOptions []huh.Option[int]
	for _, fl := range cat.Floors(building) {
		floorOptions = append(floorOptions, huh.NewOption(fmt.Sprintf("%d층", fl), fl))
	}

	var floor int
	var dateStr, startTime, durationStr string

	detailForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which floor?").
				Options(floorOptions...).
				Value(&floor),
			huh.NewInput().
				Title("Date (YYYYMMDD)").
				Placeholder("20250901").
				Validate(func(s string) error {
					if !datePattern.MatchString(strings.TrimSpace(s)) {
						return fmt.Errorf("use YYYYMMDD, e.g. 20250901")
					}
					return nil
				}).
				Value(&dateStr),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Placeholder("14:00").
				Validate(func(s string) error {
					if !timePattern.MatchString(strings.TrimSpace(s)) {
						return fmt.Errorf("use HH:MM, e.g. 14:00")
					}
					return nil
				}).
				Value(&startTime),
			huh.NewInput().
				Title("How many hours?").
				Placeholder("2").
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("enter a whole number of hours, 1 or more")
					}
					return nil
				}).
				Value(&durationStr),
		),
	).WithTheme(GetTheme())
	if err := detailForm.Run(); err != nil {
		return err
	}

	date, _ := strconv.Atoi(strings.TrimSpace(dateStr))
	duration, _ := strconv.Atoi(strings.TrimSpace(durationStr))
	startTime = strings.TrimSpace(startTime)

	var results []catalog.Result
	_ = spinner.New().
		Title(fmt.Sprintf("Searching %s %d층 for %d hour(s) from %s...", building, floor, duration, startTime)).
		Action(func() {
			results = cat.SearchAvailable(building, floor, date, startTime, duration)
		}).
		Run()

	PrintSearchResults(building, floor, date, startTime, duration, results)

	// Remember the building for next time; losing this is not worth an error.
	cfg.SavedBuilding = building
	_ = config.Save(cfg)

	return nil
}

// PrintSearchResults renders a search outcome to the terminal. Shared with
// the non-interactive search command.
func PrintSearchResults(building string, floor, date int, startTime string, duration int, results []catalog.Result) {
	fmt.Println()
	if len(results) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No rooms in %s %d층 are free for %d hour(s) from %s on %d.", building, floor, duration, startTime, date)))
		fmt.Println(dimStyle.Render("Try a different time, floor, or a shorter duration."))
		return
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("✅ %d room(s) free in %s %d층 from %s on %d:", len(results), building, floor, startTime, date)))
	for _, r := range results {
		line := fmt.Sprintf("  %s %s호", r.Entry.Meta.Building, r.Entry.Meta.RoomNumber)
		if r.Entry.Meta.Capacity > 0 {
			line += fmt.Sprintf("  (%d명)", r.Entry.Meta.Capacity)
		}
		line += fmt.Sprintf("  — free for %.1f hour(s)", r.Hours)
		fmt.Println(line)
	}
}
