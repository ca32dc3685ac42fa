package tui

import (
	"fmt"

	"roomctl/pkg/config"

	"github.com/charmbracelet/huh"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Data Directory", "datadir"),
						huh.NewOption("Set File Name Tokens (Locale)", "tokens"),
						huh.NewOption("Set Spreadsheet Column Names", "columns"),
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "datadir" {
			err = runSetDataDirTUI(cfg)
		} else if action == "tokens" {
			err = runSetTokensTUI(cfg)
		} else if action == "columns" {
			err = runSetColumnsTUI(cfg)
		} else if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.roomctl.json) ---"))
			fmt.Printf("Data Directory: %s\n", cfg.ResolveDataDir())
			tokens := cfg.Tokens()
			fmt.Printf("Building Suffix: %s\n", tokens.BuildingSuffix)
			fmt.Printf("Capacity Label: %s\n", tokens.CapacityLabel)
			fmt.Printf("Capacity Unit: %s\n", tokens.CapacityUnit)
			cols := cfg.Columns()
			fmt.Printf("Date Column: %s\n", cols.Date)
			fmt.Printf("Day Column: %s\n", cols.Day)
			if cfg.SavedBuilding != "" {
				fmt.Printf("Last Searched Building: %s\n", cfg.SavedBuilding)
			}
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetDataDirTUI(cfg *config.AppConfig) error {
	dir := cfg.ResolveDataDir()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where do the timetable exports live?").
				Description("Converted files are read from and written to this directory.").
				Value(&dir),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DataDir = dir
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Data directory set to: " + dir + "\n"))
	return nil
}

func runSetTokensTUI(cfg *config.AppConfig) error {
	tokens := cfg.Tokens()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Building suffix character").
				Description("The character that ends a building name in file names, e.g. 관.").
				Value(&tokens.BuildingSuffix),
			huh.NewInput().
				Title("Capacity label").
				Description("The label before the capacity digits, e.g. 수용인원.").
				Value(&tokens.CapacityLabel),
			huh.NewInput().
				Title("Capacity unit").
				Description("The unit after the capacity digits, e.g. 명.").
				Value(&tokens.CapacityUnit),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.BuildingSuffix = tokens.BuildingSuffix
	cfg.CapacityLabel = tokens.CapacityLabel
	cfg.CapacityUnit = tokens.CapacityUnit
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ File name tokens saved.\n"))
	return nil
}

func runSetColumnsTUI(cfg *config.AppConfig) error {
	cols := cfg.Columns()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Usage date column").
				Description("Header of the column holding YYYYMMDD dates.").
				Value(&cols.Date),
			huh.NewInput().
				Title("Day-of-week column").
				Value(&cols.Day),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DateColumn = cols.Date
	cfg.DayColumn = cols.Day
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Column names saved.\n"))
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	selected := cfg.AccentColor
	if selected == "" {
		selected = "36"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick an accent color").
				Options(
					huh.NewOption("Teal (default)", "36"),
					huh.NewOption("Purple", "99"),
					huh.NewOption("Pink", "212"),
					huh.NewOption("Orange", "208"),
					huh.NewOption("Green", "42"),
					huh.NewOption("Blue", "33"),
				).
				Value(&selected),
		),
	).WithTheme(GetCustomTheme(selected))

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(GetCustomTheme(selected).Focused.Title.Render("\n✅ Accent color saved.\n"))
	return nil
}
