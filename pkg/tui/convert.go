package tui

import (
	"fmt"
	"path/filepath"

	"roomctl/pkg/config"
	"roomctl/pkg/converter"
	"roomctl/pkg/roommeta"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunConvertTUI converts every HTML export in the data directory.
func RunConvertTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dir := cfg.ResolveDataDir()

	var converted []string
	var failed []converter.Failure

	_ = spinner.New().
		Title(fmt.Sprintf("Converting HTML exports in %s...", dir)).
		Action(func() {
			converted, failed, err = converter.ConvertAll(dir)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Println()
	fmt.Println(accentStyle.Render(fmt.Sprintf("✅ Converted %d file(s).", len(converted))))
	for _, path := range converted {
		fmt.Println(dimStyle.Render("  " + filepath.Base(path)))
	}

	if len(failed) > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %d file(s) could not be converted:", len(failed))))
		for _, f := range failed {
			fmt.Printf("  %s: %v\n", filepath.Base(f.Path), f.Err)
		}
	}

	if len(converted) == 0 {
		fmt.Println(dimStyle.Render("Nothing to do. Drop the .XLS exports into " + dir + " and try again."))
		return nil
	}

	var writeSummary bool
	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Write a conversion summary spreadsheet?").
				Value(&writeSummary),
		),
	).WithTheme(GetTheme())
	if err := confirm.Run(); err != nil {
		return err
	}
	if !writeSummary {
		return nil
	}

	extractor := roommeta.NewExtractor(cfg.Tokens())
	summaryPath, err := converter.WriteSummary(dir, converted, extractor)
	if err != nil {
		return err
	}
	fmt.Println(accentStyle.Render("✅ Summary written to " + summaryPath))
	return nil
}
