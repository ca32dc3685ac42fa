package cmd

import (
	"fmt"
	"path/filepath"

	"roomctl/pkg/config"
	"roomctl/pkg/converter"
	"roomctl/pkg/roommeta"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert HTML timetable exports to real spreadsheets",
	Long: `Scan the data directory for .XLS files that actually contain HTML,
convert each one to a proper .xlsx next to it, and report what happened.
Files that fail to convert are skipped; the batch keeps going.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.ResolveDataDir()
		}

		check, _ := cmd.Flags().GetBool("check")
		if check {
			return runFormatCheck(dir)
		}

		var converted []string
		var failed []converter.Failure

		_ = spinner.New().
			Title(fmt.Sprintf("Converting HTML exports in %s...", dir)).
			Action(func() {
				converted, failed, err = converter.ConvertAll(dir)
			}).
			Run()

		if err != nil {
			return err
		}

		for _, path := range converted {
			fmt.Printf("✅ %s\n", filepath.Base(path))
		}
		for _, f := range failed {
			fmt.Printf("❌ %s: %v\n", filepath.Base(f.Path), f.Err)
		}
		fmt.Printf("Converted %d file(s), %d failure(s)\n", len(converted), len(failed))

		writeSummary, _ := cmd.Flags().GetBool("summary")
		if writeSummary && len(converted) > 0 {
			extractor := roommeta.NewExtractor(cfg.Tokens())
			summaryPath, err := converter.WriteSummary(dir, converted, extractor)
			if err != nil {
				return fmt.Errorf("failed to write summary: %w", err)
			}
			fmt.Printf("Summary written to %s\n", summaryPath)
		}
		return nil
	},
}

// runFormatCheck reports what each spreadsheet-named file really contains,
// without converting anything.
func runFormatCheck(dir string) error {
	files, failed, err := converter.FindConvertible(dir)
	if err != nil {
		return err
	}

	for _, path := range files {
		fmt.Printf("📋 %s: HTML masquerading as a spreadsheet (convertible)\n", filepath.Base(path))
	}
	for _, f := range failed {
		fmt.Printf("❌ %s: %v\n", filepath.Base(f.Path), f.Err)
	}
	if len(files) == 0 {
		fmt.Println("No convertible HTML exports found.")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("dir", "d", "", "Directory with the raw exports (defaults to the configured data directory)")
	convertCmd.Flags().Bool("check", false, "Only sniff file formats, do not convert")
	convertCmd.Flags().Bool("summary", false, "Also write a conversion summary spreadsheet")
}
