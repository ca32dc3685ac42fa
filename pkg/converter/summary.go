package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"roomctl/pkg/roommeta"
)

// SummaryFileName is the report ConvertAll callers can drop into the data
// directory alongside the converted files.
const SummaryFileName = "conversion_summary.xlsx"

// WriteSummary writes a one-row-per-file report about the converted exports
// to dir and returns the report path. Room details come from the file names
// via the given extractor; files that resist extraction still get a row
// with whatever could be read.
func WriteSummary(dir string, converted []string, extractor *roommeta.Extractor) (string, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []interface{}{"File", "Building", "Room", "Floor", "Capacity", "Size (KB)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write summary header: %w", err)
	}

	for i, path := range converted {
		meta := extractor.Extract(path)

		var sizeKB float64
		if info, err := os.Stat(path); err == nil {
			sizeKB = float64(info.Size()) / 1024
		}

		row := []interface{}{
			meta.SourceFile,
			meta.Building,
			meta.RoomNumber,
			meta.Floor,
			meta.Capacity,
			fmt.Sprintf("%.1f", sizeKB),
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return "", fmt.Errorf("failed to write summary row for %s: %w", path, err)
		}
	}

	outPath := filepath.Join(dir, SummaryFileName)
	if err := f.SaveAs(outPath); err != nil {
		return "", fmt.Errorf("failed to write summary report: %w", err)
	}
	return outPath, nil
}
