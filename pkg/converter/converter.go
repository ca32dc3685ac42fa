package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

// OutputSuffix is appended (after stripping the extension) to name a
// converted file was produced from an export.
const OutputSuffix = "_converted.xlsx"

// UnsupportedFormatError means the input was not the HTML-table export this
// converter knows how to handle.
type UnsupportedFormatError struct {
	Path   string
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported input format %q, expected an HTML table export", e.Path, e.Format)
}

// Convert turns one mislabeled HTML export into a real spreadsheet next to
// it and returns the output path. The first <table> in the document becomes
// the sheet, row for row, with the table's first row as the header.
func Convert(path string) (string, error) {
	format, err := Sniff(path)
	if err != nil {
		return "", err
	}
	if format != FormatHTML {
		return "", &UnsupportedFormatError{Path: path, Format: format}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s as HTML: %w", path, err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return "", &UnsupportedFormatError{Path: path, Format: format}
	}

	out := excelize.NewFile()
	defer out.Close()
	sheet := out.GetSheetName(0)

	var writeErr error
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if writeErr != nil {
			return
		}
		var row []interface{}
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, cell.Text())
		})
		if len(row) == 0 {
			return
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			writeErr = err
			return
		}
		writeErr = out.SetSheetRow(sheet, cellRef, &row)
	})
	if writeErr != nil {
		return "", fmt.Errorf("failed to build sheet for %s: %w", path, writeErr)
	}

	outPath := OutputPath(path)
	if err := out.SaveAs(outPath); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}

// OutputPath derives the converted file name: extension stripped, suffix
// appended. "room.XLS" becomes "room_converted.xlsx".
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + OutputSuffix
}

// Failure records one export that could not be converted during a batch.
type Failure struct {
	Path string
	Err  error
}

// FindConvertible lists the files in dir that carry a spreadsheet extension
// but actually contain HTML. Unreadable files are reported as failures.
func FindConvertible(dir string) ([]string, []Failure, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var found []string
	var failed []Failure
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xls") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		format, err := Sniff(path)
		if err != nil {
			failed = append(failed, Failure{Path: path, Err: err})
			continue
		}
		if format == FormatHTML {
			found = append(found, path)
		}
	}
	return found, failed, nil
}

// ConvertAll converts every convertible export in dir. A file that fails to
// convert is recorded and skipped; the batch keeps going.
func ConvertAll(dir string) ([]string, []Failure, error) {
	files, failed, err := FindConvertible(dir)
	if err != nil {
		return nil, nil, err
	}

	var converted []string
	for _, path := range files {
		out, err := Convert(path)
		if err != nil {
			failed = append(failed, Failure{Path: path, Err: err})
			continue
		}
		converted = append(converted, out)
	}
	return converted, failed, nil
}
