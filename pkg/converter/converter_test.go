package converter

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"roomctl/pkg/roommeta"
	"roomctl/pkg/timetable"
)

const sampleExport = `<html>
<head><meta charset="utf-8"></head>
<body>
<table>
<tr><td>사용일자</td><td>요일</td><td>10:00~</td><td>10:30~</td></tr>
<tr><td>20250901</td><td>월</td><td></td><td>자료구조</td></tr>
<tr><td>20250902</td><td>화</td><td>세미나</td><td></td></tr>
</table>
</body>
</html>`

func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestSniff(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content []byte
		want    Format
	}{
		{"page.xls", []byte("<html><body></body></html>"), FormatHTML},
		{"doctype.xls", []byte("<!DOCTYPE html><html></html>"), FormatHTML},
		{"legacy.xls", []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1}, FormatXLS},
		{"modern.xlsx", []byte("PK\x03\x04rest"), FormatXLSX},
		{"garbage.xls", []byte("hello world"), FormatUnknown},
		{"tiny.xlsx", []byte("PK"), FormatXLSX},
		{"empty.xls", nil, FormatUnknown},
	}

	for _, tc := range cases {
		path := filepath.Join(dir, tc.name)
		if err := os.WriteFile(path, tc.content, 0644); err != nil {
			t.Fatalf("failed to write %s: %v", tc.name, err)
		}
		got, err := Sniff(path)
		if err != nil {
			t.Errorf("Sniff(%s) failed: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Sniff(%s) = %v, expected %v", tc.name, got, tc.want)
		}
	}

	if _, err := Sniff(filepath.Join(dir, "missing.xls")); err == nil {
		t.Errorf("expected error sniffing a missing file")
	}
}

func TestConvertRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "프라임관301,수용인원 0070명,강의실.XLS", sampleExport)

	outPath, err := Convert(path)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	want := filepath.Join(dir, "프라임관301,수용인원 0070명,강의실_converted.xlsx")
	if outPath != want {
		t.Errorf("unexpected output path.\nGot: %s\nExpected: %s", outPath, want)
	}

	// The converted file must be loadable as a timetable with the same
	// content the HTML table had.
	tt, err := timetable.Load(outPath)
	if err != nil {
		t.Fatalf("failed to load converted file: %v", err)
	}

	if !reflect.DeepEqual(tt.Dates(), []int{20250901, 20250902}) {
		t.Errorf("unexpected dates: %v", tt.Dates())
	}
	if !reflect.DeepEqual(tt.Slots(), []string{"10:00~", "10:30~"}) {
		t.Errorf("unexpected slots: %v", tt.Slots())
	}

	status, err := tt.StatusAt(20250901, "10:30")
	if err != nil {
		t.Fatalf("StatusAt failed: %v", err)
	}
	if status.Available || status.Label != "자료구조" {
		t.Errorf("expected 10:30 occupied by 자료구조, got %+v", status)
	}

	status, err = tt.StatusAt(20250902, "10:30")
	if err != nil {
		t.Fatalf("StatusAt failed: %v", err)
	}
	if !status.Available {
		t.Errorf("expected 10:30 free on 20250902, got %+v", status)
	}
}

func TestConvertRejectsNonHTML(t *testing.T) {
	dir := t.TempDir()

	// A genuine zip-container spreadsheet must not be "converted".
	real := writeExport(t, dir, "real.xls", "PK\x03\x04")

	_, err := Convert(real)
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if unsupported.Format != FormatXLSX {
		t.Errorf("expected sniffed format xlsx, got %v", unsupported.Format)
	}

	// HTML without any table is just as unusable.
	tableless := writeExport(t, dir, "tableless.xls", "<html><body><p>no data</p></body></html>")
	_, err = Convert(tableless)
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError for tableless HTML, got %v", err)
	}
}

func TestConvertAll(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "프라임관301,수용인원 0070명,강의실.XLS", sampleExport)
	writeExport(t, dir, "프라임관302,수용인원 0030명,강의실.xls", sampleExport)
	// A real binary .xls is not convertible and must be left alone.
	writeExport(t, dir, "binary.xls", string([]byte{0xd0, 0xcf, 0x11, 0xe0}))
	// HTML with no table fails conversion but must not stop the batch.
	writeExport(t, dir, "broken.XLS", "<html><body>broken</body></html>")
	// Other extensions are not candidates at all.
	writeExport(t, dir, "notes.txt", sampleExport)

	converted, failed, err := ConvertAll(dir)
	if err != nil {
		t.Fatalf("ConvertAll failed: %v", err)
	}

	if len(converted) != 2 {
		t.Errorf("expected 2 converted files, got %d: %v", len(converted), converted)
	}
	for _, path := range converted {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected converted file %s to exist: %v", path, err)
		}
	}

	if len(failed) != 1 {
		t.Fatalf("expected 1 failure, got %d: %v", len(failed), failed)
	}
	if filepath.Base(failed[0].Path) != "broken.XLS" {
		t.Errorf("expected broken.XLS to be the failure, got %s", failed[0].Path)
	}
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "프라임관301,수용인원 0070명,강의실.XLS", sampleExport)

	converted, _, err := ConvertAll(dir)
	if err != nil {
		t.Fatalf("ConvertAll failed: %v", err)
	}

	summaryPath, err := WriteSummary(dir, converted, roommeta.NewDefaultExtractor())
	if err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	if filepath.Base(summaryPath) != SummaryFileName {
		t.Errorf("unexpected summary path %s", summaryPath)
	}

	f, err := excelize.OpenFile(summaryPath)
	if err != nil {
		t.Fatalf("failed to open summary: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("failed to read summary rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[1][1] != "프라임관" || rows[1][2] != "301" {
		t.Errorf("expected summary row for 프라임관 301, got %v", rows[1])
	}
}
