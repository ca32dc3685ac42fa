package timetable

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Columns names the non-slot columns of a converted export.
type Columns struct {
	Date string // usage date column, integer YYYYMMDD values
	Day  string // day-of-week column, optional
}

// DefaultColumns returns the column names used by the stock exports.
func DefaultColumns() Columns {
	return Columns{Date: "사용일자", Day: "요일"}
}

// LoadError wraps a failure to open or parse a converted export. It is
// fatal for that one file only; batch callers log it and move on.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load timetable %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// slotPattern matches slot column headers like "09:00~".
var slotPattern = regexp.MustCompile(`^\d{2}:\d{2}~`)

// Load reads a converted export with the default column names.
func Load(path string) (*Timetable, error) {
	return LoadWithColumns(path, DefaultColumns())
}

// LoadWithColumns reads the first sheet of the spreadsheet at path into a
// Timetable. The first row is the header; columns matching "HH:MM~" become
// slots and are sorted ascending. Data rows whose date cell cannot be
// parsed as an integer are dropped silently.
func LoadWithColumns(path string, cols Columns) (*Timetable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("sheet %s is empty", sheets[0])}
	}

	header := rows[0]
	dateIdx, dayIdx := -1, -1

	// Slot headers with their source column, so cells can be reordered to
	// match the sorted slot list.
	type slotCol struct {
		header string
		idx    int
	}
	var slotCols []slotCol

	for i, name := range header {
		name = strings.TrimSpace(name)
		switch {
		case name == cols.Date:
			dateIdx = i
		case name == cols.Day:
			dayIdx = i
		case slotPattern.MatchString(name):
			slotCols = append(slotCols, slotCol{header: name, idx: i})
		}
	}

	if dateIdx < 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("no %q column in header", cols.Date)}
	}

	sort.Slice(slotCols, func(i, j int) bool { return slotCols[i].header < slotCols[j].header })

	t := &Timetable{
		slots: make([]string, len(slotCols)),
		rows:  make(map[int]*Row),
	}
	for i, sc := range slotCols {
		t.slots[i] = sc.header
	}

	for _, raw := range rows[1:] {
		date, ok := parseDate(cell(raw, dateIdx))
		if !ok {
			continue
		}
		if _, dup := t.rows[date]; dup {
			// Exports occasionally repeat a date; the first row wins.
			continue
		}

		row := &Row{Date: date, Cells: make([]Cell, len(slotCols))}
		if dayIdx >= 0 {
			row.DayOfWeek = strings.TrimSpace(cell(raw, dayIdx))
		}
		for i, sc := range slotCols {
			v := cell(raw, sc.idx)
			if strings.TrimSpace(v) != "" {
				row.Cells[i] = Cell{Occupied: true, Label: v}
			}
		}

		t.rows[date] = row
		t.dates = append(t.dates, date)
	}

	sort.Ints(t.dates)
	return t, nil
}

// cell fetches column i of a row, tolerating the ragged rows excelize
// returns when trailing cells are empty.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseDate coerces a date cell to an integer YYYYMMDD. Spreadsheet round
// trips sometimes leave the value formatted as a float ("20250901.0").
func parseDate(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
