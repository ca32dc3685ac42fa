package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"roomctl/pkg/roommeta"
	"roomctl/pkg/timetable"
)

// ConvertedSuffix is the file name tail the converter gives its output.
const ConvertedSuffix = "_converted.xlsx"

// Entry is one converted room export discovered by Scan. Its timetable is
// loaded on first use and cached for the entry's lifetime.
type Entry struct {
	Meta roommeta.RoomMeta
	Path string

	cols    timetable.Columns
	table   *timetable.Timetable
	loadErr error
	loaded  bool
}

// Timetable returns the entry's timetable, loading it on first call with
// the column names the catalog was scanned with.
func (e *Entry) Timetable() (*timetable.Timetable, error) {
	if !e.loaded {
		e.table, e.loadErr = timetable.LoadWithColumns(e.Path, e.cols)
		e.loaded = true
	}
	return e.table, e.loadErr
}

// Catalog indexes the converted exports of one data directory. Build one
// per invocation with Scan; there is no process-wide instance.
type Catalog struct {
	entries []*Entry
}

// Scan builds a catalog from every converted export in dir, extracting room
// metadata from each file name and loading tables with the given column
// names. Files whose names yield no building or room number are still
// indexed; criteria-based lookups just never match them. A missing
// directory is an empty catalog, not an error.
func Scan(dir string, extractor *roommeta.Extractor, cols timetable.Columns) (*Catalog, error) {
	c := &Catalog{}

	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ConvertedSuffix) {
			continue
		}
		c.entries = append(c.entries, &Entry{
			Meta: extractor.Extract(f.Name()),
			Path: filepath.Join(dir, f.Name()),
			cols: cols,
		})
	}

	return c, nil
}

// Entries returns all indexed entries in scan order.
func (c *Catalog) Entries() []*Entry {
	return c.entries
}

// Len returns the number of indexed entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Criteria filters catalog entries. Zero-value/nil fields are
// unconstrained; set fields must all match.
type Criteria struct {
	Building    string
	Floor       *int
	MinCapacity *int
}

// Filter returns the entries matching every set criterion, in scan order.
func (c *Catalog) Filter(crit Criteria) []*Entry {
	var out []*Entry
	for _, e := range c.entries {
		if crit.Building != "" && e.Meta.Building != crit.Building {
			continue
		}
		if crit.Floor != nil && e.Meta.Floor != *crit.Floor {
			continue
		}
		if crit.MinCapacity != nil && e.Meta.Capacity < *crit.MinCapacity {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Buildings returns the distinct building names in the catalog, sorted.
// Entries whose name yielded no building are skipped.
func (c *Catalog) Buildings() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range c.entries {
		if e.Meta.Building == "" || seen[e.Meta.Building] {
			continue
		}
		seen[e.Meta.Building] = true
		out = append(out, e.Meta.Building)
	}
	sort.Strings(out)
	return out
}

// Floors returns the distinct floors of one building, sorted ascending.
func (c *Catalog) Floors(building string) []int {
	seen := make(map[int]bool)
	var out []int
	for _, e := range c.entries {
		if e.Meta.Building != building || seen[e.Meta.Floor] {
			continue
		}
		seen[e.Meta.Floor] = true
		out = append(out, e.Meta.Floor)
	}
	sort.Ints(out)
	return out
}

// Result is one room that satisfied a SearchAvailable query.
type Result struct {
	Entry *Entry
	Slots int     // length of the contiguous free run
	Hours float64 // Slots / 2
}

// SearchAvailable finds rooms on the given building and floor that are free
// for at least durationHours starting at start ("HH:MM") on date. Rooms
// whose table cannot be loaded are skipped; one corrupt file must not sink
// the whole search. Result order is scan order, no ranking implied.
func (c *Catalog) SearchAvailable(building string, floor int, date int, start string, durationHours int) []Result {
	var out []Result
	for _, e := range c.Filter(Criteria{Building: building, Floor: &floor}) {
		table, err := e.Timetable()
		if err != nil {
			continue
		}
		run := table.ContiguousFreeRun(date, start)
		if run >= durationHours*2 {
			out = append(out, Result{
				Entry: e,
				Slots: run,
				Hours: timetable.Hours(run),
			})
		}
	}
	return out
}
